package excludes

import (
	"sort"
	"strings"

	"github.com/arthur-debert/depgraph/pkg/logging"
)

type filterKind uint8

const (
	kindAcceptAll filterKind = iota
	kindExcludeAll
	kindRuleSet
	kindUnion
)

// Filter decides whether module and artifact coordinates survive the
// exclusion rules of a dependency edge. It is a closed variant over
// four kinds:
//
//   - accept-all: accepts every coordinate (the zero value).
//   - exclude-all: rejects every module.
//   - rule-set: excludes a coordinate matched by ANY of its rules.
//   - union: accepts a coordinate accepted by ANY of its operands.
//
// Invariants: a union never directly contains another union, a rule
// set never holds duplicate rules, and an empty rule set canonicalizes
// to accept-all. Filters are immutable and safe to share across
// goroutines; Union and Intersect return new values.
type Filter struct {
	kind     filterKind
	rules    []Rule   // kindRuleSet only
	operands []Filter // kindUnion only, none of them a union
}

// AcceptAll returns the filter accepting every module and artifact.
func AcceptAll() Filter {
	return Filter{kind: kindAcceptAll}
}

// ExcludeAll returns the filter rejecting every module.
func ExcludeAll() Filter {
	return Filter{kind: kindExcludeAll}
}

// ExcludeAny builds a filter excluding every coordinate matched by any
// of the given rules. An empty rule list accepts everything.
func ExcludeAny(rules ...Rule) Filter {
	deduped := dedupeRules(rules)
	if len(deduped) == 0 {
		return AcceptAll()
	}
	logger := logging.GetLogger("excludes")
	logger.Debug().Int("ruleCount", len(deduped)).Msg("Built rule-set filter")
	return Filter{kind: kindRuleSet, rules: deduped}
}

// newUnion canonicalizes a union: nested unions are flattened,
// exclude-all operands drop out (union identity), a single accept-all
// operand absorbs everything, duplicates collapse, and degenerate
// operand counts reduce to the operand itself.
func newUnion(operands []Filter) Filter {
	flat := make([]Filter, 0, len(operands))
	for _, op := range operands {
		if op.kind == kindUnion {
			flat = append(flat, op.operands...)
		} else {
			flat = append(flat, op)
		}
	}

	seen := make(map[string]struct{}, len(flat))
	out := make([]Filter, 0, len(flat))
	for _, op := range flat {
		switch op.kind {
		case kindAcceptAll:
			return AcceptAll()
		case kindExcludeAll:
			continue
		}
		k := op.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, op)
	}

	switch len(out) {
	case 0:
		return ExcludeAll()
	case 1:
		return out[0]
	}
	return Filter{kind: kindUnion, operands: out}
}

// Accepts reports whether the module survives this filter.
func (f Filter) Accepts(id ModuleID) bool {
	switch f.kind {
	case kindAcceptAll:
		return true
	case kindExcludeAll:
		return false
	case kindRuleSet:
		for _, r := range f.rules {
			if r.matchesModule(id) {
				return false
			}
		}
		return true
	case kindUnion:
		for _, op := range f.operands {
			if op.Accepts(id) {
				return true
			}
		}
		return false
	default:
		panic("excludes: unknown filter kind")
	}
}

// AcceptsArtifact reports whether the given artifact of the module
// survives this filter. A rule excludes the artifact only when all
// five of its fields match.
func (f Filter) AcceptsArtifact(id ModuleID, artifact ArtifactID) bool {
	switch f.kind {
	case kindAcceptAll:
		return true
	case kindExcludeAll:
		return false
	case kindRuleSet:
		for _, r := range f.rules {
			if r.matchesArtifact(id, artifact) {
				return false
			}
		}
		return true
	case kindUnion:
		for _, op := range f.operands {
			if op.AcceptsArtifact(id, artifact) {
				return true
			}
		}
		return false
	default:
		panic("excludes: unknown filter kind")
	}
}

// AcceptsAllArtifacts reports whether no rule anywhere in the filter
// carries a non-wildcard artifact-level field. Collaborators use it to
// skip per-artifact filtering entirely.
func (f Filter) AcceptsAllArtifacts() bool {
	switch f.kind {
	case kindAcceptAll, kindExcludeAll:
		return true
	case kindRuleSet:
		for _, r := range f.rules {
			if !r.ModuleOnly() {
				return false
			}
		}
		return true
	case kindUnion:
		for _, op := range f.operands {
			if !op.AcceptsAllArtifacts() {
				return false
			}
		}
		return true
	default:
		panic("excludes: unknown filter kind")
	}
}

// Rules returns a copy of the rule list of a rule-set filter, nil for
// every other kind.
func (f Filter) Rules() []Rule {
	if f.kind != kindRuleSet {
		return nil
	}
	out := make([]Rule, len(f.rules))
	copy(out, f.rules)
	return out
}

func (f Filter) String() string {
	switch f.kind {
	case kindAcceptAll:
		return "accept-all"
	case kindExcludeAll:
		return "exclude-all"
	case kindRuleSet:
		parts := make([]string, len(f.rules))
		for i, r := range f.rules {
			parts[i] = r.String()
		}
		return "exclude{" + strings.Join(parts, ", ") + "}"
	case kindUnion:
		parts := make([]string, len(f.operands))
		for i, op := range f.operands {
			parts[i] = op.String()
		}
		return "union(" + strings.Join(parts, ", ") + ")"
	default:
		panic("excludes: unknown filter kind")
	}
}

// key is the canonical structural identity of the filter, independent
// of rule and operand ordering. Used for deduplication inside unions.
func (f Filter) key() string {
	switch f.kind {
	case kindAcceptAll:
		return "accept-all"
	case kindExcludeAll:
		return "exclude-all"
	case kindRuleSet:
		keys := make([]string, len(f.rules))
		for i, r := range f.rules {
			keys[i] = r.key()
		}
		sort.Strings(keys)
		return "rules[" + strings.Join(keys, "\x1e") + "]"
	case kindUnion:
		keys := make([]string, len(f.operands))
		for i, op := range f.operands {
			keys[i] = op.key()
		}
		sort.Strings(keys)
		return "union[" + strings.Join(keys, "\x1e") + "]"
	default:
		panic("excludes: unknown filter kind")
	}
}
