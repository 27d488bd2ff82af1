package excludes

import (
	"github.com/arthur-debert/depgraph/pkg/logging"
)

// Union returns the filter accepting a coordinate iff either f or
// other accepts it. Exclude-all is the identity element, accept-all
// absorbs. Two rule sets merge by pairwise rule intersection; when a
// pair mixes a regular expression with a non-identical pattern the
// merge is not representable and the operands are kept as a structural
// union node instead.
func (f Filter) Union(other Filter) Filter {
	switch {
	case f.kind == kindExcludeAll:
		return other
	case other.kind == kindExcludeAll:
		return f
	case f.kind == kindAcceptAll || other.kind == kindAcceptAll:
		return AcceptAll()
	}

	if f.kind == kindRuleSet && other.kind == kindRuleSet {
		if merged, ok := mergeRuleSets(f, other); ok {
			return merged
		}
		logger := logging.GetLogger("excludes")
		logger.Debug().
			Str("left", f.String()).
			Str("right", other.String()).
			Msg("Rule sets not mergeable, keeping union operands")
		return newUnion([]Filter{f, other})
	}

	// At least one side already carries union structure.
	return unionOfMany(f.unpack(), other.unpack())
}

// mergeRuleSets attempts the pairwise rule merge of two rule sets. For
// every pair of rules, the pair's intersection is collected; provably
// empty pairs contribute no exclusion and are dropped. Returns ok=false
// when any pair is unrepresentable, in which case the caller must fall
// back to a union node.
func mergeRuleSets(a, b Filter) (Filter, bool) {
	merged := make([]Rule, 0, len(a.rules))
	for _, ra := range a.rules {
		for _, rb := range b.rules {
			r, outcome := intersectRules(ra, rb)
			switch outcome {
			case mergeOK:
				merged = append(merged, r)
			case mergeEmpty:
				// No coordinate is excluded by both rules.
			case mergeUnsupported:
				return Filter{}, false
			}
		}
	}
	return ExcludeAny(merged...), true
}

// unionOfMany unions two flattened operand lists. Operands present on
// both sides are kept once; rule-set operands drawn from opposite
// sides are reduced pairwise where the merge is representable.
func unionOfMany(left, right []Filter) Filter {
	ops := make([]Filter, len(left))
	copy(ops, left)

	leftKeys := make(map[string]struct{}, len(left))
	for _, op := range left {
		leftKeys[op.key()] = struct{}{}
	}

	for _, r := range right {
		if _, shared := leftKeys[r.key()]; shared {
			continue
		}
		reduced := false
		for i, l := range ops {
			if l.kind != kindRuleSet || r.kind != kindRuleSet {
				continue
			}
			merged, ok := mergeRuleSets(l, r)
			if !ok {
				continue
			}
			if merged.kind == kindAcceptAll {
				return AcceptAll()
			}
			ops[i] = merged
			reduced = true
			break
		}
		if !reduced {
			ops = append(ops, r)
		}
	}

	return newUnion(ops)
}

// unpack returns the flat operand list of a union, or the filter
// itself as a single-element list.
func (f Filter) unpack() []Filter {
	if f.kind != kindUnion {
		return []Filter{f}
	}
	out := make([]Filter, len(f.operands))
	copy(out, f.operands)
	return out
}

// Intersect returns the filter accepting a coordinate iff both f and
// other accept it. Accept-all is the identity element, exclude-all
// absorbs. Intersecting two rule sets accumulates their rules (more
// rules, stricter filter). A union operand distributes:
//
//	X ∩ union(A, B) = union(X ∩ A, X ∩ B)
//
// with each pair simplified recursively and the results folded back
// through Union so nested structure keeps reducing.
func (f Filter) Intersect(other Filter) Filter {
	switch {
	case f.kind == kindAcceptAll:
		return other
	case other.kind == kindAcceptAll:
		return f
	case f.kind == kindExcludeAll || other.kind == kindExcludeAll:
		return ExcludeAll()
	}

	if f.kind == kindRuleSet && other.kind == kindRuleSet {
		combined := make([]Rule, 0, len(f.rules)+len(other.rules))
		combined = append(combined, f.rules...)
		combined = append(combined, other.rules...)
		return ExcludeAny(combined...)
	}

	// Distribute over the union side.
	outer, inner := f, other
	if outer.kind != kindUnion {
		outer, inner = inner, outer
	}

	result := ExcludeAll()
	for _, op := range outer.operands {
		result = result.Union(op.Intersect(inner))
	}
	return result
}
