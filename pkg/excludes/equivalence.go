package excludes

import "sort"

// ExcludesSameModulesAs reports whether the two filters exclude exactly
// the same set of (group, module) coordinates, ignoring artifact-level
// fields. This is a semantic test, not a structural one: differently
// built filters that exclude the same modules compare equal, which is
// what makes per-node filter caching sound.
func (f Filter) ExcludesSameModulesAs(other Filter) bool {
	if f.kind == other.kind {
		switch f.kind {
		case kindAcceptAll, kindExcludeAll:
			return true
		case kindUnion:
			return unionOperandsEquivalent(f, other)
		}
	}
	return sameProjection(f.moduleProjection(), other.moduleProjection())
}

// unionOperandsEquivalent implements set equality over union operands:
// every operand of one union must have a module-equivalent operand in
// the other, in both directions.
func unionOperandsEquivalent(a, b Filter) bool {
	return operandsCovered(a.operands, b.operands) &&
		operandsCovered(b.operands, a.operands)
}

func operandsCovered(from, in []Filter) bool {
	for _, op := range from {
		found := false
		for _, candidate := range in {
			if op.ExcludesSameModulesAs(candidate) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// modulePair is the (group, module) projection of a module-only rule.
type modulePair struct {
	group  Pattern
	module Pattern
}

func (m modulePair) key() string {
	return m.group.key() + "\x1f" + m.module.key()
}

func (m modulePair) excludesEverything() bool {
	return m.group.IsWildcard() && m.module.IsWildcard()
}

// modulePairs projects a rule set onto module level: module-only rules
// collapse to their (group, module) patterns with duplicates merged;
// artifact-carrying rules exclude no modules and drop out.
func (f Filter) modulePairs() []modulePair {
	seen := make(map[string]struct{}, len(f.rules))
	pairs := make([]modulePair, 0, len(f.rules))
	for _, r := range f.rules {
		if !r.ModuleOnly() {
			continue
		}
		p := modulePair{group: r.Group, module: r.Module}
		k := p.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		pairs = append(pairs, p)
	}
	return pairs
}

func sameModulePairs(a, b []modulePair) bool {
	if len(a) != len(b) {
		return false
	}
	keys := func(pairs []modulePair) []string {
		out := make([]string, len(pairs))
		for i, p := range pairs {
			out[i] = p.key()
		}
		sort.Strings(out)
		return out
	}
	ka, kb := keys(a), keys(b)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}

// moduleProjection is the module-level exclusion set of a filter in a
// comparable form: everything, a finite pattern-pair set, or unknown
// when a union over regex-bearing operands has no representable
// projection.
type moduleProjection struct {
	excludesAll bool
	unknown     bool
	pairs       []modulePair
}

func (p moduleProjection) excludesNothing() bool {
	return !p.excludesAll && !p.unknown && len(p.pairs) == 0
}

func (f Filter) moduleProjection() moduleProjection {
	switch f.kind {
	case kindAcceptAll:
		return moduleProjection{}
	case kindExcludeAll:
		return moduleProjection{excludesAll: true}
	case kindRuleSet:
		pairs := f.modulePairs()
		for _, p := range pairs {
			if p.excludesEverything() {
				return moduleProjection{excludesAll: true}
			}
		}
		return moduleProjection{pairs: pairs}
	case kindUnion:
		// A union excludes a module only when every operand does, so
		// its projection is the intersection of operand projections.
		proj := f.operands[0].moduleProjection()
		for _, op := range f.operands[1:] {
			proj = intersectProjections(proj, op.moduleProjection())
			if proj.excludesNothing() {
				return proj
			}
		}
		return proj
	default:
		panic("excludes: unknown filter kind")
	}
}

func intersectProjections(a, b moduleProjection) moduleProjection {
	switch {
	case a.excludesNothing() || b.excludesNothing():
		return moduleProjection{}
	case a.excludesAll:
		return b
	case b.excludesAll:
		return a
	case a.unknown || b.unknown:
		return moduleProjection{unknown: true}
	}

	seen := make(map[string]struct{})
	var pairs []modulePair
	for _, pa := range a.pairs {
		for _, pb := range b.pairs {
			group, groupOutcome := intersectPatterns(pa.group, pb.group)
			module, moduleOutcome := intersectPatterns(pa.module, pb.module)
			if groupOutcome == mergeUnsupported || moduleOutcome == mergeUnsupported {
				return moduleProjection{unknown: true}
			}
			if groupOutcome == mergeEmpty || moduleOutcome == mergeEmpty {
				continue
			}
			p := modulePair{group: group, module: module}
			k := p.key()
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			pairs = append(pairs, p)
		}
	}
	return moduleProjection{pairs: pairs}
}

// sameProjection compares two projections. Unknown projections never
// compare equal: caching then falls back to recomputing, which is the
// safe direction.
func sameProjection(a, b moduleProjection) bool {
	if a.unknown || b.unknown {
		return false
	}
	if a.excludesAll || b.excludesAll {
		return a.excludesAll == b.excludesAll
	}
	return sameModulePairs(a.pairs, b.pairs)
}
