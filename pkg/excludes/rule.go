package excludes

import "strings"

// Rule excludes the coordinates matched by all five of its field
// patterns. Artifact-level fields (Artifact, Type, Extension) default
// to wildcard; a rule whose artifact fields are all wildcard is
// "module-only" and is the only kind of rule that excludes at module
// level. Rules are immutable once built.
type Rule struct {
	Group     Pattern
	Module    Pattern
	Artifact  Pattern
	Type      Pattern
	Extension Pattern
}

// NewRule builds a module-only rule from two field patterns.
func NewRule(group, module Pattern) Rule {
	return Rule{
		Group:     group,
		Module:    module,
		Artifact:  WildcardPattern(),
		Type:      WildcardPattern(),
		Extension: WildcardPattern(),
	}
}

// NewArtifactRule builds a rule carrying artifact-level patterns.
func NewArtifactRule(group, module, artifact, typ, extension Pattern) Rule {
	return Rule{
		Group:     group,
		Module:    module,
		Artifact:  artifact,
		Type:      typ,
		Extension: extension,
	}
}

// ModuleExclude builds a module-only rule from exact-matcher strings,
// "*" meaning wildcard.
func ModuleExclude(group, module string) Rule {
	return NewRule(ExactPattern(group), ExactPattern(module))
}

// ArtifactExclude builds an artifact rule from exact-matcher strings,
// "*" meaning wildcard.
func ArtifactExclude(group, module, artifact, typ, extension string) Rule {
	return NewArtifactRule(
		ExactPattern(group),
		ExactPattern(module),
		ExactPattern(artifact),
		ExactPattern(typ),
		ExactPattern(extension),
	)
}

// RegexModuleExclude builds a module-only rule whose group and module
// fields are regular expressions.
func RegexModuleExclude(group, module string) (Rule, error) {
	groupPattern, err := RegexPattern(group)
	if err != nil {
		return Rule{}, err
	}
	modulePattern, err := RegexPattern(module)
	if err != nil {
		return Rule{}, err
	}
	return NewRule(groupPattern, modulePattern), nil
}

// ModuleOnly reports whether all artifact-level fields are wildcard.
func (r Rule) ModuleOnly() bool {
	return r.Artifact.IsWildcard() && r.Type.IsWildcard() && r.Extension.IsWildcard()
}

// matchesModule reports whether the rule excludes the given module.
// Rules carrying artifact-level patterns never exclude a module, only
// artifacts of it.
func (r Rule) matchesModule(id ModuleID) bool {
	return r.ModuleOnly() && r.Group.Matches(id.Group) && r.Module.Matches(id.Name)
}

// matchesArtifact reports whether the rule excludes the given artifact.
// All five fields must match; a module-only rule therefore excludes
// every artifact of a matching module.
func (r Rule) matchesArtifact(id ModuleID, artifact ArtifactID) bool {
	return r.Group.Matches(id.Group) &&
		r.Module.Matches(id.Name) &&
		r.Artifact.Matches(artifact.Name) &&
		r.Type.Matches(artifact.Type) &&
		r.Extension.Matches(artifact.Extension)
}

// Equal reports structural equality across all five fields.
func (r Rule) Equal(other Rule) bool {
	return r.Group.Equal(other.Group) &&
		r.Module.Equal(other.Module) &&
		r.Artifact.Equal(other.Artifact) &&
		r.Type.Equal(other.Type) &&
		r.Extension.Equal(other.Extension)
}

func (r Rule) String() string {
	if r.ModuleOnly() {
		return r.Group.String() + ":" + r.Module.String()
	}
	return strings.Join([]string{
		r.Group.String(),
		r.Module.String(),
		r.Artifact.String(),
		r.Type.String(),
		r.Extension.String(),
	}, ":")
}

// key is the canonical identity of a rule, used for deduplication.
func (r Rule) key() string {
	return strings.Join([]string{
		r.Group.key(),
		r.Module.key(),
		r.Artifact.key(),
		r.Type.key(),
		r.Extension.key(),
	}, "\x1f")
}

// intersectRules computes the rule excluding exactly the coordinates
// excluded by both a and b, when that is representable as a single
// rule. A provably-empty field makes the whole conjunction empty, even
// when another field is unsupported.
func intersectRules(a, b Rule) (Rule, mergeOutcome) {
	fields := []struct {
		a, b Pattern
	}{
		{a.Group, b.Group},
		{a.Module, b.Module},
		{a.Artifact, b.Artifact},
		{a.Type, b.Type},
		{a.Extension, b.Extension},
	}

	merged := make([]Pattern, len(fields))
	sawUnsupported := false
	for i, f := range fields {
		p, outcome := intersectPatterns(f.a, f.b)
		switch outcome {
		case mergeEmpty:
			return Rule{}, mergeEmpty
		case mergeUnsupported:
			sawUnsupported = true
		case mergeOK:
			merged[i] = p
		}
	}
	if sawUnsupported {
		return Rule{}, mergeUnsupported
	}

	return Rule{
		Group:     merged[0],
		Module:    merged[1],
		Artifact:  merged[2],
		Type:      merged[3],
		Extension: merged[4],
	}, mergeOK
}

// dedupeRules removes structural duplicates, preserving first-seen order.
func dedupeRules(rules []Rule) []Rule {
	if len(rules) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(rules))
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		k := r.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}
