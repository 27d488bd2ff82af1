package depgraph

import (
	"strings"

	"github.com/arthur-debert/depgraph/pkg/errors"
	"github.com/arthur-debert/depgraph/pkg/excludes"
)

// parsePattern turns one rule field into a pattern. "*" is the
// wildcard, a "~" prefix marks a regular expression, anything else is
// an exact literal.
func parsePattern(field string) (excludes.Pattern, error) {
	if rest, ok := strings.CutPrefix(field, "~"); ok {
		return excludes.RegexPattern(rest)
	}
	return excludes.ExactPattern(field), nil
}

// parseRule parses the colon-separated rule notation used by the
// --exclude, --left and --right flags: group:module for module rules,
// group:module:artifact:type:ext for artifact rules.
func parseRule(spec string) (excludes.Rule, error) {
	fields := strings.Split(spec, ":")

	patterns := make([]excludes.Pattern, len(fields))
	for i, field := range fields {
		p, err := parsePattern(field)
		if err != nil {
			return excludes.Rule{}, errors.Wrapf(err, errors.ErrRuleParse,
				"invalid rule %q", spec)
		}
		patterns[i] = p
	}

	switch len(fields) {
	case 2:
		return excludes.NewRule(patterns[0], patterns[1]), nil
	case 5:
		return excludes.NewArtifactRule(patterns[0], patterns[1], patterns[2], patterns[3], patterns[4]), nil
	default:
		return excludes.Rule{}, errors.Newf(errors.ErrRuleParse,
			"rule %q has %d fields, want 2 or 5", spec, len(fields))
	}
}

// parseRules builds a filter from a list of rule specs.
func parseRules(specs []string) (excludes.Filter, error) {
	rules := make([]excludes.Rule, 0, len(specs))
	for _, spec := range specs {
		rule, err := parseRule(spec)
		if err != nil {
			return excludes.Filter{}, err
		}
		rules = append(rules, rule)
	}
	return excludes.ExcludeAny(rules...), nil
}

// coordinate is a parsed module or artifact coordinate argument.
type coordinate struct {
	module   excludes.ModuleID
	artifact excludes.ArtifactID
	// hasArtifact distinguishes group:module from the five-field form.
	hasArtifact bool
}

func (c coordinate) String() string {
	if c.hasArtifact {
		return c.module.String() + ":" + c.artifact.String()
	}
	return c.module.String()
}

// parseCoordinate parses a coordinate argument: group:module or
// group:module:artifact:type:ext. Coordinate fields are literal, never
// patterns.
func parseCoordinate(arg string) (coordinate, error) {
	fields := strings.Split(arg, ":")
	switch len(fields) {
	case 2:
		return coordinate{
			module: excludes.ModuleID{Group: fields[0], Name: fields[1]},
		}, nil
	case 5:
		return coordinate{
			module:      excludes.ModuleID{Group: fields[0], Name: fields[1]},
			artifact:    excludes.ArtifactID{Name: fields[2], Type: fields[3], Extension: fields[4]},
			hasArtifact: true,
		}, nil
	default:
		return coordinate{}, errors.Newf(errors.ErrCoordinateParse,
			"coordinate %q has %d fields, want 2 or 5", arg, len(fields))
	}
}
