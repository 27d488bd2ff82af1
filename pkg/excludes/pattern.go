package excludes

import (
	"regexp"

	"github.com/arthur-debert/depgraph/pkg/errors"
)

// WildcardToken is the literal that means "match anything" when a rule
// field is supplied through the exact matcher.
const WildcardToken = "*"

type patternKind uint8

const (
	patternWildcard patternKind = iota
	patternExact
	patternRegexp
)

// Pattern matches a single coordinate field. A pattern is a wildcard
// (matches everything), an exact literal, or a regular expression that
// must match the whole field value.
//
// Patterns are immutable. Two patterns are equal iff they have the same
// kind and the same source text.
type Pattern struct {
	kind   patternKind
	source string
	re     *regexp.Regexp
}

// WildcardPattern returns the pattern that matches every value.
func WildcardPattern() Pattern {
	return Pattern{kind: patternWildcard, source: WildcardToken}
}

// ExactPattern returns a literal-equality pattern. The literal "*" is
// the wildcard token and yields a wildcard pattern instead.
func ExactPattern(value string) Pattern {
	if value == WildcardToken {
		return WildcardPattern()
	}
	return Pattern{kind: patternExact, source: value}
}

// RegexPattern compiles source into a full-string regular-expression
// pattern. Compilation failures surface here, at rule construction,
// never during acceptance checks.
func RegexPattern(source string) (Pattern, error) {
	re, err := regexp.Compile(`\A(?:` + source + `)\z`)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, errors.ErrRegexCompile,
			"invalid exclude pattern %q", source).WithDetail("pattern", source)
	}
	return Pattern{kind: patternRegexp, source: source, re: re}, nil
}

// Matches reports whether the pattern matches the given field value.
func (p Pattern) Matches(value string) bool {
	switch p.kind {
	case patternWildcard:
		return true
	case patternExact:
		return p.source == value
	case patternRegexp:
		return p.re.MatchString(value)
	default:
		panic("excludes: unknown pattern kind")
	}
}

// IsWildcard reports whether the pattern matches every value.
func (p Pattern) IsWildcard() bool {
	return p.kind == patternWildcard
}

// Equal reports structural equality: same kind and same source text.
func (p Pattern) Equal(other Pattern) bool {
	return p.kind == other.kind && p.source == other.source
}

func (p Pattern) String() string {
	if p.kind == patternRegexp {
		return "~" + p.source
	}
	return p.source
}

// key is the canonical identity of a pattern, used for deduplication.
// The prefix keeps an exact literal distinct from a regexp with the
// same source text.
func (p Pattern) key() string {
	switch p.kind {
	case patternWildcard:
		return "*"
	case patternExact:
		return "=" + p.source
	case patternRegexp:
		return "~" + p.source
	default:
		panic("excludes: unknown pattern kind")
	}
}

// mergeOutcome classifies the result of intersecting two patterns or
// two rules.
type mergeOutcome uint8

const (
	// mergeOK: the intersection is representable as a single pattern/rule.
	mergeOK mergeOutcome = iota
	// mergeEmpty: no value satisfies both sides; the pair excludes nothing.
	mergeEmpty
	// mergeUnsupported: intersection of regular-expression languages is
	// not attempted; the caller must keep both sides structurally.
	mergeUnsupported
)

// intersectPatterns computes the pattern matched by both a and b, when
// that is representable. Disjoint exact literals are provably empty.
// A regexp paired with anything but an identical regexp is unsupported.
func intersectPatterns(a, b Pattern) (Pattern, mergeOutcome) {
	switch {
	case a.kind == patternWildcard:
		return b, mergeOK
	case b.kind == patternWildcard:
		return a, mergeOK
	case a.Equal(b):
		return a, mergeOK
	case a.kind == patternExact && b.kind == patternExact:
		return Pattern{}, mergeEmpty
	default:
		return Pattern{}, mergeUnsupported
	}
}
