// Package depgraph command tests.
//
// TEST TYPE: Unit Test
package depgraph

import (
	"testing"

	"github.com/arthur-debert/depgraph/pkg/errors"
	"github.com/arthur-debert/depgraph/pkg/excludes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want excludes.Rule
	}{
		{"module rule", "org:module", excludes.ModuleExclude("org", "module")},
		{"wildcard module", "org:*", excludes.ModuleExclude("org", "*")},
		{"wildcard group", "*:module", excludes.ModuleExclude("*", "module")},
		{"artifact rule", "org:module:util:jar:jar", excludes.ArtifactExclude("org", "module", "util", "jar", "jar")},
		{"artifact wildcards", "org:module:util:*:*", excludes.ArtifactExclude("org", "module", "util", "*", "*")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := parseRule(tt.spec)
			require.NoError(t, err)
			assert.True(t, rule.Equal(tt.want), "parsed %s, want %s", rule, tt.want)
		})
	}
}

func TestParseRuleRegex(t *testing.T) {
	rule, err := parseRule(`~org\d+:~module\d+`)
	require.NoError(t, err)

	want, err := excludes.RegexModuleExclude(`org\d+`, `module\d+`)
	require.NoError(t, err)
	assert.True(t, rule.Equal(want))
}

func TestParseRuleErrors(t *testing.T) {
	t.Run("wrong field count", func(t *testing.T) {
		_, err := parseRule("org:module:util")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleParse))
	})

	t.Run("invalid regex", func(t *testing.T) {
		_, err := parseRule("org:~[unclosed")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRuleParse))
	})
}

func TestParseRules(t *testing.T) {
	filter, err := parseRules([]string{"org:module", "org:module2"})
	require.NoError(t, err)

	assert.False(t, filter.Accepts(excludes.ModuleID{Group: "org", Name: "module"}))
	assert.False(t, filter.Accepts(excludes.ModuleID{Group: "org", Name: "module2"}))
	assert.True(t, filter.Accepts(excludes.ModuleID{Group: "org", Name: "module3"}))

	empty, err := parseRules(nil)
	require.NoError(t, err)
	assert.True(t, empty.ExcludesSameModulesAs(excludes.AcceptAll()))
}

func TestParseCoordinate(t *testing.T) {
	coord, err := parseCoordinate("org:module")
	require.NoError(t, err)
	assert.False(t, coord.hasArtifact)
	assert.Equal(t, "org:module", coord.String())

	coord, err = parseCoordinate("org:module:util:jar:jar")
	require.NoError(t, err)
	assert.True(t, coord.hasArtifact)
	assert.Equal(t, "org:module:util:jar:jar", coord.String())

	_, err = parseCoordinate("org")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCoordinateParse))
}
