package excludes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleModuleOnly(t *testing.T) {
	assert.True(t, ModuleExclude("org", "module").ModuleOnly())
	assert.True(t, ModuleExclude("*", "*").ModuleOnly())
	assert.True(t, ArtifactExclude("org", "module", "*", "*", "*").ModuleOnly())
	assert.False(t, ArtifactExclude("org", "module", "util", "*", "*").ModuleOnly())
	assert.False(t, ArtifactExclude("org", "module", "*", "jar", "*").ModuleOnly())
	assert.False(t, ArtifactExclude("org", "module", "*", "*", "zip").ModuleOnly())
}

func TestRuleMatchesModule(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		id   ModuleID
		want bool
	}{
		{"exact match", ModuleExclude("org", "module"), ModuleID{"org", "module"}, true},
		{"group mismatch", ModuleExclude("org", "module"), ModuleID{"other", "module"}, false},
		{"module mismatch", ModuleExclude("org", "module"), ModuleID{"org", "other"}, false},
		{"wildcard module", ModuleExclude("org", "*"), ModuleID{"org", "anything"}, true},
		{"wildcard group", ModuleExclude("*", "module"), ModuleID{"whatever", "module"}, true},
		// Rules carrying artifact patterns never exclude at module level.
		{"artifact rule ignores module", ArtifactExclude("org", "module", "util", "jar", "jar"), ModuleID{"org", "module"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.matchesModule(tt.id))
		})
	}
}

func TestRuleMatchesArtifact(t *testing.T) {
	rule := ArtifactExclude("org", "module", "util", "jar", "jar")
	id := ModuleID{"org", "module"}

	assert.True(t, rule.matchesArtifact(id, ArtifactID{"util", "jar", "jar"}))
	assert.False(t, rule.matchesArtifact(id, ArtifactID{"other", "jar", "jar"}))
	assert.False(t, rule.matchesArtifact(id, ArtifactID{"util", "zip", "zip"}))
	assert.False(t, rule.matchesArtifact(ModuleID{"other", "module"}, ArtifactID{"util", "jar", "jar"}))

	// A module-only rule excludes every artifact of a matching module.
	moduleRule := ModuleExclude("org", "module")
	assert.True(t, moduleRule.matchesArtifact(id, ArtifactID{"anything", "zip", "tar"}))
	assert.False(t, moduleRule.matchesArtifact(ModuleID{"other", "module"}, ArtifactID{"anything", "zip", "tar"}))
}

func TestIntersectRules(t *testing.T) {
	regexRule, err := RegexModuleExclude(`org-\d+`, `module-\d+`)
	require.NoError(t, err)

	t.Run("wildcard absorbs", func(t *testing.T) {
		merged, outcome := intersectRules(ModuleExclude("org", "*"), ModuleExclude("org", "module"))
		require.Equal(t, mergeOK, outcome)
		assert.True(t, merged.Equal(ModuleExclude("org", "module")))
	})

	t.Run("identical rules", func(t *testing.T) {
		merged, outcome := intersectRules(ModuleExclude("org", "module"), ModuleExclude("org", "module"))
		require.Equal(t, mergeOK, outcome)
		assert.True(t, merged.Equal(ModuleExclude("org", "module")))
	})

	t.Run("disjoint exacts are empty", func(t *testing.T) {
		_, outcome := intersectRules(ModuleExclude("org", "module"), ModuleExclude("org", "module2"))
		assert.Equal(t, mergeEmpty, outcome)
	})

	t.Run("regex pair is unsupported", func(t *testing.T) {
		_, outcome := intersectRules(regexRule, ModuleExclude("org-1", "module-1"))
		assert.Equal(t, mergeUnsupported, outcome)
	})

	t.Run("empty field wins over unsupported field", func(t *testing.T) {
		// Group fields are disjoint exacts (empty), module fields mix
		// regex with exact (unsupported). The conjunction excludes
		// nothing, so empty must win.
		regexModule, err := RegexPattern(`module-\d+`)
		require.NoError(t, err)
		a := NewRule(ExactPattern("org"), regexModule)
		b := ModuleExclude("other", "module-1")
		_, outcome := intersectRules(a, b)
		assert.Equal(t, mergeEmpty, outcome)
	})

	t.Run("artifact fields participate", func(t *testing.T) {
		a := ArtifactExclude("org", "module", "util", "*", "*")
		b := ArtifactExclude("org", "module", "*", "jar", "*")
		merged, outcome := intersectRules(a, b)
		require.Equal(t, mergeOK, outcome)
		assert.True(t, merged.Equal(ArtifactExclude("org", "module", "util", "jar", "*")))
	})
}

func TestDedupeRules(t *testing.T) {
	rules := []Rule{
		ModuleExclude("org", "module"),
		ModuleExclude("org", "module2"),
		ModuleExclude("org", "module"),
	}

	deduped := dedupeRules(rules)
	require.Len(t, deduped, 2)
	assert.True(t, deduped[0].Equal(ModuleExclude("org", "module")))
	assert.True(t, deduped[1].Equal(ModuleExclude("org", "module2")))

	assert.Nil(t, dedupeRules(nil))
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "org:module", ModuleExclude("org", "module").String())
	assert.Equal(t, "org:*", ModuleExclude("org", "*").String())
	assert.Equal(t, "org:module:util:jar:jar", ArtifactExclude("org", "module", "util", "jar", "jar").String())

	regexRule, err := RegexModuleExclude(`org\d+`, "module")
	require.NoError(t, err)
	assert.Equal(t, `~org\d+:~module`, regexRule.String())
}
