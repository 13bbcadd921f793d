package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rclint/internal/testutil"
	"github.com/leapstack-labs/rclint/pkg/lint"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules" // register rules
)

func runRule(t *testing.T, config *lint.Config, lines []string, ruleID string) []lint.Diagnostic {
	t.Helper()
	script := testutil.Classify(t, "foo", lines)
	diags := lint.NewAnalyzer(config, testutil.NewTestLogger(t)).Analyze(script)

	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestRC04_RcorderOrder(t *testing.T) {
	t.Run("canonical", func(t *testing.T) {
		assert.Empty(t, runRule(t, lint.NewConfig(), testutil.CanonicalLines(), "RC04"))
	})

	t.Run("REQUIRE before PROVIDE", func(t *testing.T) {
		lines := testutil.Replace(t, testutil.CanonicalLines(), "# PROVIDE: foo")
		lines = testutil.Replace(t, lines, "# KEYWORD: shutdown", "# KEYWORD: shutdown", "# PROVIDE: foo")

		diags := runRule(t, lint.NewConfig(), lines, "RC04")
		require.Len(t, diags, 1)
		assert.Equal(t, "rcorder_order", diags[0].Key)
		assert.Equal(t, lint.NoLine, diags[0].Line)
	})

	t.Run("unknown types are ignored", func(t *testing.T) {
		lines := testutil.Replace(t, testutil.CanonicalLines(), "# PROVIDE: foo", "# XYZZY: plugh", "# PROVIDE: foo")
		assert.Empty(t, runRule(t, lint.NewConfig(), lines, "RC04"))
	})
}

func TestRC05_RcorderKeyword(t *testing.T) {
	tests := []struct {
		name     string
		keyword  []string
		wantKeys []string
	}{
		{name: "shutdown", keyword: []string{"# KEYWORD: shutdown"}},
		{name: "FreeBSD and shutdown", keyword: []string{"# KEYWORD: FreeBSD shutdown"}, wantKeys: []string{"rcorder_keyword_freebsd"}},
		{name: "nojail only", keyword: []string{"# KEYWORD: nojail"}, wantKeys: []string{"rcorder_keyword_shutdown"}},
		{
			name:     "freebsd without shutdown",
			keyword:  []string{"# KEYWORD: freebsd"},
			wantKeys: []string{"rcorder_keyword_freebsd", "rcorder_keyword_shutdown"},
		},
		{name: "no KEYWORD line", keyword: nil},
		{name: "shutdown on a second line", keyword: []string{"# KEYWORD: nojail", "# KEYWORD: shutdown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := testutil.Replace(t, testutil.CanonicalLines(), "# KEYWORD: shutdown", tt.keyword...)
			diags := runRule(t, lint.NewConfig(), lines, "RC05")

			var keys []string
			for _, d := range diags {
				keys = append(keys, d.Key)
			}
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestRC05_Severities(t *testing.T) {
	lines := testutil.Replace(t, testutil.CanonicalLines(), "# KEYWORD: shutdown", "# KEYWORD: FreeBSD")
	diags := runRule(t, lint.NewConfig(), lines, "RC05")
	require.Len(t, diags, 2)
	assert.Equal(t, lint.SeverityError, diags[0].Severity)
	assert.Equal(t, 4, diags[0].Line)
	assert.Equal(t, lint.SeverityWarning, diags[1].Severity)
}

func TestRC05_ForbiddenKeywordsOption(t *testing.T) {
	config := lint.NewConfig()
	config.SetRuleOptions("RC05", map[string]any{"forbidden_keywords": []any{"nojail"}})

	lines := testutil.Replace(t, testutil.CanonicalLines(), "# KEYWORD: shutdown", "# KEYWORD: nojail shutdown")
	diags := runRule(t, config, lines, "RC05")
	require.Len(t, diags, 1)
	assert.Equal(t, "rcorder_keyword_freebsd", diags[0].Key)
}
