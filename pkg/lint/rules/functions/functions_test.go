package functions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rclint/internal/testutil"
	"github.com/leapstack-labs/rclint/pkg/lint"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules" // register rules
)

func runRule(t *testing.T, config *lint.Config, lines []string) []lint.Diagnostic {
	t.Helper()
	script := testutil.Classify(t, "foo", lines)
	var filtered []lint.Diagnostic
	for _, d := range lint.NewAnalyzer(config, testutil.NewTestLogger(t)).Analyze(script) {
		if d.RuleID == "RC11" {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestRC11_Short(t *testing.T) {
	tests := []struct {
		name     string
		body     []string
		wantDiag bool
	}{
		{name: "two lines", body: []string{"\techo a", "\techo b"}},
		{name: "one line", body: []string{"\techo a"}, wantDiag: true},
		{name: "empty", body: nil, wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := append([]string{"#!/bin/sh", "foo_prestart()", "{"}, tt.body...)
			lines = append(lines, "}")

			diags := runRule(t, lint.NewConfig(), lines)
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, "functions_short", diags[0].Key)
				assert.Equal(t, 1, diags[0].Line)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestRC11_Chown(t *testing.T) {
	lines := testutil.Replace(t, testutil.CanonicalLines(), "\techo preparing",
		"\tchown foo:foo /var/run/foo", "\techo preparing")

	diags := runRule(t, lint.NewConfig(), lines)
	require.Len(t, diags, 1)
	assert.Equal(t, "functions_chown", diags[0].Key)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
	assert.Equal(t, "\tchown foo:foo /var/run/foo", lines[diags[0].Line])
}

func TestRC11_ForbiddenCommandsOption(t *testing.T) {
	config := lint.NewConfig()
	config.SetRuleOptions("RC11", map[string]any{"forbidden_commands": []string{"chmod", "install"}})

	diags := runRule(t, config, testutil.CanonicalLines())
	require.Len(t, diags, 1)
	assert.Equal(t, "\tinstall -d -m 755 /var/run/foo", testutil.CanonicalLines()[diags[0].Line])
}

func TestRC11_SeverityOverride(t *testing.T) {
	config := lint.NewConfig()
	config.SetSeverity("RC11", lint.SeverityWarning)

	lines := []string{"#!/bin/sh", "foo_prestart()", "{", "\techo a", "}"}
	diags := runRule(t, config, lines)
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)
}
