package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/rclint/internal/testutil"
	"github.com/leapstack-labs/rclint/pkg/lint"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/rclint/pkg/lint/rules/ports"
)

func portsKeys(t *testing.T, mode lint.Mode, line string) []string {
	t.Helper()
	lines := testutil.Replace(t, testutil.CanonicalLines(), ": ${foo_config=/usr/local/etc/foo.conf}",
		": ${foo_config=/usr/local/etc/foo.conf}", line)
	script := testutil.Classify(t, "foo", lines)

	var keys []string
	analyzer := lint.NewAnalyzer(lint.NewConfig().WithMode(mode), testutil.NewTestLogger(t))
	for _, d := range analyzer.Analyze(script) {
		if d.RuleID == "PT01" || d.RuleID == "PT02" {
			keys = append(keys, d.Key)
		}
	}
	return keys
}

func TestPortsDefaults(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantKeys []string
	}{
		{name: "user with colon", line: ": ${foo_user:=foo}"},
		{name: "configfile with colon", line: ": ${foo_configfile:=/usr/local/etc/foo.conf}"},
		{name: "flags without colon", line: ": ${foo_flags=-d}"},
		{name: "flags with colon", line: ": ${foo_flags:=-d}", wantKeys: []string{"variables_defaults_non_mandatory_colon"}},
		{name: "enable without colon", line: ": ${foo_enable=NO}", wantKeys: []string{"variables_defaults_mandatory_colon"}},
		{name: "basic assignment", line: "foo_flags=-d"},
		{
			name:     "longhand of itself",
			line:     "foo_pidfile=${foo_pidfile:-/var/run/foo.pid}",
			wantKeys: []string{"variables_defaults_non_mandatory_colon", "variables_defaults_old_style"},
		},
		{name: "longhand of another variable", line: "foo_pidfile=${foo_rundir-/var/run}"},
		{
			name:     "quoted longhand enable",
			line:     `foo_enable="${foo_enable-NO}"`,
			wantKeys: []string{"variables_defaults_mandatory_colon", "variables_defaults_old_style"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKeys, portsKeys(t, lint.ModePorts, tt.line))
		})
	}
}

func TestPortsRulesSkippedInBaseMode(t *testing.T) {
	assert.Empty(t, portsKeys(t, lint.ModeBase, ": ${foo_flags:=-d}"))
}

func TestSuffix(t *testing.T) {
	assert.Equal(t, "enable", ports.Suffix("foo_bar_enable"))
	assert.Equal(t, "foo", ports.Suffix("foo"))
	assert.Equal(t, "", ports.Suffix("foo_"))
}
