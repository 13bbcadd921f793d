package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/rclint/internal/cli/config"
	clitestutil "github.com/leapstack-labs/rclint/internal/cli/testutil"
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runRulesCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"group", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListText(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "Lint Rules")
	for _, group := range []string{"Structure", "Metadata", "Variables", "Functions", "Statements", "Ports"} {
		assert.Contains(t, out, group)
	}
	assert.Contains(t, out, "RC07")
	assert.Contains(t, out, "value_quoted")
	// variables appears once even though RC13 sorts after RC12
	assert.Equal(t, 1, strings.Count(out, "Variables\n"))
}

func TestRulesCommand_ListMarkdown(t *testing.T) {
	out, err := runRulesCommand(t)
	require.NoError(t, err)

	assert.Contains(t, out, "# Lint Rules")
	assert.Contains(t, out, "## Structure")
	assert.Contains(t, out, "- **RC02** structure.file_order (`error`): file_order")
}

func TestRulesCommand_ListJSON(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "json")
	require.NoError(t, err)

	var doc RulesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, len(doc.Rules), doc.Count)
	assert.Equal(t, 16, doc.Count)
	assert.Equal(t, "RC00", doc.Rules[0].ID)
	assert.Equal(t, "PT02", doc.Rules[len(doc.Rules)-1].ID)
}

func TestRulesCommand_ListYAML(t *testing.T) {
	out, err := runRulesCommand(t, "--format", "yaml", "--group", "ports")
	require.NoError(t, err)

	var doc RulesOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Rules, 2)
	assert.Equal(t, "PT01", doc.Rules[0].ID)
	assert.Equal(t, []string{"ports"}, doc.Rules[0].Modes)
}

func TestRulesCommand_UnknownGroup(t *testing.T) {
	_, err := runRulesCommand(t, "--group", "sql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no rules in group "sql"`)
}

func TestRulesCommand_UnknownFormat(t *testing.T) {
	_, err := runRulesCommand(t, "--format", "html")
	require.Error(t, err)
}

func TestRulesCommand_Show(t *testing.T) {
	t.Run("markdown", func(t *testing.T) {
		out, err := runRulesCommand(t, "rc09")
		require.NoError(t, err)

		assert.Contains(t, out, "# RC09 - variables.desc")
		assert.Contains(t, out, "## Messages")
		assert.Contains(t, out, "`no_description`")
	})

	t.Run("json includes catalog messages", func(t *testing.T) {
		out, err := runRulesCommand(t, "RC11", "--format", "json")
		require.NoError(t, err)

		var detail RuleDetail
		require.NoError(t, json.Unmarshal([]byte(out), &detail))
		assert.Equal(t, "RC11", detail.ID)
		require.Len(t, detail.Messages, 2)
		for _, m := range detail.Messages {
			assert.NotEmpty(t, m.Message, "message for %s", m.Key)
		}
	})

	t.Run("text", func(t *testing.T) {
		out, err := runRulesCommand(t, "PT02", "--format", "text")
		require.NoError(t, err)
		assert.Contains(t, out, "PT02 - ports.defaults_old_style")
		assert.Contains(t, out, "variables_defaults_old_style")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := runRulesCommand(t, "ZZ99")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `rule "ZZ99" not found`)
	})
}

func TestRulesMarkdownIsWellFormed(t *testing.T) {
	tr := clitestutil.NewTestRendererMarkdown()

	def, ok := lint.GetByID("RC05")
	require.True(t, ok)
	listRulesMarkdown(tr.Renderer, []lint.RuleInfo{lint.GetRuleInfo(def)})
	showRuleMarkdown(tr.Renderer, RuleDetail{
		RuleInfo: lint.GetRuleInfo(def),
		Messages: []RuleMessage{{Key: "rcorder_keyword_freebsd", Message: "KEYWORD contains FreeBSD"}},
	})

	out := tr.Output()
	clitestutil.AssertValidMarkdown(t, out)
	clitestutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "```sh")
	assert.Contains(t, out, "Options: `forbidden_keywords`")
}
