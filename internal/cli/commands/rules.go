package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/rclint/internal/cli/output"
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/lint/catalog"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // text, markdown, json or yaml
}

// RulesOutput is the JSON/YAML document for a rules listing.
type RulesOutput struct {
	Rules []lint.RuleInfo `json:"rules" yaml:"rules"`
	Count int             `json:"count" yaml:"count"`
}

// RuleDetail is the JSON/YAML document for a single rule.
type RuleDetail struct {
	lint.RuleInfo `yaml:",inline"`
	Messages      []RuleMessage `json:"messages" yaml:"messages"`
}

// RuleMessage pairs a catalog key with its message text.
type RuleMessage struct {
	Key         string `json:"key" yaml:"key"`
	Message     string `json:"message" yaml:"message"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List every lint rule with the message keys it can report.

Rules are organized by group (structure, metadata, variables, functions,
statements, ports). Pass a rule ID to see its documentation and the catalog
messages it emits.`,
		Example: `  # List all rules
  rclint rules

  # Show details for a specific rule
  rclint rules RC07

  # List rules in the variables group
  rclint rules --group variables

  # Output as YAML
  rclint rules --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json, yaml")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "markdown", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// rulesFormat resolves the effective format, letting --format override the
// global output mode.
func rulesFormat(cmd *cobra.Command, opts *RulesOptions) (*output.Renderer, string, error) {
	r := NewCommandContext(cmd).Renderer
	switch f := strings.ToLower(opts.Format); f {
	case "":
		return r, string(r.EffectiveMode()), nil
	case "yaml", "yml":
		return r, "yaml", nil
	default:
		mode, err := output.ParseMode(f)
		if err != nil {
			return nil, "", err
		}
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
		return r, string(r.EffectiveMode()), nil
	}
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r, format, err := rulesFormat(cmd, opts)
	if err != nil {
		return err
	}

	defs := lint.GetAll()
	if opts.Group != "" {
		defs = lint.GetByGroup(strings.ToLower(opts.Group))
		if len(defs) == 0 {
			return fmt.Errorf("no rules in group %q", opts.Group)
		}
	}
	rules := make([]lint.RuleInfo, 0, len(defs))
	for _, d := range defs {
		rules = append(rules, lint.GetRuleInfo(d))
	}

	switch format {
	case string(output.ModeJSON):
		return r.JSON(RulesOutput{Rules: rules, Count: len(rules)})
	case "yaml":
		return writeYAML(r.Writer(), RulesOutput{Rules: rules, Count: len(rules)})
	case string(output.ModeMarkdown):
		listRulesMarkdown(r, rules)
		return nil
	default:
		listRulesText(r, rules)
		return nil
	}
}

// groupRules buckets rules by group. Groups appear in the order of their
// first rule.
func groupRules(rules []lint.RuleInfo) [][]lint.RuleInfo {
	var groups [][]lint.RuleInfo
	index := make(map[string]int)
	for _, rule := range rules {
		i, ok := index[rule.Group]
		if !ok {
			i = len(groups)
			index[rule.Group] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], rule)
	}
	return groups
}

// listRulesText outputs rules as one table per group.
func listRulesText(r *output.Renderer, rules []lint.RuleInfo) {
	styles := r.Styles()
	titleCaser := cases.Title(language.English)

	r.Println(styles.Header.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
	r.Println("")

	for _, group := range groupRules(rules) {
		r.Println(styles.Bold.Render(titleCaser.String(group[0].Group)))

		t := table.NewWriter()
		t.SetOutputMirror(r.Writer())
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Name", "Severity", "Keys", "Modes"})
		for _, rule := range group {
			modes := strings.Join(rule.Modes, ", ")
			if modes == "" {
				modes = "all"
			}
			t.AppendRow(table.Row{rule.ID, rule.Name, rule.Severity, strings.Join(rule.Keys, "\n"), modes})
		}
		t.Render()
		r.Println("")
	}

	r.Println(styles.Muted.Render("Use 'rclint rules <rule-id>' for detailed documentation"))
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []lint.RuleInfo) {
	titleCaser := cases.Title(language.English)

	r.Println("# Lint Rules")
	r.Println("")
	for _, group := range groupRules(rules) {
		r.Println("## " + titleCaser.String(group[0].Group))
		r.Println("")
		for _, rule := range group {
			r.Printf("- **%s** %s (`%s`): %s\n", rule.ID, rule.Name, rule.Severity, strings.Join(rule.Keys, ", "))
		}
		r.Println("")
	}
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r, format, err := rulesFormat(cmd, opts)
	if err != nil {
		return err
	}

	def, ok := lint.GetByID(strings.ToUpper(ruleID))
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	cfg := getConfig()
	lang, err := catalog.NormalizeLanguage(cfg.Language)
	if err != nil {
		return err
	}
	messages, err := catalog.Load(cfg.DataDir, lang)
	if err != nil {
		return fmt.Errorf("failed to load message catalog: %w", err)
	}

	detail := RuleDetail{RuleInfo: lint.GetRuleInfo(def)}
	for _, key := range def.Keys {
		entry, _ := messages.Lookup(key)
		detail.Messages = append(detail.Messages, RuleMessage{
			Key:         key,
			Message:     entry.Message,
			Explanation: entry.Explanation,
		})
	}

	switch format {
	case string(output.ModeJSON):
		return r.JSON(detail)
	case "yaml":
		return writeYAML(r.Writer(), detail)
	case string(output.ModeMarkdown):
		showRuleMarkdown(r, detail)
		return nil
	default:
		showRuleText(r, detail)
		return nil
	}
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule RuleDetail) {
	styles := r.Styles()

	r.Println(styles.Header.Render(fmt.Sprintf("%s - %s", rule.ID, rule.Name)))
	r.Println("")
	r.Println(r.FormatKeyValue("Group", rule.Group))
	r.Println(r.FormatKeyValue("Severity", rule.Severity))
	if len(rule.Modes) > 0 {
		r.Println(r.FormatKeyValue("Modes", strings.Join(rule.Modes, ", ")))
	}
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	r.Println(styles.Bold.Render("Messages"))
	for _, m := range rule.Messages {
		r.Printf("  %s  %s\n", styles.Info.Render(m.Key), m.Message)
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println("")
		r.Println(styles.Bold.Render("Configuration"))
		r.Printf("  Options: %s\n", strings.Join(rule.ConfigKeys, ", "))
	}
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule RuleDetail) {
	r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
	r.Printf("**Group:** %s | **Severity:** `%s`\n\n", rule.Group, rule.Severity)
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```sh")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```sh")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	r.Println("## Messages")
	r.Println("")
	for _, m := range rule.Messages {
		r.Printf("- `%s`: %s\n", m.Key, m.Message)
	}

	if len(rule.ConfigKeys) > 0 {
		r.Println("")
		r.Println("## Configuration")
		r.Println("")
		r.Printf("Options: `%s`\n", strings.Join(rule.ConfigKeys, "`, `"))
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
