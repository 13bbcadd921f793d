package lint

import (
	"log/slog"

	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

// Analyzer runs the registered rules against classified scripts.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config, logger *slog.Logger) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Analyzer{config: config, logger: logger}
}

// Rules returns the rules that run under the analyzer's configuration,
// in execution order.
func (a *Analyzer) Rules() []RuleDef {
	var rules []RuleDef
	for _, rule := range GetByMode(a.config.Mode) {
		if a.config.IsDisabled(rule.ID) {
			continue
		}
		rules = append(rules, rule)
	}
	return rules
}

// Analyze runs every enabled rule and collects the diagnostics without
// reporting them.
func (a *Analyzer) Analyze(script *rcscript.Script) []Diagnostic {
	var diagnostics []Diagnostic
	for _, rule := range a.Rules() {
		diagnostics = append(diagnostics, a.run(rule, script)...)
	}
	return diagnostics
}

// Check runs every enabled rule and passes each diagnostic to rep as soon
// as its rule finishes. It stops at the first error from rep, which is
// either ErrFatal or ErrThreshold.
func (a *Analyzer) Check(script *rcscript.Script, rep *Reporter) error {
	for _, rule := range a.Rules() {
		for _, d := range a.run(rule, script) {
			if err := rep.Report(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Analyzer) run(rule RuleDef, script *rcscript.Script) []Diagnostic {
	opts := a.config.GetRuleOptions(rule.ID)
	diags := rule.Check(script, opts)
	for i := range diags {
		diags[i].RuleID = rule.ID
		diags[i].File = script.Filename
		// Fatal defects always abort; overrides cannot soften them.
		if diags[i].Severity != SeverityFatal {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}
	}
	if len(diags) > 0 {
		a.logger.Debug("rule reported",
			slog.String("rule", rule.ID),
			slog.String("file", script.Filename),
			slog.Int("count", len(diags)))
	}
	return diags
}
