package lint

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

// =============================================================================
// Mode
// =============================================================================

// Mode selects the family of scripts being checked. Mode-specific rules
// only run in their mode.
type Mode string

// Checking modes.
const (
	// ModePorts checks scripts shipped by ports (files/*.in). Default.
	ModePorts Mode = "ports"
	// ModeBase checks scripts of the base system.
	ModeBase Mode = "base"
)

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePorts, "":
		return ModePorts, nil
	case ModeBase:
		return ModeBase, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want ports or base)", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler so configuration
// decoders can fill a Mode directly.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// =============================================================================
// Rule Definitions
// =============================================================================

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "RC07"
	Name        string    // Human-readable name, e.g., "value-quoted"
	Group       string    // Category, e.g., "structure", "variables"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	Keys        []string  // Message catalog keys this rule can emit
	ConfigKeys  []string  // Configuration keys this rule accepts
	Modes       []Mode    // Restrict to specific modes; nil/empty means all modes

	// Documentation fields
	Rationale   string // Why this rule exists
	BadExample  string // Script fragment showing the anti-pattern
	GoodExample string // Script fragment showing the expected form
}

// CheckFunc analyzes a classified script and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(script *rcscript.Script, opts map[string]any) []Diagnostic

// AppliesTo reports whether the rule runs in the given mode.
func (r RuleDef) AppliesTo(mode Mode) bool {
	if len(r.Modes) == 0 {
		return true
	}
	for _, m := range r.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

// =============================================================================
// Diagnostics
// =============================================================================

// NoLine marks a diagnostic that concerns the whole file.
const NoLine = -1

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Key      string // Message catalog key, e.g., "value_quoted"
	Severity Severity
	Line     int    // 0-based line index, or NoLine
	File     string // Set by the analyzer
}

// At creates a diagnostic for a line.
func At(key string, sev Severity, line int) Diagnostic {
	return Diagnostic{Key: key, Severity: sev, Line: line}
}

// FileLevel creates a diagnostic for the whole file.
func FileLevel(key string, sev Severity) Diagnostic {
	return Diagnostic{Key: key, Severity: sev, Line: NoLine}
}

// Location formats the 1-based line number, or "-" for file-level findings.
func (d Diagnostic) Location() string {
	if d.Line == NoLine {
		return "-"
	}
	return fmt.Sprintf("%d", d.Line+1)
}

// =============================================================================
// Rule Info
// =============================================================================

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Group       string   `json:"group" yaml:"group"`
	Description string   `json:"description" yaml:"description"`
	Severity    string   `json:"default_severity" yaml:"default_severity"`
	Keys        []string `json:"keys,omitempty" yaml:"keys,omitempty"`
	ConfigKeys  []string `json:"config_keys,omitempty" yaml:"config_keys,omitempty"`
	Modes       []string `json:"modes,omitempty" yaml:"modes,omitempty"`
	Rationale   string   `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	BadExample  string   `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	GoodExample string   `json:"good_example,omitempty" yaml:"good_example,omitempty"`
}

// GetRuleInfo extracts metadata from a RuleDef for documentation/tooling.
func GetRuleInfo(r RuleDef) RuleInfo {
	info := RuleInfo{
		ID:          r.ID,
		Name:        r.Name,
		Group:       r.Group,
		Description: r.Description,
		Severity:    r.Severity.String(),
		Keys:        r.Keys,
		ConfigKeys:  r.ConfigKeys,
		Rationale:   r.Rationale,
		BadExample:  r.BadExample,
		GoodExample: r.GoodExample,
	}
	for _, m := range r.Modes {
		info.Modes = append(info.Modes, m.String())
	}
	return info
}
