package ports

import (
	"slices"
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(DefaultsColon)
}

// DefaultsColon checks the colon variant of default assignments by
// variable suffix. Only knobs for which an empty value is never valid may
// use the colon, and _enable must.
var DefaultsColon = lint.RuleDef{
	ID:          "PT01",
	Name:        "ports.defaults_colon",
	Group:       "ports",
	Description: "Only _enable, _user, _group, _config and _configfile defaults may use ':='; _enable must.",
	Severity:    lint.SeverityError,
	Keys:        []string{"variables_defaults_non_mandatory_colon", "variables_defaults_mandatory_colon"},
	ConfigKeys:  []string{"colon_suffixes"},
	Modes:       []lint.Mode{lint.ModePorts},
	Check:       checkDefaultsColon,
	Rationale: "${foo:=bar} also replaces a value that is set but empty, which prevents users " +
		"from configuring an empty value.",
	BadExample:  ": ${foo_flags:=-d}\n: ${foo_enable=NO}",
	GoodExample: ": ${foo_flags=-d}\n: ${foo_enable:=NO}",
}

var defaultColonSuffixes = []string{"enable", "user", "group", "configfile", "config"}

// Suffix returns the text after the last '_' of a variable name, or the
// whole name when it has none.
func Suffix(name string) string {
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func checkDefaultsColon(script *rcscript.Script, opts map[string]any) []lint.Diagnostic {
	allowed := lint.GetStringSliceOption(opts, "colon_suffixes", defaultColonSuffixes)

	var diags []lint.Diagnostic
	for _, v := range script.Variables() {
		if !v.IsDefault() {
			continue
		}
		suffix := Suffix(v.Name)
		switch {
		case v.Clobber && !slices.Contains(allowed, suffix):
			diags = append(diags, lint.At("variables_defaults_non_mandatory_colon", lint.SeverityError, v.Line()))
		case !v.Clobber && suffix == "enable":
			diags = append(diags, lint.At("variables_defaults_mandatory_colon", lint.SeverityError, v.Line()))
		}
	}
	return diags
}
