package ports

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(DefaultsOldStyle)
}

// DefaultsOldStyle flags foo=${foo:-bar}, which is the shorthand
// : ${foo:=bar} written the long way.
var DefaultsOldStyle = lint.RuleDef{
	ID:          "PT02",
	Name:        "ports.defaults_old_style",
	Group:       "ports",
	Description: "Defaults must use the : ${foo:=bar} form.",
	Severity:    lint.SeverityError,
	Keys:        []string{"variables_defaults_old_style"},
	Modes:       []lint.Mode{lint.ModePorts},
	Check:       checkDefaultsOldStyle,
	BadExample:  "foo_enable=${foo_enable:-NO}",
	GoodExample: ": ${foo_enable:=NO}",
}

func checkDefaultsOldStyle(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, v := range script.Variables() {
		if v.Form == rcscript.FormLonghand && v.Name == v.Source {
			diags = append(diags, lint.At("variables_defaults_old_style", lint.SeverityError, v.Line()))
		}
	}
	return diags
}
