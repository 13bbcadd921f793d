package variables

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(ValueEmpty)
}

// ValueEmpty flags assignments of a blank value.
var ValueEmpty = lint.RuleDef{
	ID:          "RC08",
	Name:        "variables.empty",
	Group:       "variables",
	Description: "Assignments must not set an empty value.",
	Severity:    lint.SeverityError,
	Keys:        []string{"value_empty"},
	Check:       checkValueEmpty,
	BadExample:  `foo_flags=""`,
}

func checkValueEmpty(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, v := range script.Variables() {
		if rcscript.Empty(v.Value()) {
			diags = append(diags, lint.At("value_empty", lint.SeverityError, v.Line()))
		}
	}
	return diags
}
