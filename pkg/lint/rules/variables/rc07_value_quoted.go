package variables

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(ValueQuoted)
}

// ValueQuoted flags quotes around values that need none. Statement
// arguments are checked too.
var ValueQuoted = lint.RuleDef{
	ID:          "RC07",
	Name:        "variables.quoted",
	Group:       "variables",
	Description: "Values must only be quoted when they contain whitespace or shell metacharacters.",
	Severity:    lint.SeverityError,
	Keys:        []string{"value_quoted"},
	Check:       checkValueQuoted,
	BadExample:  `command="/usr/sbin/food"`,
	GoodExample: `command=/usr/sbin/food`,
}

func checkValueQuoted(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, e := range script.Elements {
		switch e.(type) {
		case *rcscript.Variable, *rcscript.Statement:
			if rcscript.PointlessQuoted(e.Value()) {
				diags = append(diags, lint.At("value_quoted", lint.SeverityError, e.Line()))
			}
		}
	}
	return diags
}
