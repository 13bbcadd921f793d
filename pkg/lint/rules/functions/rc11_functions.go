package functions

import (
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(Functions)
}

// Functions flags one-line functions and bodies that call forbidden
// commands.
var Functions = lint.RuleDef{
	ID:          "RC11",
	Name:        "functions.body",
	Group:       "functions",
	Description: "Functions must be longer than one line and must not call chown.",
	Severity:    lint.SeverityError,
	Keys:        []string{"functions_short", "functions_chown"},
	ConfigKeys:  []string{"forbidden_commands"},
	Check:       checkFunctions,
	Rationale:   "A one-line function is clearer as an inline precmd. chown at start time hides packaging problems.",
	BadExample:  "foo_prestart()\n{\n\tchown foo /var/run/foo\n}",
	GoodExample: "start_precmd=\"install -d -o foo /var/run/foo\"",
}

var defaultForbiddenCommands = []string{"chown"}

func checkFunctions(script *rcscript.Script, opts map[string]any) []lint.Diagnostic {
	forbidden := lint.GetStringSliceOption(opts, "forbidden_commands", defaultForbiddenCommands)

	var diags []lint.Diagnostic
	for _, fn := range script.Functions() {
		if fn.Short() {
			diags = append(diags, lint.At("functions_short", lint.SeverityError, fn.Line()))
		}
		for i, line := range fn.Body {
			for _, cmd := range forbidden {
				if strings.Contains(line, cmd) {
					diags = append(diags, lint.At("functions_chown", lint.SeverityWarning, fn.BodyStart+i))
					break
				}
			}
		}
	}
	return diags
}
