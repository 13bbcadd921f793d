package statements

import (
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(RunRcArgument)
}

// RunRcArgument requires run_rc_command to forward the script argument.
var RunRcArgument = lint.RuleDef{
	ID:          "RC12",
	Name:        "statements.run_rc_command",
	Group:       "statements",
	Description: `run_rc_command must be passed "$1" or $*.`,
	Severity:    lint.SeverityError,
	Keys:        []string{"run_rc_argument"},
	Check:       checkRunRcArgument,
	BadExample:  "run_rc_command start",
	GoodExample: `run_rc_command "$1"`,
}

func checkRunRcArgument(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, st := range script.Statements(rcscript.StatementRunCommand) {
		if !strings.Contains(st.Value(), "$1") && !strings.Contains(st.Value(), "$*") {
			diags = append(diags, lint.At("run_rc_argument", lint.SeverityError, st.Line()))
		}
	}
	return diags
}
