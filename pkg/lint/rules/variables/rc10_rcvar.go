package variables

import (
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(Rcvar)
}

// Rcvar checks that rcvar names the service's enable knob.
var Rcvar = lint.RuleDef{
	ID:          "RC10",
	Name:        "variables.rcvar",
	Group:       "variables",
	Description: "rcvar must be ${name}_enable or <name>_enable.",
	Severity:    lint.SeverityError,
	Keys:        []string{"rcvar_incorrect", "file_order"},
	Check:       checkRcvar,
	BadExample:  "name=foo\nrcvar=bar_enable",
	GoodExample: "name=foo\nrcvar=foo_enable",
}

func checkRcvar(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	var progname string
	resolved := false
	for _, v := range script.Variables() {
		switch v.Name {
		case "name":
			progname, resolved = rcscript.Unquote(v.Value()), true
		case "rcvar":
			if !resolved {
				// rcvar cannot be checked before name is known.
				diags = append(diags, lint.At("file_order", lint.SeverityError, v.Line()))
				continue
			}
			value := v.Value()
			if !strings.Contains(value, "${name}_enable") && !strings.Contains(value, progname+"_enable") {
				diags = append(diags, lint.At("rcvar_incorrect", lint.SeverityError, v.Line()))
			}
		}
	}
	return diags
}
