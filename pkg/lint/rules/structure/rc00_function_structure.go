package structure

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(FunctionStructure)
}

// FunctionStructure reports the defects found while classifying function
// blocks. It sorts first so these are reported before any other rule.
var FunctionStructure = lint.RuleDef{
	ID:          "RC00",
	Name:        "structure.functions",
	Group:       "structure",
	Description: "Function blocks must be written as name(), {, indented body, }.",
	Severity:    lint.SeverityError,
	Keys: []string{
		rcscript.DefectInlineBrace,
		rcscript.DefectSignature,
		rcscript.DefectNeverending,
		rcscript.DefectIndent,
	},
	Check:       checkFunctionStructure,
	Rationale:   "rc.subr(8) style puts the opening brace of a function on its own line so blocks are easy to find with a line-based tool.",
	BadExample:  "foo_start() {\n\techo start\n}",
	GoodExample: "foo_start()\n{\n\techo start\n}",
}

func checkFunctionStructure(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	var diags []lint.Diagnostic
	for _, d := range script.Defects {
		diags = append(diags, lint.At(d.Key, lint.SeverityError, d.Line))
	}
	return diags
}
