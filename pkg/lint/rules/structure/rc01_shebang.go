package structure

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(Shebang)
}

// Shebang requires the first comment to be an interpreter line.
var Shebang = lint.RuleDef{
	ID:          "RC01",
	Name:        "structure.shebang",
	Group:       "structure",
	Description: "The script must start with a #! interpreter line.",
	Severity:    lint.SeverityError,
	Keys:        []string{"shebang"},
	Check:       checkShebang,
	BadExample:  "# PROVIDE: foo",
	GoodExample: "#!/bin/sh\n\n# PROVIDE: foo",
}

func checkShebang(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	if script.Shebang != nil {
		return nil
	}
	return []lint.Diagnostic{lint.FileLevel("shebang", lint.SeverityError)}
}
