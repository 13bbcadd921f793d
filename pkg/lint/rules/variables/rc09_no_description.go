package variables

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(NoDescription)
}

// NoDescription requires a desc variable.
var NoDescription = lint.RuleDef{
	ID:          "RC09",
	Name:        "variables.desc",
	Group:       "variables",
	Description: "The script must set desc.",
	Severity:    lint.SeverityError,
	Keys:        []string{"no_description"},
	Check:       checkNoDescription,
	GoodExample: `desc="Foo daemon"`,
}

func checkNoDescription(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	if _, ok := script.Variable("desc"); ok {
		return nil
	}
	return []lint.Diagnostic{lint.FileLevel("no_description", lint.SeverityError)}
}
