package variables

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/lint/internal/order"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(VariablesOrder)
}

// VariablesOrder requires init variables first, then default assignments,
// then plain assignments. eval lines are not ordered.
var VariablesOrder = lint.RuleDef{
	ID:          "RC06",
	Name:        "variables.order",
	Group:       "variables",
	Description: "Variables must be grouped as name/desc/rcvar, then defaults, then the rest.",
	Severity:    lint.SeverityError,
	Keys:        []string{"variables_order"},
	Check:       checkVariablesOrder,
	BadExample:  "command=/usr/sbin/food\n: ${foo_enable:=NO}",
	GoodExample: ": ${foo_enable:=NO}\n\ncommand=/usr/sbin/food",
}

var variableBuckets = [][]rcscript.VariableKind{
	{rcscript.VariableInit},
	{rcscript.VariableLonghand, rcscript.VariableShorthand},
	{rcscript.VariableBasic},
}

func checkVariablesOrder(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	seq := &order.Sequence{}
	for _, bucket := range variableBuckets {
		for _, v := range script.Variables() {
			for _, kind := range bucket {
				if v.Kind == kind {
					order.Add(seq, v)
				}
			}
		}
	}
	if seq.InOrder() {
		return nil
	}
	return []lint.Diagnostic{lint.FileLevel("variables_order", lint.SeverityError)}
}
