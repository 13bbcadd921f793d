package metadata

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/lint/internal/order"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(RcorderOrder)
}

// RcorderOrder requires the metadata lines in PROVIDE, REQUIRE, BEFORE,
// KEYWORD order.
var RcorderOrder = lint.RuleDef{
	ID:          "RC04",
	Name:        "metadata.order",
	Group:       "metadata",
	Description: "rcorder(8) metadata must appear as PROVIDE, REQUIRE, BEFORE, KEYWORD.",
	Severity:    lint.SeverityError,
	Keys:        []string{"rcorder_order"},
	Check:       checkRcorderOrder,
	BadExample:  "# REQUIRE: LOGIN\n# PROVIDE: foo",
	GoodExample: "# PROVIDE: foo\n# REQUIRE: LOGIN",
}

func checkRcorderOrder(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	seq := &order.Sequence{}
	for _, typ := range rcscript.MetadataTypes {
		order.Add(seq, script.MetadataOf(typ)...)
	}
	if seq.InOrder() {
		return nil
	}
	return []lint.Diagnostic{lint.FileLevel("rcorder_order", lint.SeverityError)}
}
