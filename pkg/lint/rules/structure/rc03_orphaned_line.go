package structure

import (
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(OrphanedLine)
}

// OrphanedLine reports non-blank lines that no construct accounts for.
var OrphanedLine = lint.RuleDef{
	ID:          "RC03",
	Name:        "structure.orphaned_line",
	Group:       "structure",
	Description: "Every non-blank line must belong to a comment, variable, statement or function.",
	Severity:    lint.SeverityError,
	Keys:        []string{"orphaned_line"},
	Check:       checkOrphanedLine,
	BadExample:  "name=foo\nmkdir -p /var/run/foo",
	GoodExample: "foo_prestart()\n{\n\tmkdir -p /var/run/foo\n}",
}

// Covered returns the set of line indices claimed by an element. Function
// elements span their whole block, body included.
func Covered(script *rcscript.Script) map[int]bool {
	covered := make(map[int]bool, len(script.Lines))
	for _, e := range script.Elements {
		for _, l := range rcscript.Lines(e) {
			covered[l] = true
		}
	}
	return covered
}

func checkOrphanedLine(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	covered := Covered(script)
	var diags []lint.Diagnostic
	for i, line := range script.Lines {
		if covered[i] || strings.TrimSpace(line) == "" {
			continue
		}
		diags = append(diags, lint.At("orphaned_line", lint.SeverityError, i))
	}
	return diags
}
