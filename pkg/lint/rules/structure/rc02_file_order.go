package structure

import (
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/lint/internal/order"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(FileOrder)
}

// FileOrder checks the canonical layout of an rc.d script.
var FileOrder = lint.RuleDef{
	ID:          "RC02",
	Name:        "structure.file_order",
	Group:       "structure",
	Description: "Constructs must follow the canonical rc.d file order.",
	Severity:    lint.SeverityError,
	Keys:        []string{"file_order"},
	Check:       checkFileOrder,
	Rationale: "Every script in the tree uses the same layout: shebang, rcorder metadata, " +
		". /etc/rc.subr, name/desc/rcvar, load_rc_config, the other variables, functions " +
		"and finally run_rc_command. Reviewers rely on it.",
	BadExample:  "name=foo\n. /etc/rc.subr",
	GoodExample: ". /etc/rc.subr\n\nname=foo",
}

// CanonicalSequence returns the line indices of the ordered constructs,
// category by category in canonical order and in discovery order within a
// category. A well-ordered script yields an ascending sequence.
func CanonicalSequence(script *rcscript.Script) *order.Sequence {
	seq := &order.Sequence{}
	if script.Shebang != nil {
		order.Add(seq, script.Shebang)
	}
	order.Add(seq, script.Metadata...)
	order.Add(seq, script.Statements(rcscript.StatementSource)...)

	var initVars, otherVars []*rcscript.Variable
	for _, v := range script.Variables() {
		if v.Kind == rcscript.VariableInit {
			initVars = append(initVars, v)
		} else {
			otherVars = append(otherVars, v)
		}
	}
	order.Add(seq, initVars...)
	order.Add(seq, script.Statements(rcscript.StatementLoadConfig)...)
	order.Add(seq, otherVars...)
	order.Add(seq, script.Functions()...)
	order.Add(seq, script.Statements(rcscript.StatementRunCommand)...)
	return seq
}

func checkFileOrder(script *rcscript.Script, _ map[string]any) []lint.Diagnostic {
	line, ok := CanonicalSequence(script).FirstDivergence()
	if !ok {
		return nil
	}
	return []lint.Diagnostic{lint.At("file_order", lint.SeverityError, line)}
}
