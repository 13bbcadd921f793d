package variables

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(Name)
}

// Name checks that name is set and agrees with the file name and PROVIDE.
// A missing name is fatal.
var Name = lint.RuleDef{
	ID:          "RC13",
	Name:        "variables.name",
	Group:       "variables",
	Description: "name must be set, match the file name and be listed in PROVIDE.",
	Severity:    lint.SeverityError,
	Keys:        []string{"name_unset", "name_mismatch"},
	ConfigKeys:  []string{"template_suffix"},
	Check:       checkName,
	Rationale: "rc.subr(8) derives the names of every knob from name, and rcorder(8) " +
		"resolves dependencies through PROVIDE. Both must agree with the installed file name.",
	BadExample:  "# PROVIDE: foo\nname=food",
	GoodExample: "# PROVIDE: foo\nname=foo",
}

// ExpectedName derives the expected program name from a script path: the
// base name without suffix, with '-' replaced by '_'.
func ExpectedName(filename, suffix string) string {
	base := filepath.Base(strings.TrimSuffix(filename, suffix))
	return strings.ReplaceAll(base, "-", "_")
}

func checkName(script *rcscript.Script, opts map[string]any) []lint.Diagnostic {
	name, ok := script.ProgramName()
	if !ok {
		return []lint.Diagnostic{lint.FileLevel("name_unset", lint.SeverityFatal)}
	}

	var provided []string
	for _, m := range script.MetadataOf(rcscript.MetadataProvide) {
		provided = append(provided, m.Tokens...)
	}

	suffix := lint.GetOption(opts, "template_suffix", ".in")
	if name != ExpectedName(script.Filename, suffix) || !slices.Contains(provided, name) {
		return []lint.Diagnostic{lint.FileLevel("name_mismatch", lint.SeverityError)}
	}
	return nil
}
