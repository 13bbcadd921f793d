// Package lint provides the rule framework for checking rc.d scripts.
//
// # Architecture
//
// Scripts are classified by package rcscript into elements (comments,
// statements, variables and functions). Rules are stateless functions over
// the classified script; the Analyzer runs them in a fixed order and the
// Reporter resolves their catalog keys, prints them and enforces the abort
// threshold.
//
// # Rule Registration
//
// Rules are registered via init() functions when their packages are imported:
//
//	import _ "github.com/leapstack-labs/rclint/pkg/lint/rules"
//
// # Rule Groups
//
//   - structure: shebang, file order, orphaned lines, function structure
//   - metadata: rcorder(8) comment block
//   - variables: ordering, quoting and the required variables
//   - functions: function bodies
//   - statements: run_rc_command
//   - ports: default-assignment conventions for ports scripts
//
// Rules run universal first, then mode-specific, each in ID order. Because
// the reporter aborts after a fixed number of defects, this order decides
// which defects are seen on a bad script.
//
// # Configuration
//
// Use Config to control which rules are enabled and their severity:
//
//	config := lint.NewConfig().WithMode(lint.ModeBase)
//	config.Disable("RC07")
//	config.SetSeverity("RC11", lint.SeverityError)
//	config.SetRuleOptions("RC11", map[string]any{"forbidden_commands": []string{"chown", "chmod"}})
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		ID:          "XX01",
//		Name:        "my-rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Keys:        []string{"my_key"},
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
