// Package rules registers every built-in rc.d lint rule.
//
// Import it for its side effects:
//
//	import _ "github.com/leapstack-labs/rclint/pkg/lint/rules"
package rules
