// Package rcscript classifies the lines of an rc.d service script into typed
// elements.
//
// A script is read once, front to back. Each physical line is either claimed
// by exactly one element (a variable assignment, a comment, a control
// statement or a function block) or left unclassified. Dependency metadata
// (PROVIDE, REQUIRE, BEFORE, KEYWORD) and the shebang are derived from the
// comments after the pass.
//
// The package does not execute or evaluate the script. Everything is textual.
//
// # Usage
//
//	script := rcscript.Classify("files/foo.in", lines)
//	for _, v := range script.Variables() {
//		fmt.Println(v.Name, v.Kind)
//	}
package rcscript
