package testutil

import (
	"slices"
	"strings"
	"testing"

	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

// canonical is a ports rc.d script that passes every rule when checked
// under the name "foo" or "foo.in".
var canonical = []string{
	"#!/bin/sh",
	"",
	"# PROVIDE: foo",
	"# REQUIRE: LOGIN",
	"# KEYWORD: shutdown",
	"",
	". /etc/rc.subr",
	"",
	"name=foo",
	`desc="Foo daemon"`,
	"rcvar=foo_enable",
	"",
	"load_rc_config $name",
	"",
	": ${foo_enable:=NO}",
	": ${foo_config=/usr/local/etc/foo.conf}",
	"",
	"command=/usr/local/sbin/food",
	"start_precmd=foo_prestart",
	"",
	"foo_prestart()",
	"{",
	"\tinstall -d -m 755 /var/run/foo",
	"\techo preparing",
	"}",
	"",
	`run_rc_command "$1"`,
}

// CanonicalLines returns a fresh copy of the canonical script.
func CanonicalLines() []string {
	return slices.Clone(canonical)
}

// CanonicalScript returns the canonical script as file contents.
func CanonicalScript() string {
	return strings.Join(canonical, "\n") + "\n"
}

// Classify classifies lines under the given file name.
func Classify(t testing.TB, filename string, lines []string) *rcscript.Script {
	t.Helper()
	return rcscript.Classify(filename, lines)
}

// Replace returns a copy of lines with the line holding old replaced by
// repl. Passing no replacement deletes the line. It fails the test when
// old is not found.
func Replace(t testing.TB, lines []string, old string, repl ...string) []string {
	t.Helper()
	i := slices.Index(lines, old)
	if i < 0 {
		t.Fatalf("line %q not in script", old)
	}
	return slices.Concat(lines[:i:i], repl, lines[i+1:])
}
