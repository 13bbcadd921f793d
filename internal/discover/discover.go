// Package discover finds the rc scripts a ports Makefile installs.
package discover

import (
	"context"
	"fmt"
	"os/exec"
	"path"
	"strings"
)

// Trigger is the single argument that asks for discovery instead of an
// explicit file list.
const Trigger = "."

// Runner runs name with args in dir and returns its standard output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// ExecRunner runs commands with os/exec.
func ExecRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return out, nil
}

// Requested reports whether the positional arguments ask for discovery.
func Requested(args []string) bool {
	return len(args) > 0 && args[0] == Trigger
}

// Files asks make for USE_RC_SUBR in dir and maps every entry to its
// template under files/. An empty list is not an error.
func Files(ctx context.Context, dir string, run Runner) ([]string, error) {
	if run == nil {
		run = ExecRunner
	}
	out, err := run(ctx, dir, "make", "-VUSE_RC_SUBR")
	if err != nil {
		return nil, fmt.Errorf("failed to query Makefile: %w", err)
	}
	return Paths(string(out)), nil
}

// Paths maps the whitespace-separated script names printed by make to
// files/<name>.in.
func Paths(names string) []string {
	fields := strings.Fields(names)
	paths := make([]string, 0, len(fields))
	for _, name := range fields {
		paths = append(paths, path.Join("files", name+".in"))
	}
	return paths
}
