package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/leapstack-labs/rclint/internal/cli/config"
	"github.com/leapstack-labs/rclint/internal/cli/output"
	clitestutil "github.com/leapstack-labs/rclint/internal/cli/testutil"
	"github.com/leapstack-labs/rclint/internal/testutil"
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := NewRootCmd()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Check(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	lines := testutil.Replace(t, testutil.CanonicalLines(), "command=/usr/local/sbin/food",
		`command="/usr/local/sbin/food"`)
	path := clitestutil.WriteScript(t, dir, "files/foo.in", lines)

	t.Run("markdown", func(t *testing.T) {
		out, _, err := execute(t, "-o", "markdown", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Checking "+path)
		assert.Contains(t, out, "- **error** [18] RC07: Value is needlessly quoted")
		clitestutil.AssertNoANSI(t, out)
	})

	t.Run("verbose adds explanation", func(t *testing.T) {
		out, _, err := execute(t, "-v", "-o", "markdown", path)
		require.NoError(t, err)
		assert.Contains(t, out, "==> ")
		assert.Equal(t, 1, config.GetCurrentConfig().Verbosity)
	})

	t.Run("disable flag", func(t *testing.T) {
		out, _, err := execute(t, "--disable", "RC07", "-o", "markdown", path)
		require.NoError(t, err)
		assert.NotContains(t, out, "RC07")
	})
}

func TestRootCommand_ModeFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := clitestutil.WriteScript(t, dir, "foo.in", testutil.CanonicalLines())

	t.Run("base", func(t *testing.T) {
		_, _, err := execute(t, "-b", "-o", "markdown", path)
		require.NoError(t, err)
		assert.Equal(t, lint.ModeBase, config.GetCurrentConfig().Mode)
	})

	t.Run("ports", func(t *testing.T) {
		_, _, err := execute(t, "-p", "-o", "markdown", path)
		require.NoError(t, err)
		assert.Equal(t, lint.ModePorts, config.GetCurrentConfig().Mode)
	})

	t.Run("mutually exclusive", func(t *testing.T) {
		_, _, err := execute(t, "-b", "-p", path)
		require.Error(t, err)
	})
}

func TestRootCommand_AbortIsAnError(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := clitestutil.WriteScript(t, dir, "foo.in", testutil.Replace(t, testutil.CanonicalLines(), "name=foo"))

	_, _, err := execute(t, "-o", "markdown", path)
	require.Error(t, err)
	assert.True(t, lint.IsAbort(err))
}

func TestRootCommand_InvalidOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := execute(t, "-o", "html", "foo.in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output mode")
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("version", func(t *testing.T) {
		out, _, err := execute(t, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "rclint v"+Version)
	})

	t.Run("version flag", func(t *testing.T) {
		out, _, err := execute(t, "--version")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "rclint "+Version))
	})

	t.Run("rules", func(t *testing.T) {
		out, _, err := execute(t, "rules", "-o", "json")
		require.NoError(t, err)
		assert.Contains(t, out, `"id": "RC00"`)
	})

	t.Run("completion", func(t *testing.T) {
		out, _, err := execute(t, "completion", "bash")
		require.NoError(t, err)
		assert.Contains(t, out, "rclint")
	})
}

func TestContextFallbacks(t *testing.T) {
	ctx := context.Background()

	cfg := GetConfig(ctx)
	require.NotNil(t, cfg)
	assert.Equal(t, lint.ModePorts, cfg.Mode)

	r := GetRenderer(ctx)
	require.NotNil(t, r)
	assert.Equal(t, output.ModeAuto, r.Mode())

	stored := &config.Config{Language: "de"}
	ctx = context.WithValue(ctx, configKey{}, stored)
	assert.Same(t, stored, GetConfig(ctx))
}
