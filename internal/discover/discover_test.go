package discover

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequested(t *testing.T) {
	assert.True(t, Requested([]string{"."}))
	assert.True(t, Requested([]string{".", "extra"}))
	assert.False(t, Requested([]string{"files/foo.in"}))
	assert.False(t, Requested(nil))
}

func TestPaths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "foo\n", []string{"files/foo.in"}},
		{"several", "foo  bar\tbaz\n", []string{"files/foo.in", "files/bar.in", "files/baz.in"}},
		{"empty", "\n", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paths(tt.in))
		})
	}
}

func TestFiles(t *testing.T) {
	var gotDir, gotName string
	var gotArgs []string
	run := func(_ context.Context, dir, name string, args ...string) ([]byte, error) {
		gotDir, gotName, gotArgs = dir, name, args
		return []byte("foo bar\n"), nil
	}

	files, err := Files(context.Background(), "/usr/ports/sysutils/foo", run)
	require.NoError(t, err)

	assert.Equal(t, "/usr/ports/sysutils/foo", gotDir)
	assert.Equal(t, "make", gotName)
	assert.Equal(t, []string{"-VUSE_RC_SUBR"}, gotArgs)
	assert.Equal(t, []string{"files/foo.in", "files/bar.in"}, files)
}

func TestFiles_RunnerError(t *testing.T) {
	run := func(context.Context, string, string, ...string) ([]byte, error) {
		return nil, errors.New("make: not found")
	}

	_, err := Files(context.Background(), ".", run)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query Makefile")
}
