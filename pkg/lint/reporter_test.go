package lint

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/rclint/internal/testutil"
)

type fakeMessages map[string][2]string

func (m fakeMessages) Message(key string) string     { return m[key][0] }
func (m fakeMessages) Explanation(key string) string { return m[key][1] }

type recordingSink struct {
	diagnostics  []Diagnostic
	explanations []string
	problems     []string
}

func (s *recordingSink) Diagnostic(d Diagnostic, _ string, explanation string) {
	s.diagnostics = append(s.diagnostics, d)
	s.explanations = append(s.explanations, explanation)
}

func (s *recordingSink) Problem(message string) {
	s.problems = append(s.problems, message)
}

var testMessages = fakeMessages{
	"value_empty":              {"Value is empty", "Give it a value."},
	"rcorder_keyword_shutdown": {"KEYWORD does not contain shutdown", "Add shutdown."},
	"name_unset":               {"name is not set", "Set name."},
}

func newTestReporter(t *testing.T, opts ReporterOptions) (*Reporter, *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	return NewReporter(testMessages, sink, testutil.NewTestLogger(t), opts), sink
}

func TestReporterThreshold(t *testing.T) {
	t.Run("aborts on the eleventh error", func(t *testing.T) {
		rep, sink := newTestReporter(t, ReporterOptions{})
		var err error
		n := 0
		for n < 20 && err == nil {
			err = rep.Report(At("value_empty", SeverityError, n))
			n++
		}
		require.ErrorIs(t, err, ErrThreshold)
		assert.Equal(t, 11, n)
		assert.Len(t, sink.diagnostics, 11)
		require.Len(t, sink.problems, 1)
		assert.Equal(t, ThresholdMessage+ThresholdHint, sink.problems[0])
	})

	t.Run("keep going reports everything", func(t *testing.T) {
		rep, sink := newTestReporter(t, ReporterOptions{KeepGoing: true})
		for n := 0; n < 11; n++ {
			require.NoError(t, rep.Report(At("value_empty", SeverityError, n)))
		}
		assert.Equal(t, 11, rep.Count())
		assert.Len(t, sink.diagnostics, 11)
		assert.Empty(t, sink.problems)
	})

	t.Run("warnings count", func(t *testing.T) {
		rep, _ := newTestReporter(t, ReporterOptions{})
		for n := 0; n < 10; n++ {
			require.NoError(t, rep.Report(FileLevel("rcorder_keyword_shutdown", SeverityWarning)))
		}
		err := rep.Report(FileLevel("rcorder_keyword_shutdown", SeverityWarning))
		require.ErrorIs(t, err, ErrThreshold)
	})

	t.Run("no hint when verbose", func(t *testing.T) {
		rep, sink := newTestReporter(t, ReporterOptions{Verbosity: 1, Threshold: 1})
		require.NoError(t, rep.Report(At("value_empty", SeverityError, 0)))
		require.ErrorIs(t, rep.Report(At("value_empty", SeverityError, 1)), ErrThreshold)
		assert.Equal(t, []string{ThresholdMessage}, sink.problems)
	})
}

func TestReporterCountIsSharedAcrossFiles(t *testing.T) {
	rep, _ := newTestReporter(t, ReporterOptions{})
	for n := 0; n < 6; n++ {
		d := At("value_empty", SeverityError, n)
		d.File = "files/a.in"
		require.NoError(t, rep.Report(d))
	}
	var err error
	for n := 0; n < 5 && err == nil; n++ {
		d := At("value_empty", SeverityError, n)
		d.File = "files/b.in"
		err = rep.Report(d)
	}
	require.ErrorIs(t, err, ErrThreshold)
	assert.Equal(t, 11, rep.Count())
}

func TestReporterFatal(t *testing.T) {
	rep, sink := newTestReporter(t, ReporterOptions{KeepGoing: true})
	err := rep.Report(FileLevel("name_unset", SeverityFatal))
	require.ErrorIs(t, err, ErrFatal)
	assert.True(t, IsAbort(err))
	assert.Len(t, sink.diagnostics, 1)
	assert.Equal(t, 1, rep.Count())
}

func TestReporterUnknownKey(t *testing.T) {
	rep, sink := newTestReporter(t, ReporterOptions{})
	require.NoError(t, rep.Report(FileLevel("no_such_key", SeverityFatal)))
	assert.Empty(t, sink.diagnostics)
	assert.Equal(t, []string{"No such error: no_such_key"}, sink.problems)
	assert.Equal(t, 1, rep.Count())
}

func TestReporterExplanations(t *testing.T) {
	for _, verbosity := range []int{0, 1, 2} {
		t.Run(fmt.Sprintf("verbosity %d", verbosity), func(t *testing.T) {
			rep, sink := newTestReporter(t, ReporterOptions{Verbosity: verbosity})
			require.NoError(t, rep.Report(At("value_empty", SeverityError, 3)))
			want := ""
			if verbosity > 0 {
				want = "Give it a value."
			}
			assert.Equal(t, []string{want}, sink.explanations)
		})
	}
}
