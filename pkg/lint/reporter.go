package lint

import (
	"errors"
	"fmt"
	"log/slog"
)

// DefaultThreshold is the number of reported defects after which a run
// aborts unless keep-going is set.
const DefaultThreshold = 10

// Abort conditions returned by Reporter.Report. Callers stop the run and
// exit non-zero when they see either of them.
var (
	ErrFatal     = errors.New("fatal defect")
	ErrThreshold = errors.New("error threshold reached")
)

// ThresholdMessage is emitted once when the threshold is exceeded.
const ThresholdMessage = "Error threshold reached-- further errors are unlikely to be helpful.  " +
	"Fix the errors and rerun.  The -k option will cause rclint to continue for as many errors as it finds."

// ThresholdHint is appended to ThresholdMessage when explanations are off.
const ThresholdHint = "  Try rerunning with -v option for extra details."

// Messages resolves catalog keys. *catalog.Catalog satisfies it.
type Messages interface {
	Message(key string) string
	Explanation(key string) string
}

// Sink receives formatted reports.
type Sink interface {
	// Diagnostic is called for each defect with its catalog message. The
	// explanation is empty unless verbosity is above zero.
	Diagnostic(d Diagnostic, message, explanation string)
	// Problem is called for reporter-level errors such as an unknown key
	// or the threshold message.
	Problem(message string)
}

// ReporterOptions configures a Reporter.
type ReporterOptions struct {
	KeepGoing bool
	Verbosity int
	Threshold int // zero means DefaultThreshold
}

// Reporter turns diagnostics into catalog-backed reports and enforces the
// abort threshold. One Reporter is shared by every file in a run, so the
// defect count is never reset between files.
type Reporter struct {
	messages Messages
	sink     Sink
	logger   *slog.Logger
	opts     ReporterOptions
	count    int
}

// NewReporter creates a reporter writing to sink.
func NewReporter(messages Messages, sink Sink, logger *slog.Logger, opts ReporterOptions) *Reporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Reporter{
		messages: messages,
		sink:     sink,
		logger:   logger,
		opts:     opts,
	}
}

// Count returns the number of defects reported so far.
func (r *Reporter) Count() int {
	return r.count
}

// Report emits one diagnostic. It returns ErrFatal after a fatal defect
// and ErrThreshold once the count exceeds the threshold without
// keep-going; the caller must stop checking in both cases.
func (r *Reporter) Report(d Diagnostic) error {
	msg := r.messages.Message(d.Key)
	if msg != "" {
		explanation := ""
		if r.opts.Verbosity > 0 {
			explanation = r.messages.Explanation(d.Key)
		}
		r.sink.Diagnostic(d, msg, explanation)
		if d.Severity == SeverityFatal {
			r.count++
			r.logger.Debug("fatal defect", slog.String("file", d.File), slog.String("key", d.Key))
			return fmt.Errorf("%w: %s", ErrFatal, d.Key)
		}
	} else {
		r.sink.Problem("No such error: " + d.Key)
	}

	r.count++
	if r.count > r.opts.Threshold && !r.opts.KeepGoing {
		hint := ""
		if r.opts.Verbosity == 0 {
			hint = ThresholdHint
		}
		r.sink.Problem(ThresholdMessage + hint)
		r.logger.Debug("threshold exceeded", slog.Int("count", r.count))
		return ErrThreshold
	}
	return nil
}

// IsAbort reports whether err ends the run.
func IsAbort(err error) bool {
	return errors.Is(err, ErrFatal) || errors.Is(err, ErrThreshold)
}
