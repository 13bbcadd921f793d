package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/rclint/internal/cli/output"
	"github.com/leapstack-labs/rclint/internal/discover"
	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/lint/catalog"
	_ "github.com/leapstack-labs/rclint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/rclint/pkg/rcscript"
	"github.com/spf13/cobra"
)

// NoRCFilesMessage is printed when discovery finds nothing to check.
const NoRCFilesMessage = "No RC files are in the Makefile?"

// ErrNoFiles is returned when no file arguments are given.
var ErrNoFiles = errors.New("no files to check (pass file names, or . to use the Makefile)")

// discoverRunner runs make during discovery. Tests replace it.
var discoverRunner discover.Runner = discover.ExecRunner

// RunCheck checks every file named in args. A run that ends on a fatal
// defect or the error threshold returns an error matching lint.IsAbort
// after the report has been flushed.
func RunCheck(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	logger := cmdCtx.Logger
	r := cmdCtx.Renderer

	if len(args) == 0 {
		return ErrNoFiles
	}

	files := args
	if discover.Requested(args) {
		var err error
		files, err = discover.Files(cmd.Context(), ".", discoverRunner)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			r.Println(NoRCFilesMessage)
			return nil
		}
		logger.Debug("discovered rc scripts", slog.Any("files", files))
	}

	lang, err := catalog.NormalizeLanguage(cfg.Language)
	if err != nil {
		return err
	}
	messages, err := catalog.Load(cfg.DataDir, lang)
	if err != nil {
		return fmt.Errorf("failed to load message catalog: %w", err)
	}
	logger.Debug("loaded message catalog", slog.String("language", messages.Language), slog.Int("entries", messages.Len()))

	lintCfg, err := cfg.BuildLintConfig()
	if err != nil {
		return err
	}

	sink := output.NewLintSink(r)
	rep := lint.NewReporter(messages, sink, logger, lint.ReporterOptions{
		KeepGoing: cfg.KeepGoing,
		Verbosity: cfg.Verbosity,
	})
	analyzer := lint.NewAnalyzer(lintCfg, logger)

	abort := checkFiles(files, analyzer, rep, sink, logger)
	if err := sink.Flush(abort != nil); err != nil {
		return err
	}
	return abort
}

// checkFiles runs the analyzer over each file in order. Unreadable files
// are reported and skipped. The first abort error ends the loop.
func checkFiles(files []string, analyzer *lint.Analyzer, rep *lint.Reporter, sink *output.LintSink, logger *slog.Logger) error {
	for _, path := range files {
		sink.BeginFile(path)

		script, err := rcscript.Load(path)
		if err != nil {
			logger.Warn("skipping file", slog.String("file", path), slog.Any("error", err))
			sink.FileError(err)
			continue
		}

		if err := analyzer.Check(script, rep); err != nil {
			logger.Debug("run aborted", slog.String("file", path), slog.Any("error", err))
			return err
		}
	}
	return nil
}
