package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leapstack-labs/rclint/pkg/lint"
)

// ExplanationWidth is the column at which explanations are wrapped.
const ExplanationWidth = 70

// LintDiagnostic is the JSON form of one reported defect.
type LintDiagnostic struct {
	RuleID      string `json:"rule_id"`
	Key         string `json:"key"`
	Severity    string `json:"severity"`
	Line        int    `json:"line,omitempty"`
	Message     string `json:"message"`
	Explanation string `json:"explanation,omitempty"`
}

// LintFileResult groups the defects of one file.
type LintFileResult struct {
	Path        string           `json:"path"`
	Error       string           `json:"error,omitempty"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}

// LintSummary counts reported defects.
type LintSummary struct {
	FilesChecked int  `json:"files_checked"`
	TotalIssues  int  `json:"total_issues"`
	Fatal        int  `json:"fatal"`
	Errors       int  `json:"errors"`
	Warnings     int  `json:"warnings"`
	Aborted      bool `json:"aborted"`
}

// LintOutput is the JSON document written at the end of a run.
type LintOutput struct {
	Files    []LintFileResult `json:"files"`
	Problems []string         `json:"problems,omitempty"`
	Summary  LintSummary      `json:"summary"`
}

// LintSink renders reporter output. Text and markdown are streamed as
// defects arrive; JSON is collected and written by Flush.
type LintSink struct {
	r       *Renderer
	doc     LintOutput
	current *LintFileResult
}

var _ lint.Sink = (*LintSink)(nil)

// NewLintSink creates a sink writing through r.
func NewLintSink(r *Renderer) *LintSink {
	return &LintSink{r: r}
}

// BeginFile announces the file about to be checked.
func (s *LintSink) BeginFile(path string) {
	s.doc.Files = append(s.doc.Files, LintFileResult{Path: path, Diagnostics: []LintDiagnostic{}})
	s.current = &s.doc.Files[len(s.doc.Files)-1]
	s.doc.Summary.FilesChecked++

	switch s.r.EffectiveMode() {
	case ModeJSON:
	case ModeMarkdown:
		s.r.Printf("Checking %s\n", path)
	default:
		s.r.Println(s.r.Styles().Muted.Render("Checking ") + s.r.Styles().FilePath.Render(path))
	}
}

// FileError records a file that could not be read.
func (s *LintSink) FileError(err error) {
	if s.current != nil {
		s.current.Error = err.Error()
	}
	if s.r.EffectiveMode() != ModeJSON {
		s.r.Error(err.Error())
	}
}

// Diagnostic implements lint.Sink.
func (s *LintSink) Diagnostic(d lint.Diagnostic, message, explanation string) {
	s.doc.Summary.TotalIssues++
	switch d.Severity {
	case lint.SeverityFatal:
		s.doc.Summary.Fatal++
	case lint.SeverityError:
		s.doc.Summary.Errors++
	case lint.SeverityWarning:
		s.doc.Summary.Warnings++
	}

	switch s.r.EffectiveMode() {
	case ModeJSON:
		if s.current == nil {
			s.BeginFile(d.File)
		}
		jd := LintDiagnostic{
			RuleID:      d.RuleID,
			Key:         d.Key,
			Severity:    d.Severity.String(),
			Message:     message,
			Explanation: explanation,
		}
		if d.Line != lint.NoLine {
			jd.Line = d.Line + 1
		}
		s.current.Diagnostics = append(s.current.Diagnostics, jd)
	case ModeMarkdown:
		s.r.Printf("- **%s** [%s] %s: %s\n", d.Severity, d.Location(), d.RuleID, message)
		if explanation != "" {
			s.r.Println(WrapExplanation(explanation, ExplanationWidth))
		}
	default:
		st := s.r.Styles()
		s.r.Printf("  %s  %s  %s  %s\n",
			severityLabel(st, d.Severity),
			st.Muted.Render(fmt.Sprintf("[%s]", d.Location())),
			st.Bold.Render(d.RuleID),
			message,
		)
		if explanation != "" {
			s.r.Println(st.Muted.Render(WrapExplanation(explanation, ExplanationWidth)))
		}
	}
}

// Problem implements lint.Sink.
func (s *LintSink) Problem(message string) {
	if s.r.EffectiveMode() == ModeJSON {
		s.doc.Problems = append(s.doc.Problems, message)
		return
	}
	s.r.Error(message)
}

// Flush finishes the run. In JSON mode the collected document is written;
// otherwise a one-line summary is printed.
func (s *LintSink) Flush(aborted bool) error {
	s.doc.Summary.Aborted = aborted
	if s.r.EffectiveMode() == ModeJSON {
		return s.r.JSON(s.doc)
	}
	sum := s.doc.Summary
	if sum.TotalIssues == 0 && !aborted {
		s.r.Success(fmt.Sprintf("No issues found in %d files", sum.FilesChecked))
		return nil
	}
	parts := []string{fmt.Sprintf("%d issues", sum.TotalIssues)}
	if sum.Fatal > 0 {
		parts = append(parts, fmt.Sprintf("%d fatal", sum.Fatal))
	}
	if sum.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d errors", sum.Errors))
	}
	if sum.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warnings", sum.Warnings))
	}
	s.r.Printf("Summary: %s in %d files\n", strings.Join(parts, ", "), sum.FilesChecked)
	return nil
}

// Summary returns the counts so far.
func (s *LintSink) Summary() LintSummary {
	return s.doc.Summary
}

// WrapExplanation word-wraps an explanation with a "==> " lead-in and four
// spaces of indentation on continuation lines.
func WrapExplanation(explanation string, width int) string {
	const lead, indent = "==> ", "    "
	wrapped := text.WrapSoft(explanation, width-len(lead))
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
		if i == 0 {
			lines[i] = lead + lines[i]
		} else {
			lines[i] = indent + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func severityLabel(st *Styles, sev lint.Severity) string {
	switch sev {
	case lint.SeverityFatal:
		return st.Fatal.Render("fatal  ")
	case lint.SeverityError:
		return st.Error.Render("error  ")
	case lint.SeverityWarning:
		return st.Warning.Render("warning")
	default:
		return st.Muted.Render("unknown")
	}
}
