package metadata

import (
	"slices"
	"strings"

	"github.com/leapstack-labs/rclint/pkg/lint"
	"github.com/leapstack-labs/rclint/pkg/rcscript"
)

func init() {
	lint.Register(RcorderKeyword)
}

// RcorderKeyword rejects obsolete KEYWORD values and asks for shutdown.
var RcorderKeyword = lint.RuleDef{
	ID:          "RC05",
	Name:        "metadata.keyword",
	Group:       "metadata",
	Description: "KEYWORD must not contain FreeBSD and should contain shutdown.",
	Severity:    lint.SeverityError,
	Keys:        []string{"rcorder_keyword_freebsd", "rcorder_keyword_shutdown"},
	ConfigKeys:  []string{"forbidden_keywords"},
	Check:       checkRcorderKeyword,
	Rationale:   "The FreeBSD keyword is obsolete. Services without shutdown are not stopped when the system goes down.",
	BadExample:  "# KEYWORD: FreeBSD",
	GoodExample: "# KEYWORD: shutdown",
}

var defaultForbiddenKeywords = []string{"freebsd"}

func checkRcorderKeyword(script *rcscript.Script, opts map[string]any) []lint.Diagnostic {
	var forbidden []string
	for _, kw := range lint.GetStringSliceOption(opts, "forbidden_keywords", defaultForbiddenKeywords) {
		forbidden = append(forbidden, strings.ToLower(kw))
	}

	keywords := script.MetadataOf(rcscript.MetadataKeyword)
	if len(keywords) == 0 {
		return nil
	}

	var diags []lint.Diagnostic
	shutdown := false
	for _, m := range keywords {
		if slices.ContainsFunc(m.Tokens, func(tok string) bool {
			return slices.Contains(forbidden, strings.ToLower(tok))
		}) {
			diags = append(diags, lint.At("rcorder_keyword_freebsd", lint.SeverityError, m.Line()))
		}
		if slices.Contains(m.Tokens, "shutdown") {
			shutdown = true
		}
	}
	if !shutdown {
		diags = append(diags, lint.FileLevel("rcorder_keyword_shutdown", lint.SeverityWarning))
	}
	return diags
}
