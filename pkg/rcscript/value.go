package rcscript

import "strings"

// quoteSensitive holds the characters that justify quoting a value.
const quoteSensitive = " \t|%&;<>()$`\\\"'"

// Quoted reports whether the whole value is wrapped in one pair of matching
// single or double quotes.
func Quoted(v string) bool {
	if len(v) < 2 {
		return false
	}
	q := v[0]
	return (q == '"' || q == '\'') && v[len(v)-1] == q
}

// Unquote strips one layer of surrounding quotes.
func Unquote(v string) string {
	if Quoted(v) {
		return v[1 : len(v)-1]
	}
	return v
}

// PointlessQuoted reports whether v is quoted although nothing inside
// needs quoting. An empty pair of quotes is left to Empty.
func PointlessQuoted(v string) bool {
	if !Quoted(v) {
		return false
	}
	inner := v[1 : len(v)-1]
	return inner != "" && !strings.ContainsAny(inner, quoteSensitive)
}

// Empty reports whether the value is blank once a quote layer is removed.
func Empty(v string) bool {
	return strings.TrimSpace(Unquote(v)) == ""
}
