package rcscript

import "strings"

// Form is the syntactic form of an assignment.
type Form int

// Assignment forms.
const (
	FormBasic     Form = iota // name=value
	FormLonghand              // name=${src:-default} or name=${src-default}
	FormShorthand             // : ${name:=default} or : ${name=default}
	FormEval                  // eval ...
)

func (f Form) String() string {
	switch f {
	case FormBasic:
		return "basic"
	case FormLonghand:
		return "longhand"
	case FormShorthand:
		return "shorthand"
	case FormEval:
		return "eval"
	default:
		return "unknown"
	}
}

// Assignment is the parsed form of one assignment line.
type Assignment struct {
	Form    Form
	Name    string
	Source  string // longhand only
	Value   string
	Clobber bool
}

// ParseAssignment parses a single physical line as a variable assignment.
//
// The grammar:
//
//	assignment := named | eval | shorthand
//	named      := NAME '=' ( longhand | REST )
//	longhand   := '"'? '${' IDENT ( ':-' | '-' ) WORD '}' '"'?
//	eval       := 'eval' ( WS REST | EOL )
//	shorthand  := ':' WS+ '${' IDENT ( ':=' | '=' ) WORD '}'
//
// WORD balances nested ${...} expansions and skips quoted strings and
// backslash escapes, so a '}' inside quotes does not end the expansion.
func ParseAssignment(line string) (Assignment, bool) {
	if a, ok := parseNamed(line); ok {
		return a, true
	}
	if a, ok := parseEval(line); ok {
		return a, true
	}
	return parseShorthand(line)
}

func parseNamed(line string) (Assignment, bool) {
	end := strings.IndexAny(line, "# \t=")
	if end <= 0 || line[end] != '=' {
		return Assignment{}, false
	}
	a := Assignment{Form: FormBasic, Name: line[:end], Value: line[end+1:]}
	if src, def, clobber, ok := parseLonghand(a.Value); ok {
		a.Form = FormLonghand
		a.Source = src
		a.Value = def
		a.Clobber = clobber
	}
	return a, true
}

func parseLonghand(value string) (source, def string, clobber, ok bool) {
	p := &scanner{s: strings.TrimRight(value, " \t")}
	quoted := p.accept(`"`)
	if !p.accept("${") {
		return "", "", false, false
	}
	if source, ok = p.ident(); !ok {
		return "", "", false, false
	}
	switch {
	case p.accept(":-"):
		clobber = true
	case p.accept("-"):
	default:
		return "", "", false, false
	}
	if def, ok = p.word(); !ok || !p.accept("}") {
		return "", "", false, false
	}
	if quoted && !p.accept(`"`) {
		return "", "", false, false
	}
	if !p.eof() {
		return "", "", false, false
	}
	return source, def, clobber, true
}

func parseEval(line string) (Assignment, bool) {
	if line != "eval" && !strings.HasPrefix(line, "eval ") && !strings.HasPrefix(line, "eval\t") {
		return Assignment{}, false
	}
	return Assignment{Form: FormEval, Name: line, Value: line}, true
}

func parseShorthand(line string) (Assignment, bool) {
	p := &scanner{s: line}
	if !p.accept(":") || !p.spaces() || !p.accept("${") {
		return Assignment{}, false
	}
	name, ok := p.ident()
	if !ok {
		return Assignment{}, false
	}
	a := Assignment{Form: FormShorthand, Name: name}
	switch {
	case p.accept(":="):
		a.Clobber = true
	case p.accept("="):
	default:
		return Assignment{}, false
	}
	if a.Value, ok = p.word(); !ok || !p.accept("}") {
		return Assignment{}, false
	}
	return a, true
}

// scanner is a cursor over one line.
type scanner struct {
	s   string
	pos int
}

func (p *scanner) eof() bool { return p.pos >= len(p.s) }

func (p *scanner) accept(prefix string) bool {
	if strings.HasPrefix(p.s[p.pos:], prefix) {
		p.pos += len(prefix)
		return true
	}
	return false
}

// spaces consumes at least one blank.
func (p *scanner) spaces() bool {
	start := p.pos
	for !p.eof() && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
	return p.pos > start
}

func (p *scanner) ident() (string, bool) {
	start := p.pos
	for !p.eof() {
		c := p.s[p.pos]
		if c == '_' || isLetter(c) || (p.pos > start && isDigit(c)) {
			p.pos++
			continue
		}
		break
	}
	return p.s[start:p.pos], p.pos > start
}

// word reads up to, but not including, the '}' closing the current
// expansion.
func (p *scanner) word() (string, bool) {
	start := p.pos
	for !p.eof() {
		switch c := p.s[p.pos]; {
		case c == '}':
			return p.s[start:p.pos], true
		case !p.skipQuoted() && !p.skipExpansion():
			p.pos++
			if c == '\\' && !p.eof() {
				p.pos++
			}
		}
	}
	return "", false
}

// skipExpansion consumes a nested ${...}.
func (p *scanner) skipExpansion() bool {
	if !strings.HasPrefix(p.s[p.pos:], "${") {
		return false
	}
	save := p.pos
	p.pos += 2
	if _, ok := p.word(); !ok || !p.accept("}") {
		p.pos = save
		return false
	}
	return true
}

// skipQuoted consumes a single- or double-quoted string. Double-quoted
// strings honour backslash escapes and may contain expansions.
func (p *scanner) skipQuoted() bool {
	if p.eof() {
		return false
	}
	q := p.s[p.pos]
	if q != '\'' && q != '"' {
		return false
	}
	save := p.pos
	p.pos++
	for !p.eof() {
		c := p.s[p.pos]
		switch {
		case c == q:
			p.pos++
			return true
		case q == '"' && c == '\\':
			p.pos += 2
		case q == '"' && p.skipExpansion():
		default:
			p.pos++
		}
	}
	p.pos = save
	return false
}

func isLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
