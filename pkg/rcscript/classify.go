package rcscript

import (
	"regexp"
	"strings"
)

// Classification defect keys. They are message catalog keys.
const (
	DefectInlineBrace = "functions_inline_brace"
	DefectSignature   = "functions_problem"
	DefectNeverending = "functions_neverending"
	DefectIndent      = "functions_indent"
)

// Defect is a structural problem found while classifying.
type Defect struct {
	Key  string
	Line int
}

var (
	signaturePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\(\)$`)
	shebangPattern   = regexp.MustCompile(`^#!(\S+)\s*(.*)$`)
	metadataPattern  = regexp.MustCompile(`^# ([A-Z]+): (.+)$`)
)

// bodyPrefixes are the characters a function body line may start with.
const bodyPrefixes = "\t {}"

type classifier struct {
	lines  []string
	script *Script
}

// Classify runs one forward pass over the lines of a file.
func Classify(filename string, lines []string) *Script {
	c := &classifier{
		lines:  lines,
		script: &Script{Filename: filename, Lines: lines},
	}
	for i := 0; i < len(lines); {
		i += c.next(i)
	}
	c.deriveComments()
	return c.script
}

// next classifies the construct starting at line i and returns the number
// of lines consumed.
func (c *classifier) next(i int) int {
	if n, ok := c.function(i); ok {
		return n
	}
	line := c.lines[i]
	if a, ok := ParseAssignment(line); ok {
		return c.variable(i, a)
	}
	if strings.HasPrefix(line, "#") {
		c.add(&Comment{base{line: i, span: 1, value: line}})
		return 1
	}
	if n, ok := c.statement(i); ok {
		return n
	}
	return 1
}

func (c *classifier) add(e Element) {
	c.script.Elements = append(c.script.Elements, e)
}

func (c *classifier) defect(key string, line int) {
	c.script.Defects = append(c.script.Defects, Defect{Key: key, Line: line})
}

// merge joins continuation lines onto value while it ends in a backslash.
func (c *classifier) merge(i int, value string) (string, int) {
	n := 1
	for strings.HasSuffix(value, `\`) && i+n < len(c.lines) {
		value = strings.TrimSuffix(value, `\`) + " " + c.lines[i+n]
		n++
	}
	return value, n
}

func (c *classifier) variable(i int, a Assignment) int {
	v := &Variable{
		Kind:    VariableBasic,
		Form:    a.Form,
		Name:    a.Name,
		Source:  a.Source,
		Clobber: a.Clobber,
	}
	n := 1
	switch a.Form {
	case FormLonghand:
		v.Kind = VariableLonghand
	case FormShorthand:
		v.Kind = VariableShorthand
	case FormEval:
		v.Kind = VariableEval
	}
	value := a.Value
	if a.Form == FormBasic || a.Form == FormEval {
		value, n = c.merge(i, value)
		if a.Form == FormEval {
			v.Name = value
		}
	}
	if initNames[v.Name] {
		v.Kind = VariableInit
	}
	v.base = base{line: i, span: n, value: value}
	c.add(v)
	return n
}

func (c *classifier) statement(i int) (int, bool) {
	keyword, args, _ := strings.Cut(c.lines[i], " ")
	kind, ok := statementKeywords[keyword]
	if !ok {
		return 0, false
	}
	value, n := c.merge(i, args)
	c.add(&Statement{
		base:    base{line: i, span: n, value: value},
		Kind:    kind,
		Keyword: keyword,
	})
	return n, true
}

// function recognises a function block starting at line i.
func (c *classifier) function(i int) (int, bool) {
	line := c.lines[i]
	if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
		return 0, false
	}
	if sig, ok := inlineSignature(line); ok {
		c.defect(DefectInlineBrace, i)
		return c.functionBlock(i, sig, 1), true
	}
	if i+1 < len(c.lines) && c.lines[i+1] == "{" {
		return c.functionBlock(i, line, 2), true
	}
	return 0, false
}

// inlineSignature matches "name() {" and returns the signature part.
func inlineSignature(line string) (string, bool) {
	trimmed := strings.TrimRight(line, " \t")
	if len(trimmed) < 2 || !strings.HasSuffix(trimmed, "{") {
		return "", false
	}
	sig := strings.TrimSpace(strings.TrimSuffix(trimmed, "{"))
	if !strings.HasSuffix(sig, "()") {
		return "", false
	}
	return sig, true
}

func (c *classifier) functionBlock(start int, sig string, header int) int {
	fn := &Function{BodyStart: start + header}
	if signaturePattern.MatchString(sig) {
		fn.Name = strings.TrimSuffix(sig, "()")
	} else {
		fn.Name = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sig), "()"))
		c.defect(DefectSignature, start)
	}

	j := fn.BodyStart
	for ; j < len(c.lines) && c.lines[j] != "}"; j++ {
		body := c.lines[j]
		fn.Body = append(fn.Body, body)
		if body != "" && !strings.ContainsRune(bodyPrefixes, rune(body[0])) {
			c.defect(DefectIndent, j)
		}
	}
	span := j - start
	if j < len(c.lines) {
		span++
	} else {
		c.defect(DefectNeverending, start)
	}
	fn.base = base{line: start, span: span, value: strings.Join(fn.Body, "\n")}
	c.add(fn)
	return span
}

// deriveComments layers the shebang and dependency metadata on top of the
// classified comments.
func (c *classifier) deriveComments() {
	comments := c.script.Comments()
	if len(comments) > 0 {
		first := comments[0]
		if m := shebangPattern.FindStringSubmatch(first.Value()); m != nil {
			c.script.Shebang = &Shebang{
				base:        first.base,
				Interpreter: m[1],
				Args:        m[2],
			}
		}
	}
	for _, cm := range comments {
		m := metadataPattern.FindStringSubmatch(cm.Value())
		if m == nil {
			continue
		}
		typ := MetadataType(m[1])
		if !isMetadataType(typ) {
			continue
		}
		c.script.Metadata = append(c.script.Metadata, &Metadata{
			Comment: *cm,
			Type:    typ,
			Tokens:  strings.Fields(m[2]),
		})
	}
}

func isMetadataType(t MetadataType) bool {
	for _, known := range MetadataTypes {
		if t == known {
			return true
		}
	}
	return false
}
