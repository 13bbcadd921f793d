package rcscript

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Script is the classified form of one file.
type Script struct {
	Filename string
	Lines    []string

	// Elements holds comments, statements, variables and functions in
	// discovery order.
	Elements []Element

	// Shebang is nil when the first comment is not an interpreter line.
	Shebang  *Shebang
	Metadata []*Metadata

	// Defects found while classifying, in line order of discovery.
	Defects []Defect
}

// ReadLines reads a script and strips the line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Load reads and classifies the named file.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Classify(path, lines), nil
}

// Comments returns every comment, metadata included.
func (s *Script) Comments() []*Comment {
	var out []*Comment
	for _, e := range s.Elements {
		if c, ok := e.(*Comment); ok {
			out = append(out, c)
		}
	}
	return out
}

// Variables returns the variable assignments in discovery order.
func (s *Script) Variables() []*Variable {
	var out []*Variable
	for _, e := range s.Elements {
		if v, ok := e.(*Variable); ok {
			out = append(out, v)
		}
	}
	return out
}

// Statements returns the control statements, optionally filtered by kind.
func (s *Script) Statements(kinds ...StatementKind) []*Statement {
	var out []*Statement
	for _, e := range s.Elements {
		st, ok := e.(*Statement)
		if !ok {
			continue
		}
		if len(kinds) == 0 || containsKind(kinds, st.Kind) {
			out = append(out, st)
		}
	}
	return out
}

// Functions returns the function blocks in discovery order.
func (s *Script) Functions() []*Function {
	var out []*Function
	for _, e := range s.Elements {
		if f, ok := e.(*Function); ok {
			out = append(out, f)
		}
	}
	return out
}

// MetadataOf returns the metadata comments of one type.
func (s *Script) MetadataOf(t MetadataType) []*Metadata {
	var out []*Metadata
	for _, m := range s.Metadata {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}

// Variable returns the first assignment to name.
func (s *Script) Variable(name string) (*Variable, bool) {
	for _, v := range s.Variables() {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// ProgramName returns the unquoted value of the name variable.
func (s *Script) ProgramName() (string, bool) {
	v, ok := s.Variable("name")
	if !ok {
		return "", false
	}
	return Unquote(v.Value()), true
}

func containsKind(kinds []StatementKind, k StatementKind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}
