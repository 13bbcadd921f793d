package rcscript

// Element is one classified construct of a script.
// The concrete type is one of *Shebang, *Metadata, *Comment, *Statement,
// *Variable or *Function.
type Element interface {
	// Line returns the 0-based index of the first physical line.
	Line() int
	// Span returns the number of physical lines the element consumes.
	Span() int
	// Value returns the raw value carried by the element.
	Value() string

	element()
}

type base struct {
	line  int
	span  int
	value string
}

func (b base) Line() int     { return b.line }
func (b base) Span() int     { return b.span }
func (b base) Value() string { return b.value }
func (base) element()        {}

// Lines returns the indices of every physical line the element consumes.
func Lines(e Element) []int {
	out := make([]int, 0, e.Span())
	for i := 0; i < e.Span(); i++ {
		out = append(out, e.Line()+i)
	}
	return out
}

// =============================================================================
// Comments
// =============================================================================

// Comment is a line whose first character is '#'.
type Comment struct {
	base
}

// Shebang is the interpreter line derived from the first comment.
type Shebang struct {
	base
	Interpreter string
	Args        string
}

// MetadataType is the keyword of a dependency metadata comment.
type MetadataType string

// Dependency metadata types, in their canonical order.
const (
	MetadataProvide MetadataType = "PROVIDE"
	MetadataRequire MetadataType = "REQUIRE"
	MetadataBefore  MetadataType = "BEFORE"
	MetadataKeyword MetadataType = "KEYWORD"
)

// MetadataTypes lists the metadata types in canonical order.
var MetadataTypes = []MetadataType{MetadataProvide, MetadataRequire, MetadataBefore, MetadataKeyword}

// Metadata is a "# TYPE: token ..." comment read by rcorder(8).
// Every Metadata is also a Comment.
type Metadata struct {
	Comment
	Type   MetadataType
	Tokens []string
}

// =============================================================================
// Statements
// =============================================================================

// StatementKind identifies a control statement.
type StatementKind int

// Control statement kinds.
const (
	StatementSource StatementKind = iota // . /etc/rc.subr
	StatementLoadConfig                  // load_rc_config $name
	StatementRunCommand                  // run_rc_command "$1"
)

func (k StatementKind) String() string {
	switch k {
	case StatementSource:
		return "source"
	case StatementLoadConfig:
		return "load_rc_config"
	case StatementRunCommand:
		return "run_rc_command"
	default:
		return "unknown"
	}
}

// statementKeywords maps the leading word of a line to its statement kind.
var statementKeywords = map[string]StatementKind{
	".":              StatementSource,
	"load_rc_config": StatementLoadConfig,
	"run_rc_command": StatementRunCommand,
}

// Statement is a control statement. Value holds the arguments after the
// keyword with continuation lines merged.
type Statement struct {
	base
	Kind    StatementKind
	Keyword string
}

// =============================================================================
// Variables
// =============================================================================

// VariableKind identifies the assignment form of a variable.
type VariableKind int

// Variable kinds.
const (
	VariableBasic     VariableKind = iota // name=value
	VariableInit                          // name, desc or rcvar, in any form
	VariableLonghand                      // name=${src:-default}
	VariableShorthand                     // : ${name:=default}
	VariableEval                          // eval ...
)

func (k VariableKind) String() string {
	switch k {
	case VariableBasic:
		return "basic"
	case VariableInit:
		return "init"
	case VariableLonghand:
		return "longhand"
	case VariableShorthand:
		return "shorthand"
	case VariableEval:
		return "eval"
	default:
		return "unknown"
	}
}

// initNames are the variables every rc.d script declares up front.
var initNames = map[string]bool{
	"name":  true,
	"desc":  true,
	"rcvar": true,
}

// Variable is a variable assignment.
type Variable struct {
	base
	Kind VariableKind
	Form Form
	Name string
	// Source is the variable read by a longhand default.
	Source string
	// Clobber is set when a default form uses the colon variant, which also
	// replaces an empty value.
	Clobber bool
}

// IsDefault reports whether the assignment uses one of the default forms.
func (v *Variable) IsDefault() bool {
	return v.Form == FormLonghand || v.Form == FormShorthand
}

// =============================================================================
// Functions
// =============================================================================

// Function is a shell function block:
//
//	name()
//	{
//		body
//	}
type Function struct {
	base
	Name string
	Body []string
	// BodyStart is the index of the first body line.
	BodyStart int
}

// BodyLen returns the number of body lines, excluding the header and the
// closing brace.
func (f *Function) BodyLen() int {
	return len(f.Body)
}

// Short reports whether the body is too small to deserve a function.
func (f *Function) Short() bool {
	return f.BodyLen() <= 1
}
