package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `\d+`},
		{Name: "String", Pattern: "\"(?:\\\\.|[^\"])*\"|`[^`]*`"},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[][,:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of a .flyer file:
//
//	flyer "October" {
//	  top: "Climbing socials every week"
//	  event "Sat 5" "Bouldering Social" {
//	    location: "Main Gym"
//	    detailsNum: 1
//	    details: "Shoe rental included"
//	  }
//	  bottom: ["Follow us", "outclimb.example"]
//	}
type Document struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Month StringLiteral  `parser:"Newline* 'flyer' @String"`
	Block *Block         `parser:"Newline* @@ Newline*"`
}

// Block is a delimited list of statements.
type Block struct {
	Statements []*Statement `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Statement inside a block: an event declaration or a key/value assignment.
type Statement struct {
	Event      *EventDecl  `parser:"  @@"`
	Assignment *Assignment `parser:"| @@"`
}

// EventDecl declares one event row: `event "<day>" "<name>" { ... }`.
type EventDecl struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Day   StringLiteral  `parser:"'event' @String"`
	Name  StringLiteral  `parser:"@String"`
	Block *Block         `parser:"@@?"`
}

// Assignment uses colon syntax (key: value).
type Assignment struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value *Value         `parser:"':' Newline* @@"`
}

// Value represents property values.
type Value struct {
	Pos    lexer.Position `parser:"" json:"-"`
	String *StringLiteral `parser:"  @String"`
	Number *int           `parser:"| @Number"`
	Array  *ArrayValue    `parser:"| @@"`
}

// ArrayValue captures `[ ... ]` expressions. Arrays of strings are joined into paragraphs.
type ArrayValue struct {
	Values []*Value `parser:"'[' Newline* ( @@ ( (',' | ';' | Newline+) Newline* @@ )* )? Newline* ']'"`
}

// Text returns the value as text; arrays are joined with line breaks.
func (v *Value) Text() (string, error) {
	switch {
	case v == nil:
		return "", nil
	case v.String != nil:
		return string(*v.String), nil
	case v.Number != nil:
		return strconv.Itoa(*v.Number), nil
	case v.Array != nil:
		parts := make([]string, 0, len(v.Array.Values))
		for _, item := range v.Array.Values {
			s, err := item.Text()
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, "\n"), nil
	default:
		return "", fmt.Errorf("%s: empty value", v.Pos)
	}
}

// Int returns the value as a non-negative integer.
func (v *Value) Int() (int, error) {
	if v == nil {
		return 0, nil
	}
	if v.Number != nil {
		return *v.Number, nil
	}
	if v.String != nil {
		n, err := strconv.Atoi(strings.TrimSpace(string(*v.String)))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s: expected a non-negative number, got %q", v.Pos, string(*v.String))
		}
		return n, nil
	}
	return 0, fmt.Errorf("%s: expected a number", v.Pos)
}

// StringLiteral unquotes Go-style strings on capture, including raw back-quoted strings.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses DSL content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses DSL content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
