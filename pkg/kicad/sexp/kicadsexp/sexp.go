// Package kicadsexp provides a lightweight streaming S-expression parser
// for KiCad configuration files. Unlike general-purpose sexp libraries,
// this parser keeps quoted strings intact as single atoms and never gives
// boolean-looking tokens (true, false, nil) special treatment, so library
// table fields round-trip as their literal text.
package kicadsexp

import (
	"io"
	"strconv"
	"strings"
)

// Sexp represents an S-expression node.
// It can be either a leaf (atom) or a list.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// LeafCount returns the number of elements in a list (1 for atoms)
	LeafCount() int

	// Head returns the first element of a list (the atom itself for atoms)
	Head() Sexp

	// Tail returns the rest of the list after the first element (nil for atoms)
	Tail() Sexp

	// String returns the source-form representation
	String() string
}

// Symbol represents a bare (unquoted) atom: identifiers, keywords.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) LeafCount() int { return 1 }
func (s Symbol) Head() Sexp     { return s }
func (s Symbol) Tail() Sexp     { return nil }
func (s Symbol) String() string { return string(s) }

// Str represents a quoted string atom. The value is the unescaped content.
type Str string

func (s Str) IsLeaf() bool   { return true }
func (s Str) LeafCount() int { return 1 }
func (s Str) Head() Sexp     { return s }
func (s Str) Tail() Sexp     { return nil }
func (s Str) String() string { return strconv.Quote(string(s)) }

// Number represents a numeric atom. The original token text is preserved
// so values like 1.50 render exactly as written.
type Number string

func (n Number) IsLeaf() bool   { return true }
func (n Number) LeafCount() int { return 1 }
func (n Number) Head() Sexp     { return n }
func (n Number) Tail() Sexp     { return nil }
func (n Number) String() string { return string(n) }

// Float returns the numeric value.
func (n Number) Float() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// AtomText returns the text content of a leaf node (unquoted for strings).
// ok is false when the node is a list or nil.
func AtomText(s Sexp) (text string, ok bool) {
	switch a := s.(type) {
	case Symbol:
		return string(a), true
	case Str:
		return string(a), true
	case Number:
		return string(a), true
	default:
		return "", false
	}
}

// List represents a list of S-expressions
type List struct {
	elements []Sexp
}

func (l *List) IsLeaf() bool { return false }

func (l *List) LeafCount() int {
	return len(l.elements)
}

func (l *List) Head() Sexp {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0]
}

func (l *List) Tail() Sexp {
	if len(l.elements) <= 1 {
		return nil
	}
	return &List{elements: l.elements[1:]}
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at the given index, or nil when out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.elements)
}

// ParseError reports a structural problem in the input: unbalanced
// parentheses, an unterminated string, or a stray closing paren.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "sexp: " + e.Msg }

// Parse parses all top-level S-expressions from an io.Reader.
func Parse(r io.Reader) ([]Sexp, error) {
	parser := NewParser(r)
	return parser.ParseAll()
}

// ParseOne parses the first top-level S-expression from an io.Reader.
func ParseOne(r io.Reader) (Sexp, error) {
	parser := NewParser(r)
	return parser.ParseFirst()
}

// ParseString parses S-expressions from a string (convenience function)
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
