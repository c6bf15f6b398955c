// Package libtable decodes KiCad library table files (sym-lib-table,
// fp-lib-table) into flat library records.
//
// A table file is a single S-expression of the form:
//
//	(sym_lib_table
//	  (lib (name "Device") (type "KiCad") (uri "${KICAD6_SYMBOL_DIR}/Device.kicad_sym"))
//	  ...)
//
// Keys beyond name/type/uri (options, descr, ...) are carried through
// untouched and ignored by validation.
package libtable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/sexp"
	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/sexp/kicadsexp"
)

// Kind selects the existence-check policy for a table's libraries.
type Kind int

const (
	// SymbolKind libraries point at a single .kicad_sym file.
	SymbolKind Kind = iota
	// FootprintKind libraries point at a .pretty directory of footprint files.
	FootprintKind
)

// FootprintExt is the file extension counted inside footprint library
// directories.
const FootprintExt = ".kicad_mod"

// Spec is the static descriptor for one library table kind.
type Spec struct {
	Tag         string // root symbol of the table file
	FileName    string // file name inside the configuration directory
	EnvVar      string // built-in variable naming the default library location
	DefaultPath string // platform default value for EnvVar
	Kind        Kind
}

// SymbolTable returns the descriptor for the symbol library table.
func SymbolTable(defaultPath string) Spec {
	return Spec{
		Tag:         "sym_lib_table",
		FileName:    "sym-lib-table",
		EnvVar:      "KICAD6_SYMBOL_DIR",
		DefaultPath: defaultPath,
		Kind:        SymbolKind,
	}
}

// FootprintTable returns the descriptor for the footprint library table.
func FootprintTable(defaultPath string) Spec {
	return Spec{
		Tag:         "fp_lib_table",
		FileName:    "fp-lib-table",
		EnvVar:      "KICAD6_FOOTPRINT_DIR",
		DefaultPath: defaultPath,
		Kind:        FootprintKind,
	}
}

// Record is one decoded library entry: a flat key/value mapping that
// preserves the order keys appeared in the file.
type Record struct {
	keys   []string
	values map[string]string
}

// Has reports whether the record contains the given key.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the value for key, or "" when absent.
func (r Record) Get(key string) string {
	return r.values[key]
}

// Len returns the number of keys in the record.
func (r Record) Len() int {
	return len(r.keys)
}

// Keys returns the record's keys in file order.
func (r Record) Keys() []string {
	return r.keys
}

// String renders the record's pairs in file order, e.g.
// (name "Device") (type "KiCad"). An empty record renders as ().
func (r Record) String() string {
	if len(r.keys) == 0 {
		return "()"
	}
	var b strings.Builder
	for i, key := range r.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%s %s)", key, strconv.Quote(r.values[key]))
	}
	return b.String()
}

// WrongTagError reports a table file whose root form is not the expected
// table tag. No records are decoded from such a file.
type WrongTagError struct {
	Expected string
	Got      string
}

func (e *WrongTagError) Error() string {
	return fmt.Sprintf("not a %s (got %q)", e.Expected, e.Got)
}

// RecordError reports a malformed library entry.
type RecordError struct {
	Msg string
}

func (e *RecordError) Error() string { return "lib record: " + e.Msg }

// Entries verifies the root form's tag and returns its library entries in
// file order. A root whose head symbol differs from tag rejects the whole
// table with *WrongTagError.
func Entries(root kicadsexp.Sexp, tag string) ([]kicadsexp.Sexp, error) {
	name, err := sexp.NodeName(root)
	if err != nil {
		return nil, &WrongTagError{Expected: tag}
	}

	if name != tag {
		return nil, &WrongTagError{Expected: tag, Got: name}
	}

	items := sexp.Slice(root)
	if len(items) <= 1 {
		return nil, nil
	}
	return items[1:], nil
}

// DecodeRecord converts one (lib (key value) ...) form into a Record.
// A form whose head is not the symbol lib decodes to an empty record;
// the caller reports it. A pair whose value is itself a list is a decode
// error rather than an ambiguous stringification.
func DecodeRecord(s kicadsexp.Sexp) (Record, error) {
	rec := Record{values: make(map[string]string)}

	items := sexp.Slice(s)
	if len(items) == 0 {
		return rec, nil
	}

	if head, ok := items[0].(kicadsexp.Symbol); !ok || string(head) != "lib" {
		return rec, nil
	}

	for _, pair := range items[1:] {
		if pair.IsLeaf() {
			return rec, &RecordError{Msg: fmt.Sprintf("expected (key value) pair, got atom %s", pair)}
		}

		key, err := sexp.AtomString(pair, 0)
		if err != nil {
			return rec, &RecordError{Msg: fmt.Sprintf("bad key in pair %s", pair)}
		}

		value, err := sexp.AtomString(pair, 1)
		if err != nil {
			return rec, &RecordError{Msg: fmt.Sprintf("non-atomic value for key %q", key)}
		}

		if !rec.Has(key) {
			rec.keys = append(rec.keys, key)
		}
		rec.values[key] = value
	}

	return rec, nil
}
