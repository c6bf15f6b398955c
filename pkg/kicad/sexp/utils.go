// Package sexp provides shared S-expression navigation helpers for KiCad
// configuration files.
package sexp

import (
	"fmt"

	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/sexp/kicadsexp"
)

// Slice converts an s-expression list to a Go slice of its elements.
// Atoms and nil yield an empty slice.
func Slice(s kicadsexp.Sexp) []kicadsexp.Sexp {
	var items []kicadsexp.Sexp

	if s == nil || s.IsLeaf() {
		return items
	}

	for s != nil && !s.IsLeaf() {
		head := s.Head()
		if head == nil {
			break
		}
		items = append(items, head)
		s = s.Tail()
	}

	return items
}

// NodeName returns the first symbol of a list (the node type/name).
func NodeName(s kicadsexp.Sexp) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil s-expression")
	}

	if s.IsLeaf() {
		if sym, ok := s.(kicadsexp.Symbol); ok {
			return string(sym), nil
		}
		return "", fmt.Errorf("expected symbol leaf, got %T", s)
	}

	head := s.Head()
	if sym, ok := head.(kicadsexp.Symbol); ok {
		return string(sym), nil
	}

	return "", fmt.Errorf("expected symbol at head of list, got %T", head)
}

// AtomString extracts the atom text at the given index in a list.
// Index 0 is the key, 1 is the first value, etc. Quoted strings are
// returned unquoted; numbers keep their source text.
func AtomString(s kicadsexp.Sexp, index int) (string, error) {
	items := Slice(s)

	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}

	text, ok := kicadsexp.AtomText(items[index])
	if !ok {
		return "", fmt.Errorf("expected atom at index %d, got list", index)
	}

	return text, nil
}
