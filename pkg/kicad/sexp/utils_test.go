package sexp

import (
	"testing"

	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/sexp/kicadsexp"
)

// Helper to parse an s-expression from a string
func parseSexp(t *testing.T, input string) kicadsexp.Sexp {
	t.Helper()
	sexps, err := kicadsexp.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse s-expression %q: %v", input, err)
	}
	if len(sexps) == 0 {
		t.Fatalf("No s-expressions parsed from %q", input)
	}
	return sexps[0]
}

func TestAtomString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		index   int
		want    string
		wantErr bool
	}{
		{
			name:  "get key",
			input: `(name "Device")`,
			index: 0,
			want:  "name",
		},
		{
			name:  "get quoted value unquoted",
			input: `(name "Device")`,
			index: 1,
			want:  "Device",
		},
		{
			name:  "get bare value",
			input: "(type KiCad)",
			index: 1,
			want:  "KiCad",
		},
		{
			name:  "numeric value keeps text",
			input: "(version 7)",
			index: 1,
			want:  "7",
		},
		{
			name:    "index out of bounds",
			input:   `(name "Device")`,
			index:   5,
			wantErr: true,
		},
		{
			name:    "list value is not an atom",
			input:   "(uri (nested list))",
			index:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parseSexp(t, tt.input)
			got, err := AtomString(s, tt.index)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("AtomString failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "list head", input: `(lib (name "A"))`, want: "lib"},
		{name: "bare symbol", input: "lib", want: "lib"},
		{name: "string head is not a symbol", input: `("lib" 1)`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NodeName(parseSexp(t, tt.input))
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("NodeName failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	s := parseSexp(t, `(lib (name "A") (type "B") (uri "C"))`)

	items := Slice(s)
	if len(items) != 4 {
		t.Fatalf("Expected 4 items, got %d", len(items))
	}
	if items[0] != kicadsexp.Symbol("lib") {
		t.Errorf("Expected lib head, got %v", items[0])
	}

	if got := Slice(kicadsexp.Symbol("atom")); len(got) != 0 {
		t.Errorf("Expected empty slice for atom, got %v", got)
	}
	if got := Slice(nil); len(got) != 0 {
		t.Errorf("Expected empty slice for nil, got %v", got)
	}
}
