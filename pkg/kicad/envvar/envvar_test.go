package envvar

import (
	"errors"
	"testing"
)

func TestSubstitute(t *testing.T) {
	vars := Map{
		"KICAD6_SYMBOL_DIR": "/usr/share/kicad/symbols",
		"A":                 "x",
		"B":                 "y",
	}

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{
			name: "no placeholder is unchanged",
			uri:  "/usr/local/lib/device.kicad_sym",
			want: "/usr/local/lib/device.kicad_sym",
		},
		{
			name: "single placeholder",
			uri:  "${KICAD6_SYMBOL_DIR}/Device.kicad_sym",
			want: "/usr/share/kicad/symbols/Device.kicad_sym",
		},
		{
			name: "only the first placeholder is substituted",
			uri:  "${A}/${B}/lib",
			want: "x/${B}/lib",
		},
		{
			name: "placeholder mid-string",
			uri:  "/opt/${A}/lib",
			want: "/opt/x/lib",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Substitute(tt.uri, vars)
			if err != nil {
				t.Fatalf("Substitute(%q) failed: %v", tt.uri, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSubstituteValueNotRescanned(t *testing.T) {
	vars := Map{"A": "${B}", "B": "boom"}

	got, err := Substitute("${A}/lib", vars)
	if err != nil {
		t.Fatalf("Substitute failed: %v", err)
	}
	if got != "${B}/lib" {
		t.Errorf("Expected literal splice ${B}/lib, got %q", got)
	}
}

func TestSubstituteUndefined(t *testing.T) {
	uri := "${MISSING_DIR}/device.kicad_sym"

	got, err := Substitute(uri, Map{"OTHER": "x"})
	if got != uri {
		t.Errorf("Expected placeholder left intact, got %q", got)
	}
	if err == nil {
		t.Fatal("Expected undefined-variable error")
	}

	var undef *UndefinedError
	if !errors.As(err, &undef) {
		t.Fatalf("Expected *UndefinedError, got %T: %v", err, err)
	}
	if undef.Name != "MISSING_DIR" {
		t.Errorf("Expected variable MISSING_DIR, got %q", undef.Name)
	}
	if undef.URI != uri {
		t.Errorf("Expected original URI in error, got %q", undef.URI)
	}
}

func TestMergeUserWins(t *testing.T) {
	vars := Map{"KICAD6_SYMBOL_DIR": "/custom"}
	vars.Merge(Map{
		"KICAD6_SYMBOL_DIR":    "/usr/share/kicad/symbols",
		"KICAD6_FOOTPRINT_DIR": "/usr/share/kicad/footprints",
	})

	if got := vars["KICAD6_SYMBOL_DIR"]; got != "/custom" {
		t.Errorf("User value must win the merge, got %q", got)
	}
	if got := vars["KICAD6_FOOTPRINT_DIR"]; got != "/usr/share/kicad/footprints" {
		t.Errorf("Built-in must fill the gap, got %q", got)
	}
}
