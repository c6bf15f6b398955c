// Package prefs reads the KiCad preferences file (kicad_common.json) and
// recovers the user's environment-variable bindings.
package prefs

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/envvar"
)

// FileName is the preferences file inside the configuration directory.
const FileName = "kicad_common.json"

// varsPath is the gjson path of the variable mapping inside the document.
const varsPath = "environment.vars"

// OpenError reports a preferences file that could not be read.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err) }
func (e *OpenError) Unwrap() error { return e.Err }

// ParseError reports a preferences file that is not valid JSON.
type ParseError struct {
	Path string
}

func (e *ParseError) Error() string { return "cannot parse " + e.Path }

// SchemaError reports a document missing the environment.vars mapping.
type SchemaError struct {
	Path string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no %s object in %s", varsPath, e.Path)
}

// Load reads the preferences file at path and extracts environment.vars.
//
// Every failure degrades to an empty map with a classifying error so the
// caller can report and continue; a structurally odd document never
// crashes the run.
func Load(path string) (envvar.Map, error) {
	vars := envvar.Map{}

	data, err := os.ReadFile(path)
	if err != nil {
		return vars, &OpenError{Path: path, Err: err}
	}

	if !gjson.ValidBytes(data) {
		return vars, &ParseError{Path: path}
	}

	node := gjson.GetBytes(data, varsPath)
	if !node.Exists() || !node.IsObject() {
		return vars, &SchemaError{Path: path}
	}

	node.ForEach(func(key, value gjson.Result) bool {
		vars[key.String()] = value.String()
		return true
	})

	return vars, nil
}
