// Package envvar resolves ${VAR} placeholders in library URIs against the
// environment-variable bindings recovered from the KiCad preferences file.
package envvar

import (
	"fmt"
	"regexp"
)

// Map holds environment-variable bindings (name to value).
type Map map[string]string

// placeholder matches one ${IDENT} token; the capture group is the name.
var placeholder = regexp.MustCompile(`\$\{(\w+)\}`)

// UndefinedError reports a placeholder whose variable is not bound.
// The URI is returned with the placeholder left intact.
type UndefinedError struct {
	Name string
	URI  string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined environment variable ${%s} in %s", e.Name, e.URI)
}

// Merge inserts each binding from builtins only when the name is not
// already defined, so values from the user's preferences file win over
// the tool's built-in defaults.
func (m Map) Merge(builtins Map) {
	for name, value := range builtins {
		if _, ok := m[name]; !ok {
			m[name] = value
		}
	}
}

// Substitute resolves the first ${VAR} placeholder in uri.
//
// Exactly one substitution is performed per call and the result is not
// re-scanned; a URI with two placeholders keeps the second one literal.
// This single-shot behavior matches the table semantics KiCad itself
// writes and is deliberate, not a loop that stopped early.
//
// A URI without a placeholder is returned unchanged. An unbound variable
// returns the URI intact along with *UndefinedError.
func Substitute(uri string, vars Map) (string, error) {
	loc := placeholder.FindStringSubmatchIndex(uri)
	if loc == nil {
		return uri, nil
	}

	name := uri[loc[2]:loc[3]]
	value, ok := vars[name]
	if !ok {
		return uri, &UndefinedError{Name: name, URI: uri}
	}

	// Literal splice of the mapped value; nested placeholders in the
	// value are not expanded.
	return uri[:loc[0]] + value + uri[loc[1]:], nil
}
