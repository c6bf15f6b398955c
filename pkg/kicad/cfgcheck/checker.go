// Package cfgcheck validates a KiCad 6 user configuration directory:
// it recovers environment-variable bindings from the preferences file,
// decodes both library tables and checks every library URI against the
// filesystem, emitting human-readable diagnostics as it goes.
package cfgcheck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/OpenTraceLab/kicadcfg/internal/log"
	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/envvar"
	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/libtable"
	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/prefs"
	"github.com/OpenTraceLab/kicadcfg/pkg/kicad/sexp/kicadsexp"
)

// Options configures a Checker. Parsed CLI flags are passed in here;
// nothing reads process-wide state.
type Options struct {
	// AllMessages also reports successes (default: errors only).
	AllMessages bool

	// Out receives diagnostics. Defaults to os.Stdout.
	Out io.Writer
}

// Checker validates one configuration directory per Check call.
// Diagnostics are flushed to the writer as they are produced.
type Checker struct {
	out      io.Writer
	allMsgs  bool
	problems int
}

// New creates a Checker.
func New(opts Options) *Checker {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Checker{out: out, allMsgs: opts.AllMessages}
}

// Check validates the configuration in cfgdir against the given table
// descriptors, in order. It returns the number of error diagnostics
// emitted. Per-record and per-table failures never abort the run; only an
// inaccessible configuration directory ends it early.
func (c *Checker) Check(cfgdir string, tables []libtable.Spec) int {
	info, err := os.Stat(cfgdir)
	if err != nil || !info.IsDir() {
		c.errorf("Cannot process %s\n", cfgdir)
		return c.problems
	}

	log.Debugf("checking configuration in %s", cfgdir)

	vars := c.checkCommon(cfgdir)

	// Built-in variables fill in only where the user file is silent.
	builtins := envvar.Map{}
	for _, table := range tables {
		builtins[table.EnvVar] = table.DefaultPath
	}
	vars.Merge(builtins)

	for _, table := range tables {
		c.checkTable(cfgdir, table, vars)
	}

	return c.problems
}

// checkCommon reads the preferences file and reports the recovered
// variable bindings. Failures degrade to an empty map.
func (c *Checker) checkCommon(cfgdir string) envvar.Map {
	path := filepath.Join(cfgdir, prefs.FileName)
	fmt.Fprintf(c.out, "Checking %s\n\n", path)

	vars, err := prefs.Load(path)
	if err != nil {
		log.Debugf("preferences: %v", err)
		switch err.(type) {
		case *prefs.OpenError:
			c.errorf("Cannot open %s\n", path)
			return vars
		case *prefs.ParseError:
			c.errorf("Cannot parse %s\n", path)
		case *prefs.SchemaError:
			c.errorf("No environment variables in %s\n", path)
		}
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(c.out, "%s=%s\n", name, vars[name])
	}
	fmt.Fprintln(c.out)

	return vars
}

// checkTable reads one library table file and validates every entry.
// An unreadable or malformed table skips only that table.
func (c *Checker) checkTable(cfgdir string, table libtable.Spec, vars envvar.Map) {
	path := filepath.Join(cfgdir, table.FileName)
	fmt.Fprintf(c.out, "Checking %s\n\n", path)

	file, err := os.Open(path)
	if err != nil {
		c.errorf("Cannot open %s\n", path)
		return
	}
	defer file.Close()

	root, err := kicadsexp.ParseOne(file)
	if err != nil {
		c.errorf("Cannot parse %s\n", path)
		log.Debugf("%s: %v", path, err)
		return
	}

	entries, err := libtable.Entries(root, table.Tag)
	if err != nil {
		c.errorf("%s is not a %s\n", path, table.Tag)
		return
	}

	for _, entry := range entries {
		c.checkLib(entry, table, vars)
	}
	fmt.Fprintln(c.out)
}

// checkLib validates one library entry: decode, substitute the URI,
// check existence per the table kind.
func (c *Checker) checkLib(entry kicadsexp.Sexp, table libtable.Spec, vars envvar.Map) {
	rec, err := libtable.DecodeRecord(entry)
	if err != nil {
		c.errorf("Cannot decode %s\n", entry)
		log.Debugf("%s: %v", entry, err)
		return
	}

	// A record without a name is reported but still falls through to the
	// uri check rather than returning early.
	if !rec.Has("name") {
		c.errorf("%s is not a lib\n", rec)
	}
	if !rec.Has("uri") {
		c.errorf("No uri for %s\n", rec.Get("name"))
		return
	}

	uri := rec.Get("uri")
	resolved, err := envvar.Substitute(uri, vars)
	if err != nil {
		var undef *envvar.UndefinedError
		if errors.As(err, &undef) {
			c.errorf("Undefined environment variable ${%s} in %s\n", undef.Name, uri)
		}
	}

	// Messages show the original URI; the filesystem check uses the
	// substituted path.
	name, typ := rec.Get("name"), rec.Get("type")
	switch table.Kind {
	case libtable.SymbolKind:
		if !isFile(resolved) {
			c.errorf("%s (%s) %s not found\n", name, typ, uri)
		} else if c.allMsgs {
			fmt.Fprintf(c.out, "%s (%s) %s found\n", name, typ, uri)
		}
	case libtable.FootprintKind:
		if !isDir(resolved) {
			c.errorf("%s (%s) %s not found\n", name, typ, uri)
		} else if c.allMsgs {
			count := countFootprints(resolved)
			fmt.Fprintf(c.out, "%s (%s) %s found with %d footprints\n", name, typ, uri, count)
		}
	}
}

// errorf emits an error-severity diagnostic and bumps the problem count.
func (c *Checker) errorf(format string, args ...interface{}) {
	c.problems++
	fmt.Fprintf(c.out, format, args...)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// countFootprints counts footprint files directly inside dir
// (non-recursive).
func countFootprints(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == libtable.FootprintExt {
			count++
		}
	}
	return count
}
