// Package log wraps apex/log for debug tracing. User-facing diagnostics
// are written directly by the checker and never routed through here.
package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// Init installs a plain stderr handler with the level taken from the
// KICADCFG_LOG environment variable (debug, info, warn, error; default
// error).
func Init() {
	level := strings.ToLower(os.Getenv("KICADCFG_LOG"))

	var apexLevel log.Level
	switch level {
	case "debug":
		apexLevel = log.DebugLevel
	case "info":
		apexLevel = log.InfoLevel
	case "warn":
		apexLevel = log.WarnLevel
	default:
		apexLevel = log.ErrorLevel
	}

	log.SetHandler(&stderrHandler{})
	log.SetLevel(apexLevel)
}

// stderrHandler writes one line per entry to stderr, keeping stdout free
// for diagnostics.
type stderrHandler struct{}

// HandleLog implements the log.Handler interface
func (h *stderrHandler) HandleLog(e *log.Entry) error {
	fmt.Fprintf(os.Stderr, "%s %s\n", strings.ToUpper(e.Level.String()), e.Message)
	return nil
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}
