package log

import (
	"io"
	"log"
	"os"
)

var (
	// InfoLog carries progress messages. It is silent unless Initialize was
	// called with debug enabled.
	InfoLog = log.New(io.Discard, "INFO: ", log.Ltime)
	// WarningLog carries recoverable oddities in the settings document.
	WarningLog = log.New(os.Stderr, "WARNING: ", log.Ltime)
	// ErrorLog carries failures that abort the run.
	ErrorLog = log.New(os.Stderr, "ERROR: ", log.Ltime)
)

// output is where all loggers write. Generated code goes to stdout, so
// logs never do.
var output io.Writer = os.Stderr

// Initialize points the loggers at stderr. With debug set, InfoLog also
// writes and every logger carries the source location.
func Initialize(debug bool) {
	flags := log.Ltime
	info := io.Discard
	if debug {
		flags |= log.Lshortfile
		info = output
	}

	InfoLog = log.New(info, "INFO: ", flags)
	WarningLog = log.New(output, "WARNING: ", flags)
	ErrorLog = log.New(output, "ERROR: ", flags)
}

// SetOutput redirects every logger to w. Used by tests to capture output.
func SetOutput(w io.Writer) {
	output = w
	if InfoLog.Writer() != io.Discard {
		InfoLog.SetOutput(w)
	}
	WarningLog.SetOutput(w)
	ErrorLog.SetOutput(w)
}

// Close restores the loggers to their defaults.
func Close() {
	output = os.Stderr
	Initialize(false)
}
