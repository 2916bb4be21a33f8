package internal

import (
	"log"
	"os"
)

var verbose bool

// InitLogging configures process logging and the debug gate.
func InitLogging(debug bool) {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	verbose = debug
	if debug {
		log.Printf("logging set to DEBUG")
	}
}

// Debugf logs only when verbose logging was requested.
func Debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
