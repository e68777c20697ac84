// This file is part of the program "lanta".
// Please see the LICENSE file for copyright information.

// Package logging sets up the process-wide logger: a single logrus
// instance gated by a verbosity flag, shared by every component.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New configures and returns the process-wide logger. verbose enables
// Debug-level output; otherwise only Info and above are emitted. Output
// always goes to stderr.
func New(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}
