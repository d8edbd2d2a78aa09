// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging holds the shared CLI logger. The report body is written to
// stdout, so all diagnostics go to stderr to keep the document pipeable.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the process-wide logger.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// SetVerbose switches debug logging on or off.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
