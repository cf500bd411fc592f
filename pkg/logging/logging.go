// Package logging configures the global zerolog logger.
//
// Diagnostics always go to stderr: stdout is reserved for the rendered
// verdict so machine-readable output stays parseable.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup initializes the global logger. With jsonOutput the raw JSON event
// stream is emitted; otherwise a console writer is used. Verbose lowers the
// level to debug.
func Setup(jsonOutput bool, verbose bool) {
	if jsonOutput {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("Verbose log output enabled")
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
