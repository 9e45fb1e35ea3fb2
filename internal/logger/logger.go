package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns the application logger. Development gets a human-readable
// console writer; production logs structured JSON.
func New(environment string) zerolog.Logger {
	if environment == "production" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
