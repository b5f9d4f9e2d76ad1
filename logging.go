package fuzzyvault

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger. Callers embedding this package may
// reassign it (e.g. to redirect into their own structured logger); it
// defaults to a console writer on stderr with no minimum level set on
// the logger itself. Log never receives secret
// material: no word, key, seed, or salt byte is ever passed to it, only
// sizes, counts and error kinds.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
