package main

import (
	"os"

	"github.com/rs/zerolog"
)

// main is the entry point of the generator.
// It sets up logging based on the DEBUG_TAXONGEN environment variable and
// executes the root command.
func main() {
	// If the DEBUG_TAXONGEN environment variable is set, enable debug logging
	// to stdout, otherwise disable logging.
	if os.Getenv("DEBUG_TAXONGEN") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	Execute()
}
