// Package config resolves the ambient settings shared by the sandpile binaries.
//
// Every binary works without configuration. An optional .env file in the
// working directory is loaded first; real environment variables take
// precedence over it, and explicit command line flags over both.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EnvLogLevel names the variable holding the default log level.
const EnvLogLevel = "LOG_LEVEL"

// DefaultLogLevel is used when neither flag nor environment sets a level.
const DefaultLogLevel = "info"

// Settings holds values resolved from the environment.
type Settings struct {
	LogLevel string
}

// Load reads the optional dotenv files (".env" when none given) and returns the
// resolved settings. A missing file is not an error; a malformed one is.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		// godotenv.Load never overrides variables already present in the process env.
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Settings{LogLevel: DefaultLogLevel}, err
		}
	}
	s := Settings{LogLevel: DefaultLogLevel}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = v
	}
	return s, nil
}
