package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	ferrors "github.com/I-Language-Development/I-language-rust/internal/foundation/errors"
	"github.com/I-Language-Development/I-language-rust/internal/logfields"
)

// envFiles are tried in order; the first one present is loaded.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first present .env file. Variables already set in the
// process environment are not overwritten.
func loadEnvFile() error {
	for _, envPath := range envFiles {
		if _, err := os.Stat(envPath); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return ferrors.ConfigError("failed to load environment file").
				WithCause(err).
				WithContext("path", envPath).
				Build()
		}
		slog.Debug("Loaded environment variables", logfields.Path(envPath))
		return nil
	}
	return nil
}
