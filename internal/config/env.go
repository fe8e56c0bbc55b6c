package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// envFileCandidates are tried in order; the first one that parses wins.
var envFileCandidates = []string{".env", ".env.local"}

// loadEnvFiles preloads environment variables used by ${VAR} expansion in the
// declaration. godotenv never overrides variables already set in the process
// environment, which is the semantic we want: the environment wins over the
// file.
func loadEnvFiles() {
	for _, path := range envFileCandidates {
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment variables", "path", path)
			return
		}
	}
}
