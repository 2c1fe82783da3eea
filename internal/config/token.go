package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// EnsureAPIToken returns the bearer token protecting the local API,
// generating and persisting one in the platform secret store on first run.
// An explicit GOODWORK_API_TOKEN always wins and is never persisted.
func EnsureAPIToken() (string, error) {
	if tok := os.Getenv("GOODWORK_API_TOKEN"); tok != "" {
		return tok, nil
	}
	if out, err := keychainGet("goodwork", "api_token"); err == nil {
		if tok := strings.TrimSpace(string(out)); tok != "" {
			return tok, nil
		}
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating API token: %w", err)
	}
	tok := hex.EncodeToString(buf)
	if err := keychainSet("goodwork", "api_token", tok); err != nil {
		return "", fmt.Errorf("storing API token: %w", err)
	}
	return tok, nil
}
