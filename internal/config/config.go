// Package config loads the engine's runtime configuration from the
// environment, the way the teacher's cmd/main.go loads its own settings:
// an optional .env file followed by typed environment variable reads with
// fallbacks.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the Session Controller needs to open a connection
// and wire the REST collaborator.
type Config struct {
	// Host is the server's origin, e.g. "chat.example.com" or
	// "chat.example.com:8080". No scheme prefix.
	Host string
	// Secure selects wss/https over ws/http.
	Secure bool
	// Nickname is the identity passed on connect.
	Nickname string
	// RESTBaseURL is the base URL for the REST collaborator (§6.4), e.g.
	// "https://chat.example.com/api".
	RESTBaseURL string
	// ReconnectInitialBackoff is the delay before the first reconnect attempt.
	ReconnectInitialBackoff time.Duration
	// ReconnectMaxBackoff caps the exponential backoff growth.
	ReconnectMaxBackoff time.Duration
	// OutboundCommandsPerSecond bounds how fast the Command Router may emit
	// commands onto the socket (client-side pacing, mirrors the teacher's
	// server-side per-IP rate limiter).
	OutboundCommandsPerSecond int
	// FolderStorePath is where UI server-folder state (§4.5/§6.5) persists.
	FolderStorePath string
	// DebugListenAddr, if non-empty, starts the read-only introspection
	// HTTP server on this address.
	DebugListenAddr string
}

// Load reads a .env file if present (non-fatal if missing, matching the
// teacher's `_ = godotenv.Load()`) and then builds a Config from the
// environment, falling back to sane defaults for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Host:                      getenv("CONCORD_HOST", "localhost:8080"),
		Secure:                    getenvBool("CONCORD_SECURE", false),
		Nickname:                  getenv("CONCORD_NICKNAME", ""),
		RESTBaseURL:               getenv("CONCORD_REST_BASE_URL", "http://localhost:8080/api"),
		ReconnectInitialBackoff:   getenvDuration("CONCORD_RECONNECT_INITIAL_BACKOFF", time.Second),
		ReconnectMaxBackoff:       getenvDuration("CONCORD_RECONNECT_MAX_BACKOFF", 30*time.Second),
		OutboundCommandsPerSecond: getenvInt("CONCORD_OUTBOUND_COMMANDS_PER_SECOND", 20),
		FolderStorePath:           getenv("CONCORD_FOLDER_STORE_PATH", "concord-server-folders.json"),
		DebugListenAddr:           getenv("CONCORD_DEBUG_LISTEN_ADDR", ""),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

// WSScheme returns "wss" if Secure is set, else "ws" (§4.1).
func (c Config) WSScheme() string {
	if c.Secure {
		return "wss"
	}
	return "ws"
}
