// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Backends the ledger store can persist to.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

type Config struct {
	// HTTP server
	Port string

	// Ledger store
	DBBackend string
	DBPath    string

	// Gateway user records. MongoDB is used when MongoURI is set,
	// otherwise users live in memory.
	MongoURI    string
	MongoDBName string

	// Sessions
	SessionSecret string

	// Google OAuth. The handshake is disabled when the client ID or
	// secret are missing.
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string

	// Where the client is served. Used for post-login redirects.
	FrontendOrigin string
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	port := getEnv("PORT", "8080")

	return Config{
		Port: port,

		DBBackend: getEnv("DB_BACKEND", BackendSQLite),
		DBPath:    getEnv("DB_PATH", "data/pocketledger.db"),

		MongoURI:    getEnv("MONGODB_URI", ""),
		MongoDBName: getEnv("MONGODB_DBNAME", "pocketledger"),

		SessionSecret: getEnv("SESSION_SECRET", "dev-secret"),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleCallbackURL:  getEnv("GOOGLE_CALLBACK_URL", fmt.Sprintf("http://localhost:%s/auth/google/callback", port)),

		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "/"),
	}
}

// Validate returns an error describing every invalid setting, or nil.
func (c Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBBackend != BackendSQLite && c.DBBackend != BackendMemory {
		problems = append(problems, fmt.Sprintf("invalid DB_BACKEND %q: must be %q or %q", c.DBBackend, BackendSQLite, BackendMemory))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}

	return nil
}

// CallbackPath returns the path component of the OAuth callback URL, so the
// server listens on the exact path registered with the provider.
func (c Config) CallbackPath() string {
	u, err := url.Parse(c.GoogleCallbackURL)
	if err != nil || u.Path == "" {
		return "/auth/google/callback"
	}

	return u.Path
}

// OAuthConfigured reports whether the Google OAuth credentials are set.
func (c Config) OAuthConfigured() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
