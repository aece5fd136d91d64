package config

import (
	"os"
	"strings"
)

const (
	defaultPort       = "5000"
	defaultSQLitePath = "./guestbook.db"
	defaultSecretKey  = "development-key"
)

// Config holds everything the application reads from the environment.
type Config struct {
	Port        string
	DatabaseURL string // postgres DSN; empty means the embedded sqlite store
	SQLitePath  string
	SecretKey   string
	LogFile     string
}

// Load reads the configuration from environment variables, applying
// defaults where a variable is unset.
func Load() *Config {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		DatabaseURL: NormalizeDatabaseURL(os.Getenv("DATABASE_URL")),
		SQLitePath:  os.Getenv("SQLITE_PATH"),
		SecretKey:   os.Getenv("SECRET_KEY"),
		LogFile:     os.Getenv("LOG_FILE"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = defaultSQLitePath
	}
	if cfg.SecretKey == "" {
		cfg.SecretKey = defaultSecretKey
	}

	return cfg
}

// NormalizeDatabaseURL rewrites the legacy "postgres://" scheme that some
// platforms still hand out to the "postgresql://" scheme the driver expects.
func NormalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}
