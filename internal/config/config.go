// Package config loads server settings from defaults, an optional .env file,
// environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings shared by the binaries.
type Config struct {
	Addr            string
	DatabaseDriver  string
	DatabaseURL     string
	IdentityCookie  string
	IdentityTTL     time.Duration
	CookieSecure    bool
	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string

	// Args holds the positional arguments left after flag parsing.
	Args []string
}

// Defaults returns a development configuration backed by a local SQLite file.
func Defaults() Config {
	return Config{
		Addr:            "0.0.0.0:8080",
		DatabaseDriver:  "sqlite",
		DatabaseURL:     "data/projectvote.db",
		IdentityCookie:  "voter_id",
		IdentityTTL:     2 * 365 * 24 * time.Hour,
		CookieSecure:    false,
		ShutdownTimeout: 30 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads .env (if present), then the environment, then args.
func Load(name string, args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}
	return Parse(name, args, os.LookupEnv)
}

// Parse builds a Config from defaults, lookup (usually os.LookupEnv) and args.
func Parse(name string, args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Defaults()

	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fs.StringVar(&cfg.DatabaseDriver, "db-driver", cfg.DatabaseDriver, "Database driver (sqlite, postgres or pgx)")
	fs.StringVar(&cfg.DatabaseURL, "db-url", cfg.DatabaseURL, "Database URL or SQLite file path")
	fs.StringVar(&cfg.IdentityCookie, "identity-cookie", cfg.IdentityCookie, "Name of the voter identity cookie")
	fs.DurationVar(&cfg.IdentityTTL, "identity-ttl", cfg.IdentityTTL, "Lifetime of the voter identity cookie")
	fs.BoolVar(&cfg.CookieSecure, "cookie-secure", cfg.CookieSecure, "Mark the identity cookie Secure")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "Graceful shutdown timeout")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("ADDR", &c.Addr)
	if port, ok := lookup("PORT"); ok && port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return errors.New("invalid PORT env variable")
		}
		c.Addr = "0.0.0.0:" + port
	}
	str("DATABASE_DRIVER", &c.DatabaseDriver)
	str("DATABASE_URL", &c.DatabaseURL)
	str("IDENTITY_COOKIE", &c.IdentityCookie)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"IDENTITY_TTL", &c.IdentityTTL},
		{"SHUTDOWN_TIMEOUT", &c.ShutdownTimeout},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s env variable: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v, ok := lookup("COOKIE_SECURE"); ok && v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid COOKIE_SECURE env variable: %w", err)
		}
		c.CookieSecure = secure
	}

	return nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("listen address required")
	}
	if c.DatabaseDriver == "" {
		return errors.New("database driver required")
	}
	if c.DatabaseURL == "" && c.DatabaseDriver != "sqlite" {
		return errors.New("database URL required (use -db-url or DATABASE_URL env)")
	}
	if c.IdentityCookie == "" {
		return errors.New("identity cookie name required")
	}
	if c.IdentityTTL <= 0 {
		return errors.New("identity TTL must be positive")
	}
	return nil
}
