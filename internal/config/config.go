// Package config handles loading runtime configuration for the Sport Stats API.
// Values are read from environment variables (optionally seeded from a .env file) so the
// same binary runs locally, in CI, and in production with only the environment changing.
package config

import (
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Runtime environments accepted in ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test" // Builds the app but never opens a listener
)

// Profile selects which routes are registered.
type Profile string

const (
	ProfileFull     Profile = "full"     // Every route, including create/update/delete
	ProfileReadOnly Profile = "readonly" // GET routes only
)

// Config holds all runtime configuration values for the application.
type Config struct {
	Port              string   // TCP port for the HTTP server (default "4000")
	DatabaseURL       string   // Postgres connection URL of the hosted database
	DatabaseAccessKey string   // Access key for the database; used as the URL password when the URL has none
	Env               string   // "development", "production" or "test"
	Profile           Profile  // Route profile; see ProfileFull and ProfileReadOnly
	JWTSecret         string   // HS256 secret for bearer tokens on write routes; empty disables auth
	WriteRoles        []string // JWT "role" claims allowed to call write routes
	LogLevel          zerolog.Level
	MigrationsDir     string
	RunMigrations     bool
}

// Load reads configuration from the environment and returns a populated Config.
// Missing database settings are logged as warnings; they never stop startup.
func Load() *Config {
	// A missing .env file is fine: real environment variables are used in production.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "4000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DatabaseAccessKey: os.Getenv("DATABASE_ACCESS_KEY"),
		Env:               getEnv("ENV", EnvDevelopment),
		Profile:           ProfileFull,
		JWTSecret:         os.Getenv("JWT_SECRET"),
		WriteRoles:        splitList(getEnv("WRITE_ROLES", "service_role,admin")),
		LogLevel:          zerolog.InfoLevel,
		MigrationsDir:     getEnv("MIGRATIONS_DIR", "migrations"),
		RunMigrations:     getEnv("RUN_MIGRATIONS", "true") != "false",
	}

	switch p := Profile(strings.ToLower(getEnv("API_PROFILE", string(ProfileFull)))); p {
	case ProfileFull, ProfileReadOnly:
		cfg.Profile = p
	default:
		log.Warn().Str("api_profile", string(p)).Msg("unknown API_PROFILE, using full")
	}

	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil && lvl != zerolog.NoLevel {
		cfg.LogLevel = lvl
	}

	if cfg.DatabaseURL == "" || cfg.DatabaseAccessKey == "" {
		log.Warn().Msg("Missing DATABASE_URL/DATABASE_ACCESS_KEY env vars.")
	}

	return cfg
}

// IsTest reports whether the process runs in test mode.
func (c *Config) IsTest() bool {
	return c.Env == EnvTest
}

// AuthEnabled reports whether write routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// DSN returns the database connection string. The access key becomes the password
// when the URL does not carry one; a URL that does not parse is returned unchanged.
func (c *Config) DSN() string {
	if c.DatabaseURL == "" || c.DatabaseAccessKey == "" {
		return c.DatabaseURL
	}
	u, err := url.Parse(c.DatabaseURL)
	if err != nil || u.User == nil {
		return c.DatabaseURL
	}
	if _, hasPassword := u.User.Password(); hasPassword {
		return c.DatabaseURL
	}
	u.User = url.UserPassword(u.User.Username(), c.DatabaseAccessKey)
	return u.String()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
