package config

import (
	"os"
	"strings"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Host           string
	Port           string
	AllowedOrigins []string
	TemplateGlob   string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

// AuthConfig feeds the bearer-token issuer/validator. TTLs stay as raw
// strings here; the auth service parses and rejects them at construction.
type AuthConfig struct {
	JWTSecret string
	AccessTTL string
}

// SessionConfig feeds the web-session facade. The session signing secret is
// independent from the JWT secret, as are their revocation domains.
type SessionConfig struct {
	Secret         string
	TTL            string
	CookieDomain   string
	CookiePath     string
	CookieSecure   string
	CookieSameSite string
}

func Load() Config {
	return Config{
		App: AppConfig{
			Name:        getenv("APP_NAME", "Alliance Management System"),
			Version:     getenv("APP_VERSION", "1.0.0"),
			Environment: getenv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host:           getenv("HOST", "0.0.0.0"),
			Port:           getenv("PORT", "5000"),
			AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
			TemplateGlob:   getenv("TEMPLATE_GLOB", "web/templates/*.html"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET_KEY"),
			AccessTTL: getenv("JWT_ACCESS_TTL", "2h"),
		},
		Session: SessionConfig{
			Secret:         os.Getenv("SECRET_KEY"),
			TTL:            getenv("SESSION_TTL", "24h"),
			CookieDomain:   os.Getenv("SESSION_COOKIE_DOMAIN"),
			CookiePath:     getenv("SESSION_COOKIE_PATH", "/"),
			CookieSecure:   os.Getenv("SESSION_COOKIE_SECURE"),
			CookieSameSite: os.Getenv("SESSION_COOKIE_SAMESITE"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
