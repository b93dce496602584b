package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string

	// Media sideload service
	MediaEndpoint string
	MediaToken    string

	// Optional Postgres-backed media asset cache
	DatabaseURL string
	TablePrefix string

	// Optional bearer auth for the convert endpoint: either a shared HS256
	// secret or a JWKS URL, not both.
	AuthSecret  string
	AuthJWKSURL string

	// Optional YAML mapping/allow-list overrides: a file path or the name of
	// a built-in preset. The file wins when both are set.
	RulesFile   string
	RulesPreset string

	// Converter option defaults; per-request overrides are allowed
	UploadMedia   bool
	ForceHTTPS    bool
	AutoParagraph bool

	// Debug flags
	Debug bool

	// Optional log file directory; empty means stdout only
	LogDir string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),

		MediaEndpoint: getEnv("MEDIA_ENDPOINT", ""),
		MediaToken:    getEnv("MEDIA_TOKEN", ""),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		TablePrefix: getTablePrefix(env),

		AuthSecret:  getEnv("AUTH_SECRET", ""),
		AuthJWKSURL: getEnv("AUTH_JWKS_URL", ""),

		RulesFile:   getEnv("RULES_FILE", ""),
		RulesPreset: getEnv("RULES_PRESET", ""),

		UploadMedia:   getEnv("UPLOAD_MEDIA", "false") == "true",
		ForceHTTPS:    getEnv("FORCE_HTTPS", "false") == "true",
		AutoParagraph: getEnv("AUTO_PARAGRAPH", "false") == "true",

		// Default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",

		LogDir: getEnv("LOG_DIR", ""),
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
