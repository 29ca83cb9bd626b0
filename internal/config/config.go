// Package config loads the backend configuration from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// HTTP server
	Port    string
	GinMode string

	// Database
	DBPath string

	// Logging
	LogFormat string

	// CORS origins, space separated. Empty disables CORS headers.
	CORSAllowOrigins string

	// Public base URL of the API, sets the swagger host and base path
	APIURL string

	// Debug profiles under /debug/pprof
	EnablePprof bool
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present, so local development
// does not need exported variables.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded configuration from .env")
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		DBPath:           getEnv("DB_PATH", "data/backend.db"),
		LogFormat:        getEnv("LOG_FORMAT", ""),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
		APIURL:           getEnv("API_URL", ""),
		EnablePprof:      getEnv("ENABLE_PPROF", "") == "true",
	}
}

func getEnv(key, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return def
}
