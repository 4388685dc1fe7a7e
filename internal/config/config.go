package config

import (
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// DirectoryModeDB reads users and branches from the local database.
	DirectoryModeDB = "db"
	// DirectoryModeAPI proxies users and branches from the external directory service.
	DirectoryModeAPI = "api"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	CORSOrigins string

	// Directory source selection. The two deployment variants disagree on where
	// users/branches live; the mode makes the choice explicit instead of silent.
	DirectoryMode    string
	UserAPIURL       string
	BranchAPIURL     string
	DirectoryTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=medsupply port=5432 sslmode=disable"),
		CORSOrigins:      getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		DirectoryMode:    getEnv("DIRECTORY_MODE", DirectoryModeDB),
		UserAPIURL:       getEnv("USER_API_URL", "http://localhost:8081/api/users"),
		BranchAPIURL:     getEnv("BRANCH_API_URL", "http://localhost:8081/api/branches"),
		DirectoryTimeout: getDurationEnv("DIRECTORY_TIMEOUT", 15*time.Second),
	}

	if cfg.DirectoryMode != DirectoryModeDB && cfg.DirectoryMode != DirectoryModeAPI {
		log.Fatalf("DIRECTORY_MODE must be %q or %q, got %q", DirectoryModeDB, DirectoryModeAPI, cfg.DirectoryMode)
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=medsupply port=5432 sslmode=disable" {
		log.Warn("DATABASE_DSN is using the default value, set your own Postgres connection for production")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Warnf("%s is not a valid duration, using default %s", key, def)
	}
	return def
}
