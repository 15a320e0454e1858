package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds settings read from the environment and an optional .env file
type Config struct {
	DatabasePath   string
	LogLevel       string
	DefaultAccount string
	Sender         string
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file loaded, using environment and defaults", "err", err)
	}

	cfg := &Config{
		DatabasePath:   getEnv("SMSLEDGER_DB_PATH", "smsledger.db"),
		LogLevel:       strings.ToLower(getEnv("SMSLEDGER_LOG_LEVEL", "info")),
		DefaultAccount: getEnv("SMSLEDGER_DEFAULT_ACCOUNT", "Cash"),
		Sender:         getEnv("SMSLEDGER_SENDER", ""),
	}

	if !validLevels[cfg.LogLevel] {
		log.Warn("invalid SMSLEDGER_LOG_LEVEL, defaulting to info", "configured", cfg.LogLevel)
		cfg.LogLevel = "info"
	}
	if strings.TrimSpace(cfg.DefaultAccount) == "" {
		log.Warn("empty SMSLEDGER_DEFAULT_ACCOUNT, defaulting to Cash")
		cfg.DefaultAccount = "Cash"
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
