package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SchemasDir    string
	TargetsDir    string
	RunsDBPath    string
	LogLevel      string
	BatchSize     int
	DefaultMode   string
	QuoteURL      string
	TelegramAPI   string
	TelegramToken string
}

// Load reads settings from the environment. A .env file in the working
// directory fills in keys the process environment does not set.
func Load() *Config {
	dotenv := readDotEnv(".env")
	get := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value := dotenv[key]; value != "" {
			return value
		}
		return defaultValue
	}

	batchSize, err := strconv.Atoi(get("RAINBOW_BATCH_SIZE", "1000"))
	if err != nil || batchSize <= 0 {
		batchSize = 1000
	}

	return &Config{
		SchemasDir:    get("RAINBOW_SCHEMAS_DIR", "./schemas"),
		TargetsDir:    get("RAINBOW_TARGETS_DIR", "./targets"),
		RunsDBPath:    get("RAINBOW_RUNS_DB", "./rainbow-runs.sqlite"),
		LogLevel:      get("RAINBOW_LOG_LEVEL", "info"),
		BatchSize:     batchSize,
		DefaultMode:   get("RAINBOW_DEFAULT_MODE", "create"),
		QuoteURL:      get("RAINBOW_QUOTE_URL", "https://api.kanye.rest"),
		TelegramAPI:   get("RAINBOW_TELEGRAM_API", "https://api.telegram.org"),
		TelegramToken: get("TELOXIDE_TOKEN", ""),
	}
}

// GetEnv returns the value of key, or defaultValue when it is unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvBool reports whether key holds a truthy value ("1", "true", "yes").
func GetEnvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// readDotEnv returns the pairs in path without touching the process
// environment. A missing or unreadable file yields no pairs.
func readDotEnv(path string) map[string]string {
	values, err := godotenv.Read(path)
	if err != nil {
		return map[string]string{}
	}
	return values
}
