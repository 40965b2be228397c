package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-dashboard/internal/db"
)

const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
)

type Config struct {
	Port       string
	DataSource string
	// DatabaseURL wins over the DB_* parts when set.
	DatabaseURL    string
	AMQPURL        string
	CardConfigPath string
	LogLevel       string
	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

// Load reads envFile (if present) into the process environment and builds the
// configuration from it. A missing file is not an error.
func Load(envFile string) (*Config, error) {
	loaded := true
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		loaded = false
	}

	cfg := &Config{
		Port:           envOr("PORT", "8080"),
		DataSource:     envOr("DATA_SOURCE", DataSourceMemory),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		CardConfigPath: os.Getenv("CARD_CONFIG_PATH"),
		LogLevel:       envOr("LOG_LEVEL", "info"),
		EnvFileLoaded:  loaded,
	}
	if cfg.DatabaseURL == "" && os.Getenv("DB_HOST") != "" {
		cfg.DatabaseURL = db.DSN(
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			envOr("DB_PORT", "5432"),
			os.Getenv("DB_NAME"),
		)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceMemory:
	case DataSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATA_SOURCE=postgres requires DATABASE_URL or DB_HOST")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
