package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultPort        = "8080"
	defaultEnvironment = "production"
	defaultLogLevel    = "info"
	defaultRPSLimit    = 10.0
	defaultRPSBurst    = 20
)

// Config holds the service configuration
type Config struct {
	Port        string
	Environment string
	LogLevel    string
	RPSLimit    float64
	RPSBurst    int
	// CatalogDBConfig is the JSON provider configuration; empty selects the in-memory catalog
	CatalogDBConfig string
}

// Load reads configuration from the environment, after loading a .env file if present
func Load(logger *zap.Logger) *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	cfg := &Config{
		Port:            getEnv("PORT", defaultPort),
		Environment:     getEnv("ENVIRONMENT", defaultEnvironment),
		LogLevel:        getEnv("LOG_LEVEL", defaultLogLevel),
		RPSLimit:        getEnvFloat(logger, "RPS_LIMIT", defaultRPSLimit),
		RPSBurst:        getEnvInt(logger, "RPS_BURST", defaultRPSBurst),
		CatalogDBConfig: os.Getenv("CATALOG_DB_CONFIG"),
	}

	logger.Info("configuration loaded",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.Float64("rps_limit", cfg.RPSLimit),
		zap.Int("rps_burst", cfg.RPSBurst),
		zap.Bool("catalog_db_configured", cfg.CatalogDBConfig != ""),
	)
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(logger *zap.Logger, key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logger.Warn("invalid integer in environment, using default",
			zap.String("key", key), zap.String("value", v), zap.Int("default", fallback))
		return fallback
	}
	return n
}

func getEnvFloat(logger *zap.Logger, key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		logger.Warn("invalid number in environment, using default",
			zap.String("key", key), zap.String("value", v), zap.Float64("default", fallback))
		return fallback
	}
	return f
}
