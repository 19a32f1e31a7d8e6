package config

import (
	"fmt"
	"os"
)

type Config struct {
	Port        string
	SecretKey   string
	MongoURI    string
	UploadDir   string
	Environment string
	LogLevel    string
}

const devSecretKey = "dev-secret-key"

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnvWithDefault("PORT", "8080"),
		SecretKey:   getEnvWithDefault("SECRET_KEY", devSecretKey),
		MongoURI:    getEnvWithDefault("MONGO_URI", "mongodb://localhost:27017/"),
		UploadDir:   getEnvWithDefault("UPLOAD_DIR", "static/uploads/events"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
	}

	// The development fallback secret must never sign production sessions
	if cfg.IsProduction() && cfg.SecretKey == devSecretKey {
		return nil, fmt.Errorf("SECRET_KEY is required in production")
	}

	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
