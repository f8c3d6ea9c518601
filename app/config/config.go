package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
}

type ServerConfig struct {
	Host           string `validate:"required"`
	Port           int    `validate:"min=1,max=65535"`
	Env            string `validate:"oneof=development production"`
	TemplateReload bool
	AllowOrigins   string `validate:"required"`
}

type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

// Load builds the configuration from the environment. A .env file in the
// working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	reload, err := strconv.ParseBool(getEnv("TEMPLATE_RELOAD", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid TEMPLATE_RELOAD: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("APP_HOST", "0.0.0.0"),
			Port:           port,
			Env:            getEnv("APP_ENV", EnvDevelopment),
			TemplateReload: reload,
			AllowOrigins:   getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == EnvProduction
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
