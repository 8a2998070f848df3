// Package config loads process configuration from the environment, read once
// at startup.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
type Config struct {
	// TableName is the DynamoDB table holding event records.
	TableName string `envconfig:"DYNAMODB_TABLE_NAME" default:"EventsTable"`

	// AWSEndpointURL overrides the DynamoDB endpoint, for local development
	// with DynamoDB Local. Empty means the real AWS endpoint.
	AWSEndpointURL string `envconfig:"AWS_ENDPOINT_URL"`

	// Port is the HTTP listen port for the server entrypoint.
	Port string `envconfig:"PORT" default:"8080"`

	// RequestTimeout bounds every store call.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"5s"`

	// Environment is the runtime environment name (development, production).
	Environment string `envconfig:"GO_ENV" default:"development"`
}

// Load reads configuration from environment variables, first loading a .env
// file outside production. A missing .env is not an error; production relies
// on system environment variables alone.
func Load() (*Config, error) {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Info("no .env file loaded", "error", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
