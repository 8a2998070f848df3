// Command eventsd runs the events service as a long-running HTTP server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eventdesk/api"
	"eventdesk/config"
	"eventdesk/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	client, err := newDynamoClient(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to configure AWS SDK", "error", err)
		os.Exit(1)
	}

	st := store.New(client, store.Config{
		Table:   cfg.TableName,
		Timeout: cfg.RequestTimeout,
	})

	e := newEcho(st, logger)

	logger.Info("starting server",
		"port", cfg.Port,
		"table", cfg.TableName,
		"environment", cfg.Environment,
	)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newDynamoClient(ctx context.Context, cfg *config.Config) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		}
	}), nil
}

func newEcho(st *store.Store, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	root := e.Group("")
	api.NewHealthCheckAPI().Setup(root)
	api.NewEventAPI(st, logger).Setup(root)

	return e
}
