// Command eventsd-lambda runs the events service as an AWS Lambda function
// behind API Gateway, sharing the HTTP routes with the server entrypoint.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eventdesk/api"
	"eventdesk/config"
	"eventdesk/internal/apigw"
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

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("failed to configure AWS SDK", "error", err)
		os.Exit(1)
	}
	client := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWSEndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		}
	})

	st := store.New(client, store.Config{
		Table:   cfg.TableName,
		Timeout: cfg.RequestTimeout,
	})

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	root := e.Group("")
	api.NewHealthCheckAPI().Setup(root)
	api.NewEventAPI(st, logger).Setup(root)

	lambda.Start(apigw.New(e).Handle)
}
