package main

import (
	"context"
	"log"

	"portfolio-contact-api/config"
	"portfolio-contact-api/internal/server"
	"portfolio-contact-api/pkg/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Stage, cfg.LogLevel)

	router, err := server.NewRouter(context.Background(), cfg, logger.Log)
	if err != nil {
		logger.Log.Fatal("Failed to build router", zap.Error(err))
	}

	ginLambda = ginadapter.New(router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Log.Debug("Received Lambda request",
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path),
		zap.String("aws_request_id", req.RequestContext.RequestID),
	)
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
