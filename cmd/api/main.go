package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"portfolio-contact-api/config"
	"portfolio-contact-api/internal/server"
	"portfolio-contact-api/pkg/logger"

	"go.uber.org/zap"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Contact form backend for the portfolio site. Submissions are emailed through Resend.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Stage, cfg.LogLevel)
	defer logger.Sync()
	logger.Log.Info("Starting portfolio contact API", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))

	// 3. Setup Router
	router, err := server.NewRouter(context.Background(), cfg, logger.Log)
	if err != nil {
		logger.Log.Error("Failed to build router", zap.Error(err))
		os.Exit(1)
	}

	// 4. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
}
