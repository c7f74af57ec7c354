package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jtaclogs/internal/config"
	"jtaclogs/internal/db"
	"jtaclogs/internal/db/migrations"
	"jtaclogs/internal/logger"
	"jtaclogs/internal/routes"
)

// @title Jtaclogs API
// @version 1.0
// @description REST backend for the Jtaclogs movie-catalog application.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("development", "info")
		logger.Log.Fatal("invalid configuration", zap.Error(err))
	}

	logger.Init(cfg.Environment, cfg.LogLevel)
	defer logger.Log.Sync()

	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		logger.Log.Fatal("failed to ensure database exists", zap.Error(err))
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := migrations.Run(database.DB); err != nil {
		logger.Log.Fatal("failed to run migrations", zap.Error(err))
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		logger.Log.Fatal("failed to configure S3", zap.Error(err))
	}

	router := routes.SetupRoutes(database.DB, cfg, s3Config)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	// Give in-flight requests five seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("server exiting")
}
