package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aidhivi-dashboard/app/config"
	"aidhivi-dashboard/app/logging"
	"aidhivi-dashboard/app/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app := server.New(cfg, logger)

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.Server.Env))
		if err := app.Listen(cfg.Addr()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
