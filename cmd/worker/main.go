package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"reflection-backend/internal/config"
	"reflection-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	logger.Init(cfg.App.Environment)

	handlers := initializeHandlers(cfg)
	srv := setupAsynqServer(cfg, handlers)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	srv.Shutdown()
	logger.Info("worker exited", nil)
}
