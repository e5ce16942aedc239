package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/config"
	"github.com/SerChertoff/Favorite-car/internal/devserver"
)

func main() {
	// Инициализация логгера
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load dev server config", zap.Error(err))
	}

	handler := devserver.NewHandler(logger, cfg.JWTSecret, cfg.TokenTTL)
	router := devserver.NewRouter(handler, cfg.JWTSecret, logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting dev car API server", zap.String("address", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Fatal("Dev car API server stopped", zap.Error(err))
	}
}
