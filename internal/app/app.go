// Package app wires the client application together: config, logger,
// persisted store, API client and the usecases on top of them.
package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/adapter/httpapi"
	"github.com/SerChertoff/Favorite-car/internal/adapter/storage"
	"github.com/SerChertoff/Favorite-car/internal/config"
	"github.com/SerChertoff/Favorite-car/internal/usecase"
)

type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     storage.Store
	Catalog   *usecase.CatalogUsecase
	Auth      *usecase.AuthUsecase
	Favorites *usecase.FavoritesUsecase
}

func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	// Авторизация и API-клиент связаны в обе стороны: клиент берет токен
	// у AuthUsecase, AuthUsecase ходит в API через клиента. Разрываем цикл
	// через TokenSource.
	var auth *usecase.AuthUsecase
	api := httpapi.NewClient(cfg.APIBaseURL, cfg.APITimeout, func() string {
		if auth == nil {
			return ""
		}
		return auth.Token()
	}, logger)

	auth = usecase.NewAuthUsecase(api, store, logger)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Store:     store,
		Catalog:   usecase.NewCatalogUsecase(api, cfg.Environment, cfg.APIBaseURL, logger),
		Auth:      auth,
		Favorites: usecase.NewFavoritesUsecase(store, logger),
	}, nil
}

func (a *App) Close() error {
	if closer, ok := a.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return storage.NewSQLiteStore(cfg.StorePath)
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddress)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
