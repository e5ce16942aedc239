package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/adapter/storage"
)

// FavoritesUsecase keeps the ordered set of favorited car ids. Membership
// is unique; insertion order is preserved. Every mutation persists the
// whole list immediately.
type FavoritesUsecase struct {
	store  storage.Store
	logger *zap.Logger

	mu  sync.RWMutex
	ids []string
}

// NewFavoritesUsecase loads the persisted list; an absent or unparseable
// value means starting empty, never an error.
func NewFavoritesUsecase(store storage.Store, logger *zap.Logger) *FavoritesUsecase {
	uc := &FavoritesUsecase{
		store:  store,
		logger: logger,
		ids:    []string{},
	}

	stored, err := store.Get(context.Background(), storage.KeyFavorites)
	if err == nil && stored != "" {
		var ids []string
		if err := json.Unmarshal([]byte(stored), &ids); err != nil {
			logger.Warn("Stored favorites are corrupt, starting empty", zap.Error(err))
		} else if ids != nil {
			uc.ids = ids
		}
	}
	return uc
}

// Add appends the id; already-favorited ids are left alone.
func (uc *FavoritesUsecase) Add(ctx context.Context, carID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.contains(carID) {
		return
	}
	uc.ids = append(uc.ids, carID)
	uc.persist(ctx)
}

// Remove deletes the id; absent ids are a no-op.
func (uc *FavoritesUsecase) Remove(ctx context.Context, carID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i, id := range uc.ids {
		if id == carID {
			uc.ids = append(uc.ids[:i], uc.ids[i+1:]...)
			uc.persist(ctx)
			return
		}
	}
}

// Toggle adds the id when absent and removes it when present.
func (uc *FavoritesUsecase) Toggle(ctx context.Context, carID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for i, id := range uc.ids {
		if id == carID {
			uc.ids = append(uc.ids[:i], uc.ids[i+1:]...)
			uc.persist(ctx)
			return
		}
	}
	uc.ids = append(uc.ids, carID)
	uc.persist(ctx)
}

func (uc *FavoritesUsecase) IsFavorite(carID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.contains(carID)
}

func (uc *FavoritesUsecase) Count() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.ids)
}

// IDs returns a copy of the favorited ids in insertion order.
func (uc *FavoritesUsecase) IDs() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	ids := make([]string, len(uc.ids))
	copy(ids, uc.ids)
	return ids
}

func (uc *FavoritesUsecase) contains(carID string) bool {
	for _, id := range uc.ids {
		if id == carID {
			return true
		}
	}
	return false
}

// persist writes the full list; callers hold the lock.
func (uc *FavoritesUsecase) persist(ctx context.Context) {
	data, err := json.Marshal(uc.ids)
	if err != nil {
		uc.logger.Error("Failed to encode favorites", zap.Error(err))
		return
	}
	if err := uc.store.Set(ctx, storage.KeyFavorites, string(data)); err != nil {
		uc.logger.Error("Failed to persist favorites", zap.Error(err))
	}
}
