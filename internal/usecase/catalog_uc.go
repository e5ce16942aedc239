package usecase

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/catalog"
	"github.com/SerChertoff/Favorite-car/internal/domain"
)

// CatalogUsecase orchestrates car retrieval: remote API first, built-in
// sample dataset when the API is unreachable or intentionally bypassed.
// Mutations always go to the API; they have no offline path.
type CatalogUsecase struct {
	api         domain.CarAPI
	logger      *zap.Logger
	offlineOnly bool
}

// NewCatalogUsecase decides once, at construction, whether remote calls are
// skipped entirely: in a production build, or when the API base URL is
// missing or points at a loopback address nothing will be listening on.
func NewCatalogUsecase(api domain.CarAPI, environment, apiBaseURL string, logger *zap.Logger) *CatalogUsecase {
	offlineOnly := environment == "production" || apiBaseURL == "" || isLoopbackURL(apiBaseURL)
	if offlineOnly {
		logger.Info("Catalog running on built-in sample data",
			zap.String("environment", environment), zap.String("api_base_url", apiBaseURL))
	}
	return &CatalogUsecase{
		api:         api,
		logger:      logger,
		offlineOnly: offlineOnly,
	}
}

// SearchCars returns one page of listings plus the pre-pagination total.
// Falls back to the sample dataset only on network-class or malformed-shape
// failures; every other remote error is returned to the caller.
func (uc *CatalogUsecase) SearchCars(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	params = params.Normalized()

	if uc.offlineOnly {
		return catalog.Search(catalog.SampleCars(), params), nil
	}

	result, err := uc.api.SearchCars(ctx, params)
	if err != nil {
		if shouldFallBack(err) {
			uc.logger.Warn("Car search fell back to sample data", zap.Error(err))
			return catalog.Search(catalog.SampleCars(), params), nil
		}
		uc.logger.Error("Car search failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// GetCar looks a car up by id, with the same fallback policy as SearchCars.
// On the fallback path an absent id yields a NotFoundError carrying it.
func (uc *CatalogUsecase) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	if uc.offlineOnly {
		return sampleCarByID(id)
	}

	car, err := uc.api.GetCar(ctx, id)
	if err != nil {
		if shouldFallBack(err) {
			uc.logger.Warn("Car lookup fell back to sample data",
				zap.String("car_id", id), zap.Error(err))
			return sampleCarByID(id)
		}
		return nil, err
	}
	return car, nil
}

func (uc *CatalogUsecase) CreateCar(ctx context.Context, input domain.NewCarInput) (*domain.Car, error) {
	car, err := uc.api.CreateCar(ctx, input)
	if err != nil {
		uc.logger.Error("Failed to create car listing", zap.Error(err))
		return nil, err
	}
	uc.logger.Info("Car listing created", zap.String("car_id", car.ID))
	return car, nil
}

func (uc *CatalogUsecase) UpdateCar(ctx context.Context, id string, update domain.CarUpdate) (*domain.Car, error) {
	car, err := uc.api.UpdateCar(ctx, id, update)
	if err != nil {
		uc.logger.Error("Failed to update car listing", zap.String("car_id", id), zap.Error(err))
		return nil, err
	}
	return car, nil
}

func (uc *CatalogUsecase) DeleteCar(ctx context.Context, id string) error {
	if err := uc.api.DeleteCar(ctx, id); err != nil {
		uc.logger.Error("Failed to delete car listing", zap.String("car_id", id), zap.Error(err))
		return err
	}
	uc.logger.Info("Car listing deleted", zap.String("car_id", id))
	return nil
}

func sampleCarByID(id string) (*domain.Car, error) {
	car, ok := catalog.FindSampleCar(id)
	if !ok {
		return nil, &domain.NotFoundError{ID: id}
	}
	return car, nil
}

// Reads fall back on network-class and malformed-shape failures only.
func shouldFallBack(err error) bool {
	return errors.Is(err, domain.ErrServiceUnavailable) ||
		errors.Is(err, domain.ErrMalformedResponse)
}

func isLoopbackURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if strings.EqualFold(host, "localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
