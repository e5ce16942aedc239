package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/catalog"
	"github.com/SerChertoff/Favorite-car/internal/domain"
)

type MockCarAPI struct{ mock.Mock }

func (m *MockCarAPI) SearchCars(ctx context.Context, params domain.SearchParams) (*domain.SearchResult, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchResult), args.Error(1)
}

func (m *MockCarAPI) GetCar(ctx context.Context, id string) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarAPI) CreateCar(ctx context.Context, input domain.NewCarInput) (*domain.Car, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarAPI) UpdateCar(ctx context.Context, id string, update domain.CarUpdate) (*domain.Car, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarAPI) DeleteCar(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarAPI) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockCarAPI) Register(ctx context.Context, input domain.RegisterInput) (*domain.Session, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

const remoteBaseURL = "http://cars.example.com/api"

func TestSearchCars_TimeoutFallsBackToSampleData(t *testing.T) {
	api := new(MockCarAPI)
	uc := NewCatalogUsecase(api, "development", remoteBaseURL, zap.NewNop())

	params := domain.SearchParams{Brand: "toyota", SortBy: domain.SortByPrice}
	api.On("SearchCars", mock.Anything, mock.Anything).
		Return(nil, domain.ErrServiceUnavailable)

	result, err := uc.SearchCars(context.Background(), params)
	assert.NoError(t, err)

	// Fallback must match a direct run of the local pipeline.
	want := catalog.Search(catalog.SampleCars(), params)
	assert.Equal(t, want, result)
	api.AssertExpectations(t)
}

func TestSearchCars_MalformedResponseFallsBack(t *testing.T) {
	api := new(MockCarAPI)
	uc := NewCatalogUsecase(api, "development", remoteBaseURL, zap.NewNop())

	api.On("SearchCars", mock.Anything, mock.Anything).
		Return(nil, domain.ErrMalformedResponse)

	result, err := uc.SearchCars(context.Background(), domain.SearchParams{})
	assert.NoError(t, err)
	assert.Equal(t, 6, result.Total)
}

func TestSearchCars_ServiceErrorPropagates(t *testing.T) {
	api := new(MockCarAPI)
	uc := NewCatalogUsecase(api, "development", remoteBaseURL, zap.NewNop())

	apiErr := &domain.APIError{StatusCode: 500, Message: "boom"}
	api.On("SearchCars", mock.Anything, mock.Anything).Return(nil, apiErr)

	result, err := uc.SearchCars(context.Background(), domain.SearchParams{})
	assert.Nil(t, result)
	var got *domain.APIError
	assert.ErrorAs(t, err, &got)
	assert.Equal(t, 500, got.StatusCode)
}

func TestSearchCars_RemoteSuccessIsReturnedAsIs(t *testing.T) {
	api := new(MockCarAPI)
	uc := NewCatalogUsecase(api, "development", remoteBaseURL, zap.NewNop())

	remote := &domain.SearchResult{Cars: []domain.Car{{ID: "remote-1"}}, Total: 42}
	api.On("SearchCars", mock.Anything, mock.Anything).Return(remote, nil)

	result, err := uc.SearchCars(context.Background(), domain.SearchParams{})
	assert.NoError(t, err)
	assert.Equal(t, remote, result)
}

func TestSearchCars_ProductionSkipsRemoteEntirely(t *testing.T) {
	api := new(MockCarAPI) // no expectations: any call would fail the test
	uc := NewCatalogUsecase(api, "production", remoteBaseURL, zap.NewNop())

	result, err := uc.SearchCars(context.Background(), domain.SearchParams{Brand: "bmw"})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	api.AssertNotCalled(t, "SearchCars", mock.Anything, mock.Anything)
}

func TestSearchCars_LoopbackBaseURLSkipsRemote(t *testing.T) {
	for _, baseURL := range []string{"http://localhost:3001/api", "http://127.0.0.1:3001/api", ""} {
		api := new(MockCarAPI)
		uc := NewCatalogUsecase(api, "development", baseURL, zap.NewNop())

		_, err := uc.SearchCars(context.Background(), domain.SearchParams{})
		assert.NoError(t, err)
		api.AssertNotCalled(t, "SearchCars", mock.Anything, mock.Anything)
	}
}

func TestGetCar_FallbackFindsSampleCar(t *testing.T) {
	api := new(MockCarAPI)
	uc := NewCatalogUsecase(api, "development", remoteBaseURL, zap.NewNop())

	api.On("GetCar", mock.Anything, "2").Return(nil, domain.ErrServiceUnavailable)

	car, err := uc.GetCar(context.Background(), "2")
	assert.NoError(t, err)
	assert.Equal(t, "BMW", car.Brand)
}

func TestGetCar_FallbackNotFoundCarriesID(t *testing.T) {
	api := new(MockCarAPI)
	uc := NewCatalogUsecase(api, "development", remoteBaseURL, zap.NewNop())

	api.On("GetCar", mock.Anything, "no-such-id").Return(nil, domain.ErrServiceUnavailable)

	car, err := uc.GetCar(context.Background(), "no-such-id")
	assert.Nil(t, car)
	assert.ErrorIs(t, err, domain.ErrCarNotFound)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-id", notFound.ID)
}

func TestMutations_NeverFallBack(t *testing.T) {
	api := new(MockCarAPI)
	uc := NewCatalogUsecase(api, "development", remoteBaseURL, zap.NewNop())

	api.On("CreateCar", mock.Anything, mock.Anything).Return(nil, domain.ErrServiceUnavailable)
	api.On("UpdateCar", mock.Anything, "1", mock.Anything).Return(nil, domain.ErrServiceUnavailable)
	api.On("DeleteCar", mock.Anything, "1").Return(domain.ErrServiceUnavailable)

	_, err := uc.CreateCar(context.Background(), domain.NewCarInput{Brand: "Lada"})
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)

	_, err = uc.UpdateCar(context.Background(), "1", domain.CarUpdate{})
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)

	err = uc.DeleteCar(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
}
