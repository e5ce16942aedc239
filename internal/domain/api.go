package domain

import "context"

// CarAPI is the remote marketplace service as seen by the usecases.
type CarAPI interface {
	SearchCars(ctx context.Context, params SearchParams) (*SearchResult, error)
	GetCar(ctx context.Context, id string) (*Car, error)
	CreateCar(ctx context.Context, input NewCarInput) (*Car, error)
	UpdateCar(ctx context.Context, id string, update CarUpdate) (*Car, error)
	DeleteCar(ctx context.Context, id string) error
	Login(ctx context.Context, email, password string) (*Session, error)
	Register(ctx context.Context, input RegisterInput) (*Session, error)
}
