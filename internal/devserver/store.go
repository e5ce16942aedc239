// Package devserver is a self-contained stand-in for the remote marketplace
// API, meant for local development. It serves the documented REST surface
// over an in-memory copy of the sample dataset.
package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SerChertoff/Favorite-car/internal/catalog"
	"github.com/SerChertoff/Favorite-car/internal/domain"
)

type account struct {
	user         domain.User
	passwordHash []byte
}

// memStore holds the dev server's cars and accounts. Everything lives in
// memory and resets on restart.
type memStore struct {
	mu       sync.RWMutex
	cars     []domain.Car
	accounts map[string]*account // keyed by email
}

func newMemStore() *memStore {
	s := &memStore{
		cars:     catalog.SampleCars(),
		accounts: make(map[string]*account),
	}
	// Демо-аккаунт для ручной проверки клиента.
	demoHash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	s.accounts["demo@favorite-car.local"] = &account{
		user: domain.User{
			ID:        uuid.NewString(),
			Name:      "Demo User",
			Email:     "demo@favorite-car.local",
			Phone:     "+7 (999) 000-00-00",
			CreatedAt: time.Now(),
		},
		passwordHash: demoHash,
	}
	return s
}

func (s *memStore) search(params domain.SearchParams) *domain.SearchResult {
	s.mu.RLock()
	cars := make([]domain.Car, len(s.cars))
	copy(cars, s.cars)
	s.mu.RUnlock()
	return catalog.Search(cars, params)
}

func (s *memStore) get(id string) (*domain.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, car := range s.cars {
		if car.ID == id {
			c := car
			return &c, true
		}
	}
	return nil, false
}

// create assigns id, timestamps and seller fields from the authenticated
// user; the client never supplies them.
func (s *memStore) create(input domain.NewCarInput, seller domain.User) *domain.Car {
	now := time.Now()
	car := domain.Car{
		ID:           uuid.NewString(),
		Brand:        input.Brand,
		Model:        input.Model,
		Year:         input.Year,
		Price:        input.Price,
		Mileage:      input.Mileage,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		BodyType:     input.BodyType,
		Color:        input.Color,
		EngineVolume: input.EngineVolume,
		Description:  input.Description,
		Images:       input.Images,
		Location:     input.Location,
		SellerID:     seller.ID,
		SellerName:   seller.Name,
		SellerPhone:  seller.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if car.Images == nil {
		car.Images = []string{}
	}

	s.mu.Lock()
	s.cars = append(s.cars, car)
	s.mu.Unlock()
	return &car
}

func (s *memStore) update(id string, update domain.CarUpdate) (*domain.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cars {
		if s.cars[i].ID != id {
			continue
		}
		applyUpdate(&s.cars[i], update)
		s.cars[i].UpdatedAt = time.Now()
		car := s.cars[i]
		return &car, true
	}
	return nil, false
}

func (s *memStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cars {
		if s.cars[i].ID == id {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			return true
		}
	}
	return false
}

func (s *memStore) findAccount(email string) (*account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[email]
	return acc, ok
}

func (s *memStore) createAccount(input domain.RegisterInput) (*domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[input.Email]; exists {
		return nil, false
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false
	}
	user := domain.User{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		CreatedAt: time.Now(),
	}
	s.accounts[input.Email] = &account{user: user, passwordHash: hash}
	return &user, true
}

func (s *memStore) findUserByID(id string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, acc := range s.accounts {
		if acc.user.ID == id {
			user := acc.user
			return &user, true
		}
	}
	return nil, false
}

func applyUpdate(car *domain.Car, u domain.CarUpdate) {
	if u.Brand != nil {
		car.Brand = *u.Brand
	}
	if u.Model != nil {
		car.Model = *u.Model
	}
	if u.Year != nil {
		car.Year = *u.Year
	}
	if u.Price != nil {
		car.Price = *u.Price
	}
	if u.Mileage != nil {
		car.Mileage = *u.Mileage
	}
	if u.FuelType != nil {
		car.FuelType = *u.FuelType
	}
	if u.Transmission != nil {
		car.Transmission = *u.Transmission
	}
	if u.BodyType != nil {
		car.BodyType = *u.BodyType
	}
	if u.Color != nil {
		car.Color = *u.Color
	}
	if u.EngineVolume != nil {
		car.EngineVolume = *u.EngineVolume
	}
	if u.Description != nil {
		car.Description = *u.Description
	}
	if u.Images != nil {
		car.Images = *u.Images
	}
	if u.Location != nil {
		car.Location = *u.Location
	}
}
