package catalog

import (
	"time"

	"github.com/SerChertoff/Favorite-car/internal/domain"
)

// Демо-данные на случай, когда API недоступен.
var sampleCars = buildSampleCars(time.Now())

// SampleCars returns a fresh copy of the built-in dataset, so callers may
// filter and sort without affecting each other.
func SampleCars() []domain.Car {
	cars := make([]domain.Car, len(sampleCars))
	copy(cars, sampleCars)
	return cars
}

// FindSampleCar does a linear scan of the built-in dataset.
func FindSampleCar(id string) (*domain.Car, bool) {
	for _, car := range sampleCars {
		if car.ID == id {
			c := car
			return &c, true
		}
	}
	return nil, false
}

func buildSampleCars(now time.Time) []domain.Car {
	day := 24 * time.Hour
	return []domain.Car{
		{
			ID:           "1",
			Brand:        "Toyota",
			Model:        "Camry",
			Year:         2022,
			Price:        2500000,
			Mileage:      15000,
			FuelType:     domain.FuelPetrol,
			Transmission: domain.TransmissionAutomatic,
			BodyType:     domain.BodySedan,
			Color:        "White",
			EngineVolume: 2.5,
			Description:  "Excellent condition, one owner, fully equipped. All paperwork in order.",
			Images:       []string{},
			Location:     "Moscow",
			SellerID:     "1",
			SellerName:   "Ivan Petrov",
			SellerPhone:  "+7 (999) 123-45-67",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           "2",
			Brand:        "BMW",
			Model:        "X5",
			Year:         2021,
			Price:        4500000,
			Mileage:      25000,
			FuelType:     domain.FuelPetrol,
			Transmission: domain.TransmissionAutomatic,
			BodyType:     domain.BodySUV,
			Color:        "Black",
			EngineVolume: 3.0,
			Description:  "Premium trim, leather interior, panoramic roof. Immaculate condition.",
			Images:       []string{},
			Location:     "Saint Petersburg",
			SellerID:     "2",
			SellerName:   "Maria Sidorova",
			SellerPhone:  "+7 (999) 234-56-78",
			CreatedAt:    now.Add(-1 * day),
			UpdatedAt:    now.Add(-1 * day),
		},
		{
			ID:           "3",
			Brand:        "Mercedes-Benz",
			Model:        "C-Class",
			Year:         2023,
			Price:        3200000,
			Mileage:      5000,
			FuelType:     domain.FuelPetrol,
			Transmission: domain.TransmissionAutomatic,
			BodyType:     domain.BodySedan,
			Color:        "Silver",
			EngineVolume: 2.0,
			Description:  "Nearly new, barely driven. All warranties intact.",
			Images:       []string{},
			Location:     "Moscow",
			SellerID:     "3",
			SellerName:   "Alexey Ivanov",
			SellerPhone:  "+7 (999) 345-67-89",
			CreatedAt:    now.Add(-2 * day),
			UpdatedAt:    now.Add(-2 * day),
		},
		{
			ID:           "4",
			Brand:        "Audi",
			Model:        "A4",
			Year:         2020,
			Price:        2800000,
			Mileage:      40000,
			FuelType:     domain.FuelPetrol,
			Transmission: domain.TransmissionAutomatic,
			BodyType:     domain.BodySedan,
			Color:        "Blue",
			EngineVolume: 2.0,
			Description:  "Great mechanical shape, regular servicing. No accidents.",
			Images:       []string{},
			Location:     "Kazan",
			SellerID:     "4",
			SellerName:   "Dmitry Smirnov",
			SellerPhone:  "+7 (999) 456-78-90",
			CreatedAt:    now.Add(-3 * day),
			UpdatedAt:    now.Add(-3 * day),
		},
		{
			ID:           "5",
			Brand:        "Volkswagen",
			Model:        "Tiguan",
			Year:         2021,
			Price:        2200000,
			Mileage:      30000,
			FuelType:     domain.FuelPetrol,
			Transmission: domain.TransmissionAutomatic,
			BodyType:     domain.BodySUV,
			Color:        "White",
			EngineVolume: 2.0,
			Description:  "Family car in excellent condition. All documents ready.",
			Images:       []string{},
			Location:     "Yekaterinburg",
			SellerID:     "5",
			SellerName:   "Olga Kozlova",
			SellerPhone:  "+7 (999) 567-89-01",
			CreatedAt:    now.Add(-4 * day),
			UpdatedAt:    now.Add(-4 * day),
		},
		{
			ID:           "6",
			Brand:        "Hyundai",
			Model:        "Solaris",
			Year:         2022,
			Price:        1500000,
			Mileage:      20000,
			FuelType:     domain.FuelPetrol,
			Transmission: domain.TransmissionManual,
			BodyType:     domain.BodySedan,
			Color:        "Red",
			EngineVolume: 1.6,
			Description:  "Economical and reliable. Perfect city car.",
			Images:       []string{},
			Location:     "Novosibirsk",
			SellerID:     "6",
			SellerName:   "Sergey Volkov",
			SellerPhone:  "+7 (999) 678-90-12",
			CreatedAt:    now.Add(-5 * day),
			UpdatedAt:    now.Add(-5 * day),
		},
	}
}
