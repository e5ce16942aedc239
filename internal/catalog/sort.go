package catalog

import (
	"sort"

	"github.com/SerChertoff/Favorite-car/internal/domain"
)

// Sort returns a reordered copy of cars. An empty key returns the copy
// unchanged. Equal keys are broken by ID so the order is deterministic.
func Sort(cars []domain.Car, key domain.SortKey, order domain.SortOrder) []domain.Car {
	sorted := make([]domain.Car, len(cars))
	copy(sorted, cars)

	if key == "" {
		return sorted
	}

	desc := order != domain.SortAsc

	sort.Slice(sorted, func(i, j int) bool {
		a, b := sortValue(sorted[i], key), sortValue(sorted[j], key)
		if a == b {
			return sorted[i].ID < sorted[j].ID
		}
		if desc {
			return a > b
		}
		return a < b
	})
	return sorted
}

func sortValue(car domain.Car, key domain.SortKey) float64 {
	switch key {
	case domain.SortByPrice:
		return car.Price
	case domain.SortByYear:
		return float64(car.Year)
	case domain.SortByMileage:
		return float64(car.Mileage)
	case domain.SortByCreatedAt:
		return float64(car.CreatedAt.UnixNano())
	default:
		return 0
	}
}
