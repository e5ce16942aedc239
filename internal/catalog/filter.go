package catalog

import (
	"strings"

	"github.com/SerChertoff/Favorite-car/internal/domain"
)

// Filter returns the cars matching every present constraint in params.
// Unset constraints are ignored. The input slice is never mutated.
func Filter(cars []domain.Car, params domain.SearchParams) []domain.Car {
	filtered := make([]domain.Car, 0, len(cars))
	for _, car := range cars {
		if matches(car, params) {
			filtered = append(filtered, car)
		}
	}
	return filtered
}

func matches(car domain.Car, p domain.SearchParams) bool {
	if p.Brand != "" && !containsFold(car.Brand, p.Brand) {
		return false
	}
	if p.Model != "" && !containsFold(car.Model, p.Model) {
		return false
	}
	if p.Location != "" && !containsFold(car.Location, p.Location) {
		return false
	}
	if p.MinYear != nil && car.Year < *p.MinYear {
		return false
	}
	if p.MaxYear != nil && car.Year > *p.MaxYear {
		return false
	}
	if p.MinPrice != nil && car.Price < *p.MinPrice {
		return false
	}
	if p.MaxPrice != nil && car.Price > *p.MaxPrice {
		return false
	}
	if p.FuelType != nil && car.FuelType != *p.FuelType {
		return false
	}
	if p.Transmission != nil && car.Transmission != *p.Transmission {
		return false
	}
	if p.BodyType != nil && car.BodyType != *p.BodyType {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
