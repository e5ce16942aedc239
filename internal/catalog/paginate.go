package catalog

import "github.com/SerChertoff/Favorite-car/internal/domain"

// Paginate slices out one page: skip (page-1)*limit, take limit.
// A page past the end yields an empty (non-nil) page.
func Paginate(cars []domain.Car, page, limit int) []domain.Car {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}

	start := (page - 1) * limit
	if start >= len(cars) {
		return []domain.Car{}
	}
	end := start + limit
	if end > len(cars) {
		end = len(cars)
	}

	pageSlice := make([]domain.Car, end-start)
	copy(pageSlice, cars[start:end])
	return pageSlice
}

// Search runs the full local pipeline over cars: filter, then sort when a
// key is given, then pagination. Total is counted before pagination.
func Search(cars []domain.Car, params domain.SearchParams) *domain.SearchResult {
	params = params.Normalized()

	filtered := Filter(cars, params)
	if params.SortBy != "" {
		filtered = Sort(filtered, params.SortBy, params.SortOrder)
	}

	return &domain.SearchResult{
		Cars:  Paginate(filtered, params.Page, params.Limit),
		Total: len(filtered),
	}
}
