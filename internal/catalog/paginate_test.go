package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SerChertoff/Favorite-car/internal/domain"
)

func TestPaginate_AllPagesReconstructTheCollection(t *testing.T) {
	cars := SampleCars()
	limit := 2

	var reassembled []domain.Car
	for page := 1; ; page++ {
		p := Paginate(cars, page, limit)
		if len(p) == 0 {
			break
		}
		reassembled = append(reassembled, p...)
	}
	assert.Equal(t, cars, reassembled)
}

func TestPaginate_PageBeyondDataIsEmpty(t *testing.T) {
	page := Paginate(SampleCars(), 100, 10)
	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestPaginate_PartialLastPage(t *testing.T) {
	// 6 cars, limit 4: page 2 holds the remaining 2.
	page := Paginate(SampleCars(), 2, 4)
	assert.Len(t, page, 2)
}

func TestSearch_SecondPageOfOneByPriceDesc(t *testing.T) {
	// limit=1, page=2 по убыванию цены: вторая по цене машина, total=6.
	result := Search(SampleCars(), domain.SearchParams{
		Page:      2,
		Limit:     1,
		SortBy:    domain.SortByPrice,
		SortOrder: domain.SortDesc,
	})
	assert.Equal(t, 6, result.Total)
	assert.Len(t, result.Cars, 1)
	assert.Equal(t, "C-Class", result.Cars[0].Model) // 3200000, после X5 за 4500000
}

func TestSearch_TotalCountsBeforePagination(t *testing.T) {
	result := Search(SampleCars(), domain.SearchParams{Limit: 2})
	assert.Equal(t, 6, result.Total)
	assert.Len(t, result.Cars, 2)
}

func TestSearch_DefaultsApplied(t *testing.T) {
	result := Search(SampleCars(), domain.SearchParams{})
	assert.Equal(t, 6, result.Total)
	assert.Len(t, result.Cars, 6) // default limit is 10
}
