package domain

import "time"

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

type Transmission string

const (
	TransmissionManual     Transmission = "manual"
	TransmissionAutomatic  Transmission = "automatic"
	TransmissionDualClutch Transmission = "dual-clutch"
	TransmissionCVT        Transmission = "cvt"
)

type BodyType string

const (
	BodySedan       BodyType = "sedan"
	BodyHatchback   BodyType = "hatchback"
	BodyWagon       BodyType = "wagon"
	BodySUV         BodyType = "suv"
	BodyCoupe       BodyType = "coupe"
	BodyConvertible BodyType = "convertible"
)

// Car - объявление о продаже автомобиля. ID, timestamps и данные продавца
// назначаются сервером, клиент их никогда не присылает.
type Car struct {
	ID           string       `json:"id"`
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Mileage      int          `json:"mileage"`
	FuelType     FuelType     `json:"fuelType"`
	Transmission Transmission `json:"transmission"`
	BodyType     BodyType     `json:"bodyType"`
	Color        string       `json:"color"`
	EngineVolume float64      `json:"engineVolume"`
	Description  string       `json:"description"`
	Images       []string     `json:"images"`
	Location     string       `json:"location"`
	SellerID     string       `json:"sellerId"`
	SellerName   string       `json:"sellerName"`
	SellerPhone  string       `json:"sellerPhone"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// NewCarInput is the client payload for creating a listing. Server-assigned
// fields (id, seller, timestamps) are deliberately absent.
type NewCarInput struct {
	Brand        string       `json:"brand"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Mileage      int          `json:"mileage"`
	FuelType     FuelType     `json:"fuelType"`
	Transmission Transmission `json:"transmission"`
	BodyType     BodyType     `json:"bodyType"`
	Color        string       `json:"color"`
	EngineVolume float64      `json:"engineVolume"`
	Description  string       `json:"description"`
	Images       []string     `json:"images"`
	Location     string       `json:"location"`
}

// CarUpdate is a partial update; nil fields are left untouched by the server.
type CarUpdate struct {
	Brand        *string       `json:"brand,omitempty"`
	Model        *string       `json:"model,omitempty"`
	Year         *int          `json:"year,omitempty"`
	Price        *float64      `json:"price,omitempty"`
	Mileage      *int          `json:"mileage,omitempty"`
	FuelType     *FuelType     `json:"fuelType,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
	BodyType     *BodyType     `json:"bodyType,omitempty"`
	Color        *string       `json:"color,omitempty"`
	EngineVolume *float64      `json:"engineVolume,omitempty"`
	Description  *string       `json:"description,omitempty"`
	Images       *[]string     `json:"images,omitempty"`
	Location     *string       `json:"location,omitempty"`
}

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the (token, user) pair of an authenticated identity.
// The two are always set or cleared together, never one without the other.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type SortKey string

const (
	SortByPrice     SortKey = "price"
	SortByYear      SortKey = "year"
	SortByMileage   SortKey = "mileage"
	SortByCreatedAt SortKey = "createdAt"
)

const DefaultPageLimit = 10

// SearchParams narrows a car search. Zero/nil fields impose no constraint;
// all present constraints are combined with logical AND.
type SearchParams struct {
	Brand        string        `json:"brand,omitempty"`
	Model        string        `json:"model,omitempty"`
	MinPrice     *float64      `json:"minPrice,omitempty"`
	MaxPrice     *float64      `json:"maxPrice,omitempty"`
	MinYear      *int          `json:"minYear,omitempty"`
	MaxYear      *int          `json:"maxYear,omitempty"`
	FuelType     *FuelType     `json:"fuelType,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
	BodyType     *BodyType     `json:"bodyType,omitempty"`
	Location     string        `json:"location,omitempty"`
	Page         int           `json:"page,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	SortBy       SortKey       `json:"sortBy,omitempty"`
	SortOrder    SortOrder     `json:"sortOrder,omitempty"`
}

// Normalized returns a copy with pagination and sort defaults applied:
// page >= 1, limit > 0 (default 10), sort order defaults to descending.
func (p SearchParams) Normalized() SearchParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}
	return p
}

// SearchResult is one page of listings plus the pre-pagination total.
type SearchResult struct {
	Cars  []Car `json:"cars"`
	Total int   `json:"total"`
}
