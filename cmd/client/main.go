package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/app"
	"github.com/SerChertoff/Favorite-car/internal/config"
	"github.com/SerChertoff/Favorite-car/internal/domain"
)

// Консольная обертка над клиентом: поиск, карточка, избранное, вход.
// Вся логика живет в internal/, здесь только разбор флагов и вывод.
func main() {
	var (
		brand    = flag.String("brand", "", "filter by brand (substring)")
		model    = flag.String("model", "", "filter by model (substring)")
		location = flag.String("location", "", "filter by location (substring)")
		minYear  = flag.Int("min-year", 0, "minimum year")
		maxYear  = flag.Int("max-year", 0, "maximum year")
		minPrice = flag.Float64("min-price", 0, "minimum price")
		maxPrice = flag.Float64("max-price", 0, "maximum price")
		page     = flag.Int("page", 1, "page number")
		limit    = flag.Int("limit", domain.DefaultPageLimit, "page size")
		sortBy   = flag.String("sort", "", "sort key: price, year, mileage, createdAt")
		order    = flag.String("order", "desc", "sort order: asc or desc")
		carID    = flag.String("id", "", "show a single car by id")
		toggle   = flag.String("toggle-favorite", "", "toggle a car id in favorites")
		listFavs = flag.Bool("favorites", false, "list favorited car ids")
		email    = flag.String("login", "", "log in with this email")
		password = flag.String("password", "", "password for -login")
		logout   = flag.Bool("logout", false, "clear the stored session")
	)
	flag.Parse()

	// Инициализация логгера
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize application", zap.Error(err))
	}
	defer application.Close()

	ctx := context.Background()

	switch {
	case *logout:
		application.Auth.Logout(ctx)
		fmt.Println("logged out")

	case *email != "":
		user, err := application.Auth.Login(ctx, *email, *password)
		if err != nil {
			logger.Fatal("Login failed", zap.Error(err))
		}
		fmt.Printf("logged in as %s <%s>\n", user.Name, user.Email)

	case *toggle != "":
		application.Favorites.Toggle(ctx, *toggle)
		fmt.Printf("favorites now: %v\n", application.Favorites.IDs())

	case *listFavs:
		fmt.Printf("favorites (%d): %v\n", application.Favorites.Count(), application.Favorites.IDs())

	case *carID != "":
		car, err := application.Catalog.GetCar(ctx, *carID)
		if err != nil {
			logger.Fatal("Car lookup failed", zap.Error(err))
		}
		printJSON(car)

	default:
		params := domain.SearchParams{
			Brand:     *brand,
			Model:     *model,
			Location:  *location,
			Page:      *page,
			Limit:     *limit,
			SortBy:    domain.SortKey(*sortBy),
			SortOrder: domain.SortOrder(*order),
		}
		if *minYear > 0 {
			params.MinYear = minYear
		}
		if *maxYear > 0 {
			params.MaxYear = maxYear
		}
		if *minPrice > 0 {
			params.MinPrice = minPrice
		}
		if *maxPrice > 0 {
			params.MaxPrice = maxPrice
		}

		result, err := application.Catalog.SearchCars(ctx, params)
		if err != nil {
			logger.Fatal("Car search failed", zap.Error(err))
		}
		fmt.Printf("total: %d\n", result.Total)
		printJSON(result.Cars)
	}
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
