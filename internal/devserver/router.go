package devserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter wires the dev API routes. Reads are public; car mutations
// require a valid bearer token, matching the real service.
func NewRouter(h *Handler, jwtSecret string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(Logger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
	}))

	r.Post("/api/auth/login", h.HandleLogin)
	r.Post("/api/auth/register", h.HandleRegister)

	r.Get("/api/cars", h.HandleSearchCars)
	r.Get("/api/cars/{id}", h.HandleGetCar)

	r.Group(func(protected chi.Router) {
		protected.Use(JWTAuth(jwtSecret, logger))
		protected.Post("/api/cars", h.HandleCreateCar)
		protected.Put("/api/cars/{id}", h.HandleUpdateCar)
		protected.Delete("/api/cars/{id}", h.HandleDeleteCar)
	})

	return r
}
