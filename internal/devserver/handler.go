package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/SerChertoff/Favorite-car/internal/domain"
)

// Handler обрабатывает запросы dev-сервера.
type Handler struct {
	store     *memStore
	logger    *zap.Logger
	jwtSecret string
	tokenTTL  time.Duration
}

func NewHandler(logger *zap.Logger, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		store:     newMemStore(),
		logger:    logger,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (h *Handler) HandleSearchCars(w http.ResponseWriter, r *http.Request) {
	params := parseSearchParams(r)
	writeJSON(w, http.StatusOK, h.store.search(params))
}

func (h *Handler) HandleGetCar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	car, ok := h.store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *Handler) HandleCreateCar(w http.ResponseWriter, r *http.Request) {
	var input domain.NewCarInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Error("Invalid request body for CreateCar", zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Brand == "" || input.Model == "" {
		writeError(w, http.StatusBadRequest, "brand and model are required")
		return
	}

	seller, ok := h.sellerFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unknown seller")
		return
	}
	writeJSON(w, http.StatusCreated, h.store.create(input, *seller))
}

func (h *Handler) HandleUpdateCar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var update domain.CarUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.logger.Error("Invalid request body for UpdateCar", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	car, ok := h.store.update(id, update)
	if !ok {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *Handler) HandleDeleteCar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.delete(id) {
		writeError(w, http.StatusNotFound, "car not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	acc, ok := h.store.findAccount(req.Email)
	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(req.Password)) != nil {
		h.logger.Warn("Failed login attempt", zap.String("email", req.Email))
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	h.respondWithSession(w, acc.user)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input domain.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Email == "" || input.Password == "" || input.Name == "" {
		writeError(w, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, ok := h.store.createAccount(input)
	if !ok {
		writeError(w, http.StatusConflict, "email is already registered")
		return
	}
	h.respondWithSession(w, *user)
}

func (h *Handler) respondWithSession(w http.ResponseWriter, user domain.User) {
	token, err := issueToken(user.ID, h.jwtSecret, h.tokenTTL)
	if err != nil {
		h.logger.Error("Failed to sign token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, domain.Session{Token: token, User: user})
}

func (h *Handler) sellerFromContext(r *http.Request) (*domain.User, bool) {
	userID, ok := r.Context().Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return nil, false
	}
	return h.store.findUserByID(userID)
}

func parseSearchParams(r *http.Request) domain.SearchParams {
	q := r.URL.Query()
	params := domain.SearchParams{
		Brand:    q.Get("brand"),
		Model:    q.Get("model"),
		Location: q.Get("location"),
	}
	if v, err := strconv.Atoi(q.Get("minYear")); err == nil {
		params.MinYear = &v
	}
	if v, err := strconv.Atoi(q.Get("maxYear")); err == nil {
		params.MaxYear = &v
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		params.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		params.MaxPrice = &v
	}
	if v := q.Get("fuelType"); v != "" {
		fuel := domain.FuelType(v)
		params.FuelType = &fuel
	}
	if v := q.Get("transmission"); v != "" {
		tr := domain.Transmission(v)
		params.Transmission = &tr
	}
	if v := q.Get("bodyType"); v != "" {
		body := domain.BodyType(v)
		params.BodyType = &body
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		params.Page = v
	}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		params.Limit = v
	}
	params.SortBy = domain.SortKey(q.Get("sortBy"))
	params.SortOrder = domain.SortOrder(q.Get("sortOrder"))
	return params
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
