package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/SerChertoff/Favorite-car/internal/adapter/storage"
	"github.com/SerChertoff/Favorite-car/internal/domain"
)

// AuthUsecase holds the current session. Token and user are one unit: they
// are set together, cleared together and persisted together, so no caller
// can ever observe a token without its user.
type AuthUsecase struct {
	api    domain.CarAPI
	store  storage.Store
	logger *zap.Logger

	mu      sync.RWMutex
	session *domain.Session
}

// NewAuthUsecase restores a persisted session if there is one. A persisted
// user without a token is ignored, as is a token whose JWT expiry has
// already passed. Corrupt stored values count as absent.
func NewAuthUsecase(api domain.CarAPI, store storage.Store, logger *zap.Logger) *AuthUsecase {
	uc := &AuthUsecase{
		api:    api,
		store:  store,
		logger: logger,
	}
	uc.loadFromStore(context.Background())
	return uc
}

func (uc *AuthUsecase) loadFromStore(ctx context.Context) {
	token, err := uc.store.Get(ctx, storage.KeyAuthToken)
	if err != nil || token == "" {
		return
	}

	userJSON, err := uc.store.Get(ctx, storage.KeyUser)
	if err != nil || userJSON == "" {
		return
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		uc.logger.Warn("Stored user profile is corrupt, ignoring", zap.Error(err))
		return
	}

	if tokenExpired(token) {
		uc.logger.Info("Stored session token has expired, discarding session")
		uc.clearStore(ctx)
		return
	}

	uc.session = &domain.Session{Token: token, User: user}
	uc.logger.Info("Restored session from store", zap.String("user_id", user.ID))
}

func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	session, err := uc.api.Login(ctx, email, password)
	if err != nil {
		uc.logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	uc.setSession(ctx, session)
	uc.logger.Info("User logged in", zap.String("user_id", session.User.ID))
	user := session.User
	return &user, nil
}

func (uc *AuthUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	session, err := uc.api.Register(ctx, input)
	if err != nil {
		uc.logger.Warn("Registration failed", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}
	uc.setSession(ctx, session)
	uc.logger.Info("User registered", zap.String("user_id", session.User.ID))
	user := session.User
	return &user, nil
}

func (uc *AuthUsecase) Logout(ctx context.Context) {
	uc.mu.Lock()
	uc.session = nil
	uc.mu.Unlock()
	uc.clearStore(ctx)
	uc.logger.Info("User logged out")
}

func (uc *AuthUsecase) IsAuthenticated() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session != nil && uc.session.Token != "" && uc.session.User.ID != ""
}

// Token yields the current session token, or "" when logged out. Passed to
// the API client as its TokenSource.
func (uc *AuthUsecase) Token() string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.session == nil {
		return ""
	}
	return uc.session.Token
}

func (uc *AuthUsecase) CurrentUser() (*domain.User, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.session == nil {
		return nil, false
	}
	user := uc.session.User
	return &user, true
}

func (uc *AuthUsecase) setSession(ctx context.Context, session *domain.Session) {
	uc.mu.Lock()
	uc.session = session
	uc.mu.Unlock()

	userJSON, err := json.Marshal(session.User)
	if err != nil {
		uc.logger.Error("Failed to encode user for persistence", zap.Error(err))
		return
	}
	if err := uc.store.Set(ctx, storage.KeyAuthToken, session.Token); err != nil {
		uc.logger.Error("Failed to persist auth token", zap.Error(err))
	}
	if err := uc.store.Set(ctx, storage.KeyUser, string(userJSON)); err != nil {
		uc.logger.Error("Failed to persist user profile", zap.Error(err))
	}
}

func (uc *AuthUsecase) clearStore(ctx context.Context) {
	if err := uc.store.Remove(ctx, storage.KeyAuthToken); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		uc.logger.Error("Failed to remove auth token from store", zap.Error(err))
	}
	if err := uc.store.Remove(ctx, storage.KeyUser); err != nil && !errors.Is(err, storage.ErrKeyNotFound) {
		uc.logger.Error("Failed to remove user profile from store", zap.Error(err))
	}
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// Opaque (non-JWT) tokens are assumed valid; the server is the judge then.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
