package service

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/auth"
	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const (
	bcryptCost      = 10
	profileCacheTTL = 5 * time.Minute
)

// AuthService handles signup, login and profile fetch. The three operations
// are independent; no state is carried across calls.
type AuthService interface {
	CreateUser(ctx context.Context, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
	cache *cache.Client
}

// NewAuthService creates an authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{users: users, jwt: jwt, cache: cache}
}

// CreateUser registers an account under the normalized email. The returned
// record carries the bcrypt hash; redaction is left to API consumers.
// The existence check and the insert are not atomic.
func (s *authService) CreateUser(ctx context.Context, email, password string) (*model.User, error) {
	email = auth.NormalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal("AuthService.CreateUser", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("User exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperrors.Internal("AuthService.CreateUser", err)
	}

	user, err := s.users.Create(ctx, &model.User{Email: email, Password: string(hash)})
	if err != nil {
		return nil, apperrors.Internal("AuthService.CreateUser", err)
	}
	return user, nil
}

// Login verifies credentials against the stored hash and issues a signed
// token embedding the account id.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = auth.NormalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.Internal("AuthService.Login", err)
	}
	if user == nil {
		return "", apperrors.NotFound("User doesn't exist")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperrors.Authentication("Invalid Password supplied!")
	}

	token, err := s.jwt.Generate(user.ID)
	if err != nil {
		return "", apperrors.Internal("AuthService.Login", err)
	}
	return token, nil
}

// Profile returns the account behind a token's id. Accounts never change
// after signup, so cached profiles cannot go stale.
func (s *authService) Profile(ctx context.Context, userID string) (*model.User, error) {
	key := "user:" + userID
	if data := s.cache.Get(ctx, key); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("AuthService.Profile", err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User doesn't exist")
	}

	if payload, err := json.Marshal(user); err == nil {
		s.cache.Set(ctx, key, payload, profileCacheTTL)
	}
	return user, nil
}
