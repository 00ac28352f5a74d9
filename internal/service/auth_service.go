package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"carwash-dashboard/internal/auth"
	"carwash-dashboard/internal/model"
)

// UserRepo is the slice of the user repository the auth and user services
// need.
type UserRepo interface {
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	List(ctx context.Context) ([]model.User, error)
	InsertAdminLog(ctx context.Context, log *model.AdminLog) error
}

type AuthService struct {
	users       UserRepo
	tokens      *auth.Manager
	revocations auth.RevocationStore
}

func NewAuthService(users UserRepo, tokens *auth.Manager, revocations auth.RevocationStore) *AuthService {
	return &AuthService{users: users, tokens: tokens, revocations: revocations}
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the presented token for the remainder of its lifetime.
// Tokens that no longer parse are still revoked for a full TTL so a
// tampered cookie cannot dodge the blacklist.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	ttl := s.tokens.TTL()
	if claims, err := s.tokens.Parse(token); err == nil && claims.ExpiresAt != nil {
		if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
			ttl = remaining
		}
	}

	return s.revocations.Revoke(ctx, token, ttl)
}

// CheckAuth returns the user record behind an authenticated principal.
func (s *AuthService) CheckAuth(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return nil, err
	}
	return user, nil
}
