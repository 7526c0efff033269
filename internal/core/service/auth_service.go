package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockpile/inventory-system/internal/core/domain"
	"github.com/stockpile/inventory-system/internal/core/ports"
)

// AuthService implements login against the seeded credential store.
type AuthService struct {
	store     ports.CredentialStore
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(store ports.CredentialStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies the password and returns a signed token. Unknown users and
// bad passwords are indistinguishable to the caller.
func (s *AuthService) Login(_ context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	cred, ok := s.store.Find(username)
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.generateToken(cred)
}

func (s *AuthService) generateToken(cred domain.Credential) (string, error) {
	claims := jwt.MapClaims{
		"sub":  cred.Username,
		"role": cred.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
