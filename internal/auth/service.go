// Package auth issues and verifies bearer tokens for registered users.
// Checkout never depends on this package directly; it only receives the
// Identity the HTTP layer resolved, if any.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/WGledhill94/loadLab/internal/domain"
	"github.com/WGledhill94/loadLab/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const bcryptCost = 10

type Claims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Service struct {
	users    *store.Collection[domain.User]
	secret   []byte
	tokenTTL time.Duration
}

func NewService(users *store.Collection[domain.User], secret string, tokenTTL time.Duration) *Service {
	return &Service{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Register creates an account and returns a signed token for it. The
// duplicate-email check and the insert are a single atomic step.
func (s *Service) Register(email, password, name string) (string, domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if ok := s.users.AppendIf(user, func(u domain.User) bool { return u.Email == email }); !ok {
		return "", domain.User{}, ErrUserExists
	}

	token, err := s.sign(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Login verifies credentials and returns a fresh token.
func (s *Service) Login(email, password string) (string, domain.User, error) {
	user, ok := s.users.Find(func(u domain.User) bool { return u.Email == email })
	if !ok {
		return "", domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.sign(user)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, user, nil
}

// Verify resolves a bearer token to the identity it was signed for.
// Side-effect free; callers treat any error as "no identity".
func (s *Service) Verify(token string) (*domain.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	user, ok := s.users.Find(func(u domain.User) bool { return u.ID == claims.UserID })
	if !ok {
		return nil, ErrInvalidToken
	}
	return &domain.Identity{ID: user.ID, Email: user.Email, Name: user.Name}, nil
}

func (s *Service) sign(user domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
