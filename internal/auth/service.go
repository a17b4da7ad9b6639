package auth

import (
	"context"
	"fmt"
	"time"

	apperrors "agenthub-backend/internal/errors"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -source=service.go -destination=../mocks/auth_mocks.go -package=mocks

// Claims are the JWT claims carried by an access token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AdminStatus is the result of an admin-privilege check.
type AdminStatus struct {
	IsAdmin bool   `json:"is_admin"`
	Role    string `json:"role"`
}

// Authorizer answers admin-privilege checks for a user. The action layer
// treats it as a black box and branches only on IsAdmin.
type Authorizer interface {
	CheckAdminStatus(ctx context.Context, userID string) (*AdminStatus, error)
}

// Service validates access tokens and answers authorization checks against
// the user profile store.
type Service struct {
	secret []byte
	store  repository.Store
}

// NewService creates an auth service
func NewService(secret string, store repository.Store) *Service {
	return &Service{secret: []byte(secret), store: store}
}

// GenerateToken issues a signed access token. Used by development tooling and
// tests; production tokens come from the identity provider.
func (s *Service) GenerateToken(userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and verifies an access token.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token missing user_id claim")
	}
	return claims, nil
}

// CheckAdminStatus reports whether the user has admin privilege. Admin flag
// and role come from the user profile document.
func (s *Service) CheckAdminStatus(ctx context.Context, userID string) (*AdminStatus, error) {
	var profile models.UserProfile
	if err := s.store.Get(ctx, keys.UserProfile(userID), &profile); err != nil {
		if apperrors.IsNotFound(err) {
			return &AdminStatus{IsAdmin: false, Role: ""}, nil
		}
		return nil, fmt.Errorf("failed to load profile for admin check: %w", err)
	}

	role := "member"
	if profile.IsAdmin {
		role = "admin"
	}
	return &AdminStatus{IsAdmin: profile.IsAdmin, Role: role}, nil
}
