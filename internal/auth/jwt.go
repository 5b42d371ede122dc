// Package auth verifies the bearer tokens issued by the identity provider.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nenadmarinkovic/sprachenwald/internal/domain"
)

// Identity is the caller described by a verified token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
	Email  string
	Name   string
}

// JWTManager verifies HS256 tokens and can mint them for tooling and tests.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewJWTManager creates a manager. secret must be at least 32 characters.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

type claims struct {
	jwt.RegisteredClaims
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// Issue signs a token for id.
func (m *JWTManager) Issue(id Identity) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:  string(id.Role),
		Email: id.Email,
		Name:  id.Name,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns its identity. A missing or unknown role
// claim is treated as a regular user.
func (m *JWTManager) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return Identity{}, errors.New("invalid token claims")
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject: %w", err)
	}

	role := domain.UserRole(c.Role)
	if !role.IsValid() {
		role = domain.UserRoleUser
	}
	return Identity{UserID: userID, Role: role, Email: c.Email, Name: c.Name}, nil
}

// ValidateToken adapts Verify to the HTTP auth middleware.
func (m *JWTManager) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	id, err := m.Verify(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id.UserID, string(id.Role), nil
}
