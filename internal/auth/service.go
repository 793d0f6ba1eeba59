package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "hackathon-registration-backend"

// TokenService validates access tokens issued by the identity subsystem. It can also
// mint tokens, which local tooling and tests use to act as a given student or admin.
type TokenService struct {
	secret []byte
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               string `json:"user_id" example:"9b2f3c1e-4d5a-4b6c-8d7e-0f1a2b3c4d5e"`
	Role                 Role   `json:"role" example:"student"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// Actor converts validated claims into the actor passed to core operations
func (c *AuthClaims) Actor() (Actor, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return Actor{}, fmt.Errorf("invalid user_id claim: %w", err)
	}
	if !c.Role.IsValid() {
		return Actor{}, fmt.Errorf("invalid role claim: %q", c.Role)
	}
	return Actor{ID: id, Role: c.Role}, nil
}

// NewTokenService creates a new token service
func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &TokenService{secret: []byte(secret)}, nil
}

// GenerateJWT creates a signed token for the actor
func (s *TokenService) GenerateJWT(actor Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID: actor.ID.String(),
		Role:   actor.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   actor.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *TokenService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
