package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"facilityhub.dev/facility-service/pkg/models"
)

const DefaultTokenTTL = 72 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 bearer token carrying the user ID and role.
// Role is re-checked against the database on every request, so a stale role
// claim only widens the middleware gate, never the capability check.
func GenerateToken(secret []byte, user *models.User, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}

	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    "facility-service",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
