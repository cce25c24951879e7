package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// Claims represents the session token claims.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// managerImpl implements scope.Manager over HS256 tokens.
type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}
