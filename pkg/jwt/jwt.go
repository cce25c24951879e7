package jwt

import (
	"fmt"
	"strconv"
	"time"

	"broadcast-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultTTL = 2 * time.Hour

// New creates a new JWT manager implementing scope.Manager.
func New(cfg Config) scope.Manager {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
	}
}

// CreateToken signs a new HS256 token for the given payload. A fresh JTI is
// generated for every token so re-login always invalidates the prior session
// identity.
func (m *managerImpl) CreateToken(p scope.Payload) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  p.Name,
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(p.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify parses and validates a token, returning its payload.
func (m *managerImpl) Verify(tokenString string) (scope.Payload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return scope.Payload{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return scope.Payload{}, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return scope.Payload{}, fmt.Errorf("invalid claims type")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return scope.Payload{}, fmt.Errorf("invalid subject claim: %w", err)
	}

	p := scope.Payload{
		UserID: userID,
		Name:   claims.Name,
		Email:  claims.Email,
		JTI:    claims.ID,
		Issuer: claims.Issuer,
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Unix()
	}
	return p, nil
}
