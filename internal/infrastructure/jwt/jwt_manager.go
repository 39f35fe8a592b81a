package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/usecase"
)

// JWTManager signs and verifies HMAC access tokens carrying the acting
// user's identity.
type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
}

// NewJWTManager creates a new JWTManager.
func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

// GenerateAccessToken issues an access token for a user.
func (m *JWTManager) GenerateAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// ParseAccessToken validates an access token and returns the claims.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	var registered jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &registered, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid access token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid access token")
	}
	return &entity.Claims{
		UserID:           registered.Subject,
		RegisteredClaims: registered,
	}, nil
}

// Ensure JWTManager implements the usecase.JWTService interface
var _ usecase.JWTService = (*JWTManager)(nil)
