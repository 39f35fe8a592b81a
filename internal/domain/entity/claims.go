package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated identity extracted from an access token.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}
