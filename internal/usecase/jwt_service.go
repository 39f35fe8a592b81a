package usecase

import (
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// JWTService is the authenticated-identity collaborator: it validates the
// access tokens issued by the platform's auth service and yields the acting
// user's identity.
type JWTService interface {
	GenerateAccessToken(userID string) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
