package usecase

import (
	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
)

// Authorize is the owner-only mutation gate. It is a pure comparison with no
// I/O; every owner-gated mutation path (playlist rename/delete, video
// update/delete/publish-toggle) goes through it.
func Authorize(actingUserID, ownerID string) error {
	if actingUserID != ownerID {
		return apperr.Forbidden("you are not allowed to modify this resource")
	}
	return nil
}
