package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// IReactionUseCase defines the reaction toggle operations.
type IReactionUseCase interface {
	Toggle(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (entity.ReactionState, error)
	ListLikedVideos(ctx context.Context, userID string) ([]*entity.Video, error)
	CountForTarget(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error)
}
