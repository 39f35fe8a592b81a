package contract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// IReactionRepository defines the interface for reaction data persistence.
//
// Insert and DeleteByTriple are the atomic conditional primitives the toggle
// protocol is built on: Insert fails with a Conflict error when a reaction for
// the same (user, target_kind, target_id) triple already exists, and
// DeleteByTriple reports whether a reaction was actually removed.
type IReactionRepository interface {
	Insert(ctx context.Context, reaction *entity.Reaction) error
	DeleteByTriple(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error)
	ExistsByTriple(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (bool, error)
	ListByUserAndKind(ctx context.Context, userID string, kind entity.TargetKind) ([]*entity.Reaction, error)
	CountByTarget(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error)
	CountByTargets(ctx context.Context, kind entity.TargetKind, targetIDs []string) (int64, error)
}
