package contract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// ICommentRepository defines the interface for comment data persistence.
type ICommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, commentID string) (*entity.Comment, error)
	UpdateText(ctx context.Context, commentID, text string) (*entity.Comment, error)
	Delete(ctx context.Context, commentID string) error
	ListByVideo(ctx context.Context, videoID string, pagination Pagination) ([]*entity.Comment, int64, error)
}
