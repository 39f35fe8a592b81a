package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
)

// ICommentUseCase defines the comment lifecycle operations.
type ICommentUseCase interface {
	AddComment(ctx context.Context, videoID string, req dto.CreateCommentRequest) (*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	GetVideoComments(ctx context.Context, videoID string, page, pageSize int) (*dto.CommentsResponse, error)
}
