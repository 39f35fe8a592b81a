package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type commentUseCase struct {
	commentRepo contract.ICommentRepository
	videoRepo   contract.IVideoRepository
	uuidGen     contract.IUUIDGenerator
	validator   usecasecontract.IValidator
}

// NewCommentUseCase creates a new comment usecase.
func NewCommentUseCase(
	commentRepo contract.ICommentRepository,
	videoRepo contract.IVideoRepository,
	uuidGen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
) usecasecontract.ICommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		uuidGen:     uuidGen,
		validator:   validator,
	}
}

// AddComment attaches a new comment to a video.
func (uc *commentUseCase) AddComment(ctx context.Context, videoID string, req dto.CreateCommentRequest) (*entity.Comment, error) {
	if _, err := uc.videoRepo.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	if err := uc.validator.ValidateCommentText(req.Text); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &entity.Comment{
		ID:        uc.uuidGen.NewUUID(),
		VideoID:   videoID,
		Text:      strings.TrimSpace(req.Text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

// UpdateComment replaces a comment's text. Comments carry no author
// ownership check.
func (uc *commentUseCase) UpdateComment(ctx context.Context, commentID string, req dto.UpdateCommentRequest) (*entity.Comment, error) {
	if err := uc.validator.ValidateCommentText(req.Text); err != nil {
		return nil, err
	}
	return uc.commentRepo.UpdateText(ctx, commentID, strings.TrimSpace(req.Text))
}

// DeleteComment removes a comment.
func (uc *commentUseCase) DeleteComment(ctx context.Context, commentID string) error {
	return uc.commentRepo.Delete(ctx, commentID)
}

// GetVideoComments returns a page of a video's comments, newest first.
func (uc *commentUseCase) GetVideoComments(ctx context.Context, videoID string, page, pageSize int) (*dto.CommentsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	pagination := contract.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
	comments, total, err := uc.commentRepo.ListByVideo(ctx, videoID, pagination)
	if err != nil {
		return nil, fmt.Errorf("get video comments: %w", err)
	}

	return &dto.CommentsResponse{
		Comments:   comments,
		Pagination: dto.NewPaginationMeta(page, pageSize, total),
	}, nil
}
