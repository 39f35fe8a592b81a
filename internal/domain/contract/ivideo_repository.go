package contract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// VideoFilterOptions narrows and orders a public video listing.
type VideoFilterOptions struct {
	Query     string // case-insensitive title match
	OwnerID   string
	SortBy    string // created_at | views | title
	SortOrder string // asc | desc
	Page      int
	PageSize  int
}

// IVideoRepository defines the interface for video data persistence.
type IVideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, videoID string) (*entity.Video, error)
	List(ctx context.Context, opts *VideoFilterOptions) ([]*entity.Video, int64, error)
	ListByOwner(ctx context.Context, ownerID string, pagination Pagination) ([]*entity.Video, int64, error)
	AllByOwner(ctx context.Context, ownerID string) ([]*entity.Video, error)
	UpdateFields(ctx context.Context, videoID string, updates map[string]interface{}) (*entity.Video, error)
	Delete(ctx context.Context, videoID string) error
}
