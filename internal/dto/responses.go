package dto

import (
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// PaginationMeta describes the position of a page inside a listing.
type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ToggleReactionResponse reports the presence state after a toggle.
type ToggleReactionResponse struct {
	State entity.ReactionState `json:"state"`
}

// VideoResponse is a video record enriched with its like count.
type VideoResponse struct {
	Video     *entity.Video `json:"video"`
	LikeCount int64         `json:"like_count"`
}

// VideosResponse is a paginated page of videos.
type VideosResponse struct {
	Videos     []*entity.Video `json:"videos"`
	Pagination PaginationMeta  `json:"pagination"`
}

// CommentsResponse is a paginated page of comments.
type CommentsResponse struct {
	Comments   []*entity.Comment `json:"comments"`
	Pagination PaginationMeta    `json:"pagination"`
}

// NewPaginationMeta builds a PaginationMeta from page parameters and a total.
func NewPaginationMeta(page, pageSize int, total int64) PaginationMeta {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return PaginationMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
