package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
)

// IVideoUseCase defines the content-upload collaborator surface the
// engagement core exposes over videos.
type IVideoUseCase interface {
	PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, video dto.MediaUpload, thumbnail *dto.MediaUpload) (*entity.Video, error)
	GetVideo(ctx context.Context, videoID string) (*dto.VideoResponse, error)
	ListVideos(ctx context.Context, opts *contract.VideoFilterOptions) (*dto.VideosResponse, error)
	UpdateVideo(ctx context.Context, videoID string, req dto.UpdateVideoRequest, actingUserID string) (*entity.Video, error)
	DeleteVideo(ctx context.Context, videoID, actingUserID string) error
	TogglePublishStatus(ctx context.Context, videoID, actingUserID string) (*entity.Video, error)
}
