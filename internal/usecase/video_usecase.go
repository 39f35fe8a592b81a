package usecase

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

// VideoUseCaseImpl implements the video operations around the engagement
// core: publishing, listing, owner-gated mutation.
type VideoUseCaseImpl struct {
	videoRepo    contract.IVideoRepository
	reactionRepo contract.IReactionRepository
	mediaStorage contract.IMediaStorage
	uuidGen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
	videoCache   usecasecontract.IVideoCache
}

// NewVideoUseCase creates a new video usecase.
func NewVideoUseCase(
	videoRepo contract.IVideoRepository,
	reactionRepo contract.IReactionRepository,
	mediaStorage contract.IMediaStorage,
	uuidGen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *VideoUseCaseImpl {
	return &VideoUseCaseImpl{
		videoRepo:    videoRepo,
		reactionRepo: reactionRepo,
		mediaStorage: mediaStorage,
		uuidGen:      uuidGen,
		validator:    validator,
		logger:       logger,
	}
}

// SetVideoCache wires an optional cache store for video detail reads.
func (u *VideoUseCaseImpl) SetVideoCache(cache usecasecontract.IVideoCache) {
	u.videoCache = cache
}

// PublishVideo stores the media files and creates the video record owned by
// the acting user.
func (u *VideoUseCaseImpl) PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, video dto.MediaUpload, thumbnail *dto.MediaUpload) (*entity.Video, error) {
	if err := u.validator.ValidateVideoTitle(req.Title); err != nil {
		return nil, err
	}
	if u.mediaStorage == nil {
		return nil, apperr.Unavailable(nil, "media storage is not configured")
	}

	videoID := u.uuidGen.NewUUID()
	videoURL, err := u.mediaStorage.Upload(ctx, "videos/"+videoID+path.Ext(video.Filename), video.Reader, video.Size, video.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload video file: %w", err)
	}

	thumbnailURL := ""
	if thumbnail != nil {
		thumbnailURL, err = u.mediaStorage.Upload(ctx, "thumbnails/"+videoID+path.Ext(thumbnail.Filename), thumbnail.Reader, thumbnail.Size, thumbnail.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload thumbnail: %w", err)
		}
	}

	now := time.Now()
	record := &entity.Video{
		ID:           videoID,
		OwnerID:      ownerID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     videoURL,
		ThumbnailURL: thumbnailURL,
		IsPublished:  true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.videoRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create video record: %w", err)
	}
	u.logger.Infof("video %s published by user %s", videoID, ownerID)
	u.invalidate(ctx, record)
	return record, nil
}

// GetVideo returns a video with its current like count.
func (u *VideoUseCaseImpl) GetVideo(ctx context.Context, videoID string) (*dto.VideoResponse, error) {
	var video *entity.Video
	if u.videoCache != nil {
		if cached, ok, err := u.videoCache.GetVideoByID(ctx, videoID); err == nil && ok {
			video = cached
		}
	}
	if video == nil {
		fetched, err := u.videoRepo.GetByID(ctx, videoID)
		if err != nil {
			return nil, err
		}
		video = fetched
		if u.videoCache != nil {
			_ = u.videoCache.SetVideoByID(ctx, videoID, video)
		}
	}

	likes, err := u.reactionRepo.CountByTarget(ctx, entity.TargetKindVideo, videoID)
	if err != nil {
		return nil, fmt.Errorf("count video likes: %w", err)
	}
	return &dto.VideoResponse{Video: video, LikeCount: likes}, nil
}

// ListVideos returns a filtered, sorted, paginated page of published videos.
func (u *VideoUseCaseImpl) ListVideos(ctx context.Context, opts *contract.VideoFilterOptions) (*dto.VideosResponse, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > 100 {
		opts.PageSize = 10
	}

	videos, total, err := u.videoRepo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return &dto.VideosResponse{
		Videos:     videos,
		Pagination: dto.NewPaginationMeta(opts.Page, opts.PageSize, total),
	}, nil
}

// UpdateVideo applies the supplied title/description changes. Owner only.
func (u *VideoUseCaseImpl) UpdateVideo(ctx context.Context, videoID string, req dto.UpdateVideoRequest, actingUserID string) (*entity.Video, error) {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actingUserID, video.OwnerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if err := u.validator.ValidateVideoTitle(*req.Title); err != nil {
			return nil, err
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return video, nil
	}
	updates["updated_at"] = time.Now()

	updated, err := u.videoRepo.UpdateFields(ctx, videoID, updates)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, updated)
	return updated, nil
}

// DeleteVideo removes the video record. Owner only.
func (u *VideoUseCaseImpl) DeleteVideo(ctx context.Context, videoID, actingUserID string) error {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return err
	}
	if err := Authorize(actingUserID, video.OwnerID); err != nil {
		return err
	}
	if err := u.videoRepo.Delete(ctx, videoID); err != nil {
		return err
	}
	u.logger.Infof("video %s deleted by user %s", videoID, actingUserID)
	u.invalidate(ctx, video)
	return nil
}

// TogglePublishStatus flips the video's published flag. Owner only.
func (u *VideoUseCaseImpl) TogglePublishStatus(ctx context.Context, videoID, actingUserID string) (*entity.Video, error) {
	video, err := u.videoRepo.GetByID(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actingUserID, video.OwnerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"is_published": !video.IsPublished,
		"updated_at":   time.Now(),
	}
	updated, err := u.videoRepo.UpdateFields(ctx, videoID, updates)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx, updated)
	return updated, nil
}

func (u *VideoUseCaseImpl) invalidate(ctx context.Context, video *entity.Video) {
	if u.videoCache == nil {
		return
	}
	_ = u.videoCache.InvalidateVideo(ctx, video.ID)
	_ = u.videoCache.InvalidateChannelStats(ctx, video.OwnerID)
}
