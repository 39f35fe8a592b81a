package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type dashboardUseCase struct {
	videoRepo    contract.IVideoRepository
	reactionRepo contract.IReactionRepository
	videoCache   usecasecontract.IVideoCache
}

// NewDashboardUseCase creates a new dashboard usecase. The cache is
// optional; pass nil to always compute stats from the store.
func NewDashboardUseCase(videoRepo contract.IVideoRepository, reactionRepo contract.IReactionRepository, videoCache usecasecontract.IVideoCache) usecasecontract.IDashboardUseCase {
	return &dashboardUseCase{
		videoRepo:    videoRepo,
		reactionRepo: reactionRepo,
		videoCache:   videoCache,
	}
}

// GetChannelStats aggregates video, view and like totals for a channel.
func (uc *dashboardUseCase) GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	if uc.videoCache != nil {
		if stats, ok, err := uc.videoCache.GetChannelStats(ctx, channelID); err == nil && ok {
			return stats, nil
		}
	}

	videos, err := uc.videoRepo.AllByOwner(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("get channel videos: %w", err)
	}

	var totalViews int64
	videoIDs := make([]string, len(videos))
	for i, video := range videos {
		totalViews += video.Views
		videoIDs[i] = video.ID
	}

	totalLikes, err := uc.reactionRepo.CountByTargets(ctx, entity.TargetKindVideo, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("count channel likes: %w", err)
	}

	stats := &entity.ChannelStats{
		TotalVideos: int64(len(videos)),
		TotalViews:  totalViews,
		TotalLikes:  totalLikes,
	}
	if uc.videoCache != nil {
		_ = uc.videoCache.SetChannelStats(ctx, channelID, stats)
	}
	return stats, nil
}

// GetChannelVideos returns a page of a channel's videos, newest first.
func (uc *dashboardUseCase) GetChannelVideos(ctx context.Context, channelID string, page, pageSize int) (*dto.VideosResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	videos, total, err := uc.videoRepo.ListByOwner(ctx, channelID, contract.Pagination{Page: page, PageSize: pageSize})
	if err != nil {
		return nil, fmt.Errorf("get channel videos: %w", err)
	}
	return &dto.VideosResponse{
		Videos:     videos,
		Pagination: dto.NewPaginationMeta(page, pageSize, total),
	}, nil
}
