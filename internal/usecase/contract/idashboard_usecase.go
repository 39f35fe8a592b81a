package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
)

// IDashboardUseCase defines channel-level aggregate views.
type IDashboardUseCase interface {
	GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID string, page, pageSize int) (*dto.VideosResponse, error)
}
