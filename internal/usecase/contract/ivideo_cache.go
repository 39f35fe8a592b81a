package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// IVideoCache defines caching operations for video detail and channel stats.
type IVideoCache interface {
	// Detail (by video id)
	GetVideoByID(ctx context.Context, videoID string) (*entity.Video, bool, error)
	SetVideoByID(ctx context.Context, videoID string, video *entity.Video) error
	InvalidateVideo(ctx context.Context, videoID string) error

	// Channel stats
	GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, bool, error)
	SetChannelStats(ctx context.Context, channelID string, stats *entity.ChannelStats) error
	InvalidateChannelStats(ctx context.Context, channelID string) error
}
