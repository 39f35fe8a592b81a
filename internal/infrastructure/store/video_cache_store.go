package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// VideoCacheStore caches video detail documents and channel-stats payloads
// in Redis. Both are invalidated whenever a video mutates.
type VideoCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	statsTTL  time.Duration
}

// NewVideoCacheStore creates a new VideoCacheStore.
func NewVideoCacheStore(rdb *redis.Client) *VideoCacheStore {
	return &VideoCacheStore{
		rdb:       rdb,
		detailTTL: 60 * time.Minute,
		statsTTL:  10 * time.Minute,
	}
}

func videoDetailKey(videoID string) string { return fmt.Sprintf("video:id:%s", videoID) }
func channelStatsKey(channelID string) string {
	return fmt.Sprintf("channel:stats:%s", channelID)
}

// GetVideoByID returns a cached video, if present.
func (c *VideoCacheStore) GetVideoByID(ctx context.Context, videoID string) (*entity.Video, bool, error) {
	b, err := c.rdb.Get(ctx, videoDetailKey(videoID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var video entity.Video
	if err := json.Unmarshal(b, &video); err != nil {
		return nil, false, nil
	}
	return &video, true, nil
}

// SetVideoByID caches a video detail document.
func (c *VideoCacheStore) SetVideoByID(ctx context.Context, videoID string, video *entity.Video) error {
	data, err := json.Marshal(video)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, videoDetailKey(videoID), data, c.detailTTL).Err()
}

// InvalidateVideo drops the cached detail document for a video.
func (c *VideoCacheStore) InvalidateVideo(ctx context.Context, videoID string) error {
	return c.rdb.Del(ctx, videoDetailKey(videoID)).Err()
}

// GetChannelStats returns cached channel stats, if present.
func (c *VideoCacheStore) GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, bool, error) {
	b, err := c.rdb.Get(ctx, channelStatsKey(channelID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var stats entity.ChannelStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, false, nil
	}
	return &stats, true, nil
}

// SetChannelStats caches a channel-stats payload.
func (c *VideoCacheStore) SetChannelStats(ctx context.Context, channelID string, stats *entity.ChannelStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, channelStatsKey(channelID), data, c.statsTTL).Err()
}

// InvalidateChannelStats drops the cached stats for a channel.
func (c *VideoCacheStore) InvalidateChannelStats(ctx context.Context, channelID string) error {
	return c.rdb.Del(ctx, channelStatsKey(channelID)).Err()
}
