package entity

import (
	"time"
)

// Video is a published piece of content owned by the uploading channel.
// The engagement core reads OwnerID for authorization and stores references
// to ID; the media files themselves live in object storage.
type Video struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	OwnerID      string    `bson:"owner_id" json:"owner_id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	VideoURL     string    `bson:"video_url" json:"video_url"`
	ThumbnailURL string    `bson:"thumbnail_url" json:"thumbnail_url"`
	Views        int64     `bson:"views" json:"views"`
	IsPublished  bool      `bson:"is_published" json:"is_published"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// ChannelStats aggregates engagement numbers over a channel's videos.
type ChannelStats struct {
	TotalVideos int64 `json:"total_videos"`
	TotalViews  int64 `json:"total_views"`
	TotalLikes  int64 `json:"total_likes"`
}
