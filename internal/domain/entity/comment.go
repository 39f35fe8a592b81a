package entity

import (
	"time"
)

// Comment is a text annotation attached to a video.
type Comment struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	VideoID   string    `bson:"video_id" json:"video_id"`
	Text      string    `bson:"text" json:"text"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
