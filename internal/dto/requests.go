package dto

import (
	"io"
)

// CreatePlaylistRequest is the payload for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdatePlaylistRequest carries partial playlist updates; only non-nil
// fields are applied.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateCommentRequest is the payload for adding a comment to a video.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// UpdateCommentRequest is the payload for editing a comment's text.
type UpdateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// PublishVideoRequest carries the metadata of a new video upload.
type PublishVideoRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
}

// UpdateVideoRequest carries partial video updates; only non-nil fields
// are applied.
type UpdateVideoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// MediaUpload is an in-flight media file handed to the storage collaborator.
type MediaUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}
