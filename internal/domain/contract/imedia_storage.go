package contract

import (
	"context"
	"io"
)

// IMediaStorage is the media-upload collaborator. It stores a media object
// and returns the durable URL the video record will reference.
type IMediaStorage interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}
