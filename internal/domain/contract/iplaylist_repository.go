package contract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// IPlaylistRepository defines the interface for playlist data persistence.
//
// AddVideo and RemoveVideo are atomic set-style field operations: membership
// mutation happens in a single store call so concurrent mutations on the same
// playlist never lose an update. AddVideo fails with a Conflict error when the
// video is already a member; RemoveVideo is an idempotent no-op for absent
// members.
type IPlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, playlistID string) (*entity.Playlist, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID string) (*entity.Playlist, error)
	UpdateFields(ctx context.Context, playlistID string, updates map[string]interface{}) (*entity.Playlist, error)
	Delete(ctx context.Context, playlistID string) error
}
