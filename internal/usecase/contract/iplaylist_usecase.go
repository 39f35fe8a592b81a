package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
)

// IPlaylistUseCase defines playlist management operations.
type IPlaylistUseCase interface {
	CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*entity.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (*entity.Playlist, error)
	ListUserPlaylists(ctx context.Context, ownerID string) ([]*entity.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID, actingUserID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actingUserID string) (*entity.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID string, req dto.UpdatePlaylistRequest, actingUserID string) (*entity.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, actingUserID string) error
}
