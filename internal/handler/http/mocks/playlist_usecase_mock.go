package mocks

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

// MockPlaylistUsecase is a mock implementation of the IPlaylistUseCase interface
type MockPlaylistUsecase struct {
	// Control mock behavior
	ShouldFailCreate bool
	ShouldFailGet    bool
	AddVideoConflict bool
	ShouldFailUpdate bool
	UpdateForbidden  bool
	DeleteForbidden  bool

	// Return values
	MockPlaylist entity.Playlist
}

var _ usecasecontract.IPlaylistUseCase = (*MockPlaylistUsecase)(nil)

func NewMockPlaylistUsecase() *MockPlaylistUsecase {
	now := time.Now()
	return &MockPlaylistUsecase{
		MockPlaylist: entity.Playlist{
			ID:        "mock-playlist-id",
			OwnerID:   "mock-owner-id",
			Name:      "Watch Later",
			VideoIDs:  []string{"mock-video-id"},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (m *MockPlaylistUsecase) CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*entity.Playlist, error) {
	if m.ShouldFailCreate {
		return nil, apperr.Validation("playlist name is required")
	}
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) GetPlaylist(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	if m.ShouldFailGet {
		return nil, apperr.NotFound("playlist not found")
	}
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) ListUserPlaylists(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	return []*entity.Playlist{&m.MockPlaylist}, nil
}

func (m *MockPlaylistUsecase) AddVideo(ctx context.Context, playlistID, videoID, actingUserID string) (*entity.Playlist, error) {
	if m.AddVideoConflict {
		return nil, apperr.Conflict("video is already in the playlist")
	}
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID, actingUserID string) (*entity.Playlist, error) {
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) UpdatePlaylist(ctx context.Context, playlistID string, req dto.UpdatePlaylistRequest, actingUserID string) (*entity.Playlist, error) {
	if m.UpdateForbidden {
		return nil, apperr.Forbidden("you are not allowed to modify this resource")
	}
	if m.ShouldFailUpdate {
		return nil, apperr.NotFound("playlist not found")
	}
	return &m.MockPlaylist, nil
}

func (m *MockPlaylistUsecase) DeletePlaylist(ctx context.Context, playlistID, actingUserID string) error {
	if m.DeleteForbidden {
		return apperr.Forbidden("you are not allowed to modify this resource")
	}
	return nil
}
