package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

// PlaylistUsecase handles the business logic for playlist management.
//
// Membership mutation (AddVideo/RemoveVideo) rides entirely on the
// repository's atomic set-style operations; this layer never reads the
// membership sequence and writes it back, so concurrent mutations on the
// same playlist cannot lose updates.
type PlaylistUsecase struct {
	playlistRepo contract.IPlaylistRepository
	videoRepo    contract.IVideoRepository
	uuidGen      contract.IUUIDGenerator
	validator    usecasecontract.IValidator
	logger       usecasecontract.IAppLogger
}

// NewPlaylistUsecase creates and returns a new PlaylistUsecase instance.
func NewPlaylistUsecase(
	playlistRepo contract.IPlaylistRepository,
	videoRepo contract.IVideoRepository,
	uuidGen contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *PlaylistUsecase {
	return &PlaylistUsecase{
		playlistRepo: playlistRepo,
		videoRepo:    videoRepo,
		uuidGen:      uuidGen,
		validator:    validator,
		logger:       logger,
	}
}

// CreatePlaylist creates an empty playlist owned by ownerID.
func (u *PlaylistUsecase) CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*entity.Playlist, error) {
	if err := u.validator.ValidatePlaylistName(req.Name); err != nil {
		return nil, err
	}

	now := time.Now()
	playlist := &entity.Playlist{
		ID:          u.uuidGen.NewUUID(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		VideoIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, fmt.Errorf("create playlist: %w", err)
	}
	u.logger.Infof("playlist %s created by user %s", playlist.ID, ownerID)
	return playlist, nil
}

// GetPlaylist retrieves a playlist by ID. Reads are not owner-gated.
func (u *PlaylistUsecase) GetPlaylist(ctx context.Context, playlistID string) (*entity.Playlist, error) {
	return u.playlistRepo.GetByID(ctx, playlistID)
}

// ListUserPlaylists lists all playlists owned by ownerID.
func (u *PlaylistUsecase) ListUserPlaylists(ctx context.Context, ownerID string) ([]*entity.Playlist, error) {
	return u.playlistRepo.ListByOwner(ctx, ownerID)
}

// AddVideo appends videoID to the playlist's membership.
//
// Membership mutation carries no ownership check; only rename and delete
// are owner-gated.
func (u *PlaylistUsecase) AddVideo(ctx context.Context, playlistID, videoID, actingUserID string) (*entity.Playlist, error) {
	playlist, err := u.playlistRepo.AddVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// RemoveVideo removes videoID from the playlist's membership. Removing an
// absent member is a no-op, not an error.
func (u *PlaylistUsecase) RemoveVideo(ctx context.Context, playlistID, videoID, actingUserID string) (*entity.Playlist, error) {
	playlist, err := u.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// UpdatePlaylist applies the supplied name/description changes. Owner only.
func (u *PlaylistUsecase) UpdatePlaylist(ctx context.Context, playlistID string, req dto.UpdatePlaylistRequest, actingUserID string) (*entity.Playlist, error) {
	playlist, err := u.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := Authorize(actingUserID, playlist.OwnerID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if err := u.validator.ValidatePlaylistName(*req.Name); err != nil {
			return nil, err
		}
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return playlist, nil
	}
	updates["updated_at"] = time.Now()

	return u.playlistRepo.UpdateFields(ctx, playlistID, updates)
}

// DeletePlaylist removes the playlist entirely. Owner only.
func (u *PlaylistUsecase) DeletePlaylist(ctx context.Context, playlistID, actingUserID string) error {
	playlist, err := u.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := Authorize(actingUserID, playlist.OwnerID); err != nil {
		return err
	}
	if err := u.playlistRepo.Delete(ctx, playlistID); err != nil {
		return err
	}
	u.logger.Infof("playlist %s deleted by user %s", playlistID, actingUserID)
	return nil
}
