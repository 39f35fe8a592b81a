package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/validator"
)

func newPlaylistUsecaseForTest() (*PlaylistUsecase, *fakePlaylistRepo) {
	playlistRepo := newFakePlaylistRepo()
	videoRepo := newFakeVideoRepo()
	uc := NewPlaylistUsecase(playlistRepo, videoRepo, uuidgen.NewGenerator(), validator.NewValidator(), logger.NewStdLogger())
	return uc, playlistRepo
}

func TestCreatePlaylist(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "  Watch Later  ", Description: "queue"})
	require.NoError(t, err)
	assert.Equal(t, "Watch Later", playlist.Name)
	assert.Equal(t, "owner-1", playlist.OwnerID)
	assert.NotEmpty(t, playlist.ID)
	assert.Empty(t, playlist.VideoIDs)
}

func TestCreatePlaylistRejectsBlankName(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()

	_, err := uc.CreatePlaylist(context.Background(), "owner-1", dto.CreatePlaylistRequest{Name: "   "})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestAddVideoDuplicateIsConflict(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "Mix"})
	require.NoError(t, err)

	updated, err := uc.AddVideo(ctx, playlist.ID, "video-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"video-1"}, updated.VideoIDs)

	_, err = uc.AddVideo(ctx, playlist.ID, "video-1", "owner-1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	// A failed duplicate add must not corrupt membership.
	got, err := uc.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"video-1"}, got.VideoIDs)
}

func TestAddVideoToMissingPlaylist(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()

	_, err := uc.AddVideo(context.Background(), "nope", "video-1", "owner-1")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestRemoveVideoIsIdempotent(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "Mix"})
	require.NoError(t, err)
	_, err = uc.AddVideo(ctx, playlist.ID, "video-1", "owner-1")
	require.NoError(t, err)

	updated, err := uc.RemoveVideo(ctx, playlist.ID, "video-1", "owner-1")
	require.NoError(t, err)
	assert.Empty(t, updated.VideoIDs)

	// Removing again is a no-op, not an error.
	updated, err = uc.RemoveVideo(ctx, playlist.ID, "video-1", "owner-1")
	require.NoError(t, err)
	assert.Empty(t, updated.VideoIDs)
}

func TestMembershipMutationIsNotOwnerGated(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "Mix"})
	require.NoError(t, err)

	_, err = uc.AddVideo(ctx, playlist.ID, "video-1", "someone-else")
	require.NoError(t, err)
	_, err = uc.RemoveVideo(ctx, playlist.ID, "video-1", "someone-else")
	require.NoError(t, err)
}

func TestUpdatePlaylistOwnerOnly(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "Mix"})
	require.NoError(t, err)

	name := "Renamed"
	_, err = uc.UpdatePlaylist(ctx, playlist.ID, dto.UpdatePlaylistRequest{Name: &name}, "intruder")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	updated, err := uc.UpdatePlaylist(ctx, playlist.ID, dto.UpdatePlaylistRequest{Name: &name}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestDeletePlaylistOwnerOnly(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "Mix"})
	require.NoError(t, err)

	err = uc.DeletePlaylist(ctx, playlist.ID, "intruder")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	require.NoError(t, uc.DeletePlaylist(ctx, playlist.ID, "owner-1"))

	_, err = uc.GetPlaylist(ctx, playlist.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestConcurrentAddsLoseNoUpdate(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "Mix"})
	require.NoError(t, err)

	const adds = 30
	errs := make([]error, adds)

	var wg sync.WaitGroup
	for i := 0; i < adds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.AddVideo(ctx, playlist.ID, fmt.Sprintf("video-%d", i), "owner-1")
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	got, err := uc.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Len(t, got.VideoIDs, adds)
}

func TestConcurrentDuplicateAddAdmitsOne(t *testing.T) {
	uc, _ := newPlaylistUsecaseForTest()
	ctx := context.Background()

	playlist, err := uc.CreatePlaylist(ctx, "owner-1", dto.CreatePlaylistRequest{Name: "Mix"})
	require.NoError(t, err)

	const attempts = 20
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.AddVideo(ctx, playlist.ID, "video-1", "owner-1")
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, apperr.IsKind(err, apperr.KindConflict))
		}
	}
	assert.Equal(t, 1, succeeded)

	got, err := uc.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"video-1"}, got.VideoIDs)
}
