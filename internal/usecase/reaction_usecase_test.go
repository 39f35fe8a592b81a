package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/uuidgen"
)

func newReactionUsecaseForTest() (*ReactionUsecase, *fakeReactionRepo, *fakeVideoRepo) {
	reactionRepo := newFakeReactionRepo()
	videoRepo := newFakeVideoRepo()
	uc := NewReactionUsecase(reactionRepo, videoRepo, uuidgen.NewGenerator())
	return uc, reactionRepo, videoRepo
}

func TestToggleRoundTrip(t *testing.T) {
	uc, repo, _ := newReactionUsecaseForTest()
	ctx := context.Background()

	state, err := uc.Toggle(ctx, "user-1", entity.TargetKindVideo, "video-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionPresent, state)

	exists, err := repo.ExistsByTriple(ctx, "user-1", entity.TargetKindVideo, "video-1")
	require.NoError(t, err)
	assert.True(t, exists)

	state, err = uc.Toggle(ctx, "user-1", entity.TargetKindVideo, "video-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionAbsent, state)

	exists, err = repo.ExistsByTriple(ctx, "user-1", entity.TargetKindVideo, "video-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestToggleDistinctTargetsAreIndependent(t *testing.T) {
	uc, _, _ := newReactionUsecaseForTest()
	ctx := context.Background()

	state, err := uc.Toggle(ctx, "user-1", entity.TargetKindVideo, "video-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionPresent, state)

	// Same ID under a different kind is a different triple.
	state, err = uc.Toggle(ctx, "user-1", entity.TargetKindComment, "video-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionPresent, state)

	count, err := uc.CountForTarget(ctx, entity.TargetKindVideo, "video-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToggleConcurrentSameTriple(t *testing.T) {
	uc, repo, _ := newReactionUsecaseForTest()
	ctx := context.Background()

	const toggles = 50
	states := make([]entity.ReactionState, toggles)
	errs := make([]error, toggles)

	var wg sync.WaitGroup
	for i := 0; i < toggles; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			states[i], errs[i] = uc.Toggle(ctx, "user-1", entity.TargetKindVideo, "video-1")
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	// At most one reaction row can exist afterwards, and its presence must
	// agree with the parity of the Present results.
	var presents int
	for _, state := range states {
		if state == entity.ReactionPresent {
			presents++
		}
	}
	exists, err := repo.ExistsByTriple(ctx, "user-1", entity.TargetKindVideo, "video-1")
	require.NoError(t, err)

	if exists {
		assert.Equal(t, 1, presents-(toggles-presents), "net toggles must leave exactly one reaction")
	} else {
		assert.Equal(t, 0, presents-(toggles-presents), "net toggles must leave no reaction")
	}
}

func TestListLikedVideosSkipsDeleted(t *testing.T) {
	uc, _, videoRepo := newReactionUsecaseForTest()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, videoRepo.Create(ctx, &entity.Video{ID: "video-1", OwnerID: "owner", Title: "first", CreatedAt: now}))
	require.NoError(t, videoRepo.Create(ctx, &entity.Video{ID: "video-2", OwnerID: "owner", Title: "second", CreatedAt: now}))

	_, err := uc.Toggle(ctx, "user-1", entity.TargetKindVideo, "video-1")
	require.NoError(t, err)
	_, err = uc.Toggle(ctx, "user-1", entity.TargetKindVideo, "video-2")
	require.NoError(t, err)

	require.NoError(t, videoRepo.Delete(ctx, "video-2"))

	videos, err := uc.ListLikedVideos(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "video-1", videos[0].ID)
}

func TestCountForTarget(t *testing.T) {
	uc, _, _ := newReactionUsecaseForTest()
	ctx := context.Background()

	for _, user := range []string{"user-1", "user-2", "user-3"} {
		_, err := uc.Toggle(ctx, user, entity.TargetKindComment, "comment-1")
		require.NoError(t, err)
	}
	// user-2 untoggles
	_, err := uc.Toggle(ctx, "user-2", entity.TargetKindComment, "comment-1")
	require.NoError(t, err)

	count, err := uc.CountForTarget(ctx, entity.TargetKindComment, "comment-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
