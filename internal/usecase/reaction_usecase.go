package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
)

// ReactionUsecase handles the business logic for toggling likes.
type ReactionUsecase struct {
	reactionRepo contract.IReactionRepository
	videoRepo    contract.IVideoRepository
	uuidGen      contract.IUUIDGenerator
}

// NewReactionUsecase creates and returns a new ReactionUsecase instance.
func NewReactionUsecase(reactionRepo contract.IReactionRepository, videoRepo contract.IVideoRepository, uuidGen contract.IUUIDGenerator) *ReactionUsecase {
	return &ReactionUsecase{
		reactionRepo: reactionRepo,
		videoRepo:    videoRepo,
		uuidGen:      uuidGen,
	}
}

// Toggle flips the user's liked relationship to the target and returns the
// resulting presence state.
//
// The protocol is built on the store's atomic conditional primitives so that
// concurrent toggles for the same triple always serialize: first try to
// delete the triple (present -> absent); if nothing was there, insert a new
// reaction guarded by the store's uniqueness constraint. A duplicate-key
// rejection means a concurrent toggle created the reaction between our two
// calls, so this call serializes after it and takes the delete branch.
func (u *ReactionUsecase) Toggle(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (entity.ReactionState, error) {
	deleted, err := u.reactionRepo.DeleteByTriple(ctx, userID, kind, targetID)
	if err != nil {
		return "", fmt.Errorf("toggle reaction: %w", err)
	}
	if deleted {
		return entity.ReactionAbsent, nil
	}

	reaction := &entity.Reaction{
		ID:         u.uuidGen.NewUUID(),
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
		CreatedAt:  time.Now(),
	}
	err = u.reactionRepo.Insert(ctx, reaction)
	if err == nil {
		return entity.ReactionPresent, nil
	}
	if apperr.IsKind(err, apperr.KindConflict) {
		if _, derr := u.reactionRepo.DeleteByTriple(ctx, userID, kind, targetID); derr != nil {
			return "", fmt.Errorf("toggle reaction: %w", derr)
		}
		return entity.ReactionAbsent, nil
	}
	return "", fmt.Errorf("toggle reaction: %w", err)
}

// ListLikedVideos returns the video records the user currently likes.
// Reactions to videos that have since been deleted are skipped.
func (u *ReactionUsecase) ListLikedVideos(ctx context.Context, userID string) ([]*entity.Video, error) {
	reactions, err := u.reactionRepo.ListByUserAndKind(ctx, userID, entity.TargetKindVideo)
	if err != nil {
		return nil, fmt.Errorf("list liked videos: %w", err)
	}

	videos := make([]*entity.Video, 0, len(reactions))
	for _, reaction := range reactions {
		video, err := u.videoRepo.GetByID(ctx, reaction.TargetID)
		if err != nil {
			if apperr.IsKind(err, apperr.KindNotFound) {
				continue
			}
			return nil, fmt.Errorf("list liked videos: %w", err)
		}
		videos = append(videos, video)
	}
	return videos, nil
}

// CountForTarget returns the number of likes a target currently has.
func (u *ReactionUsecase) CountForTarget(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	count, err := u.reactionRepo.CountByTarget(ctx, kind, targetID)
	if err != nil {
		return 0, fmt.Errorf("count reactions for target %s: %w", targetID, err)
	}
	return count, nil
}
