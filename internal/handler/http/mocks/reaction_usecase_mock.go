package mocks

import (
	"context"

	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

// MockReactionUsecase is a mock implementation of the IReactionUseCase interface
type MockReactionUsecase struct {
	// Control mock behavior
	ShouldFailToggle          bool
	ShouldFailListLikedVideos bool
	ShouldFailCountForTarget  bool

	// Return values
	MockState  entity.ReactionState
	MockVideos []*entity.Video
	MockCount  int64

	// Captured arguments from the last Toggle call
	LastUserID   string
	LastKind     entity.TargetKind
	LastTargetID string
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		MockState: entity.ReactionPresent,
		MockCount: 3,
	}
}

func (m *MockReactionUsecase) Toggle(ctx context.Context, userID string, kind entity.TargetKind, targetID string) (entity.ReactionState, error) {
	m.LastUserID = userID
	m.LastKind = kind
	m.LastTargetID = targetID
	if m.ShouldFailToggle {
		return "", apperr.NotFound("target not found")
	}
	return m.MockState, nil
}

func (m *MockReactionUsecase) ListLikedVideos(ctx context.Context, userID string) ([]*entity.Video, error) {
	if m.ShouldFailListLikedVideos {
		return nil, apperr.Unavailable(nil, "store unavailable")
	}
	return m.MockVideos, nil
}

func (m *MockReactionUsecase) CountForTarget(ctx context.Context, kind entity.TargetKind, targetID string) (int64, error) {
	if m.ShouldFailCountForTarget {
		return 0, apperr.Unavailable(nil, "store unavailable")
	}
	return m.MockCount, nil
}
