package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vidora/internal/domain/entity"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type ReactionHandler struct {
	reactionUsecase usecasecontract.IReactionUseCase
}

func NewReactionHandler(reactionUsecase usecasecontract.IReactionUseCase) *ReactionHandler {
	return &ReactionHandler{
		reactionUsecase: reactionUsecase,
	}
}

// ToggleReaction flips the acting user's reaction on a target and reports
// the resulting state.
func (h *ReactionHandler) ToggleReaction(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	kind, ok := entity.ParseTargetKind(c.Param("targetKind"))
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "unknown target kind")
		return
	}
	targetID := c.Param("targetID")

	state, err := h.reactionUsecase.Toggle(c.Request.Context(), userID, kind, targetID)
	if err != nil {
		RespondError(c, err)
		return
	}
	metrics.ReactionTogglesTotal.WithLabelValues(string(kind), string(state)).Inc()
	SuccessHandler(c, http.StatusOK, dto.ToggleReactionResponse{State: state})
}

// ListLikedVideos returns the videos the acting user currently likes.
func (h *ReactionHandler) ListLikedVideos(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	videos, err := h.reactionUsecase.ListLikedVideos(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"videos": videos})
}

// GetReactionCount reports how many users currently react to a target.
func (h *ReactionHandler) GetReactionCount(c *gin.Context) {
	kind, ok := entity.ParseTargetKind(c.Param("targetKind"))
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "unknown target kind")
		return
	}
	count, err := h.reactionUsecase.CountForTarget(c.Request.Context(), kind, c.Param("targetID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"count": count})
}
