package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vidora/internal/dto"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type PlaylistHandler struct {
	playlistUsecase usecasecontract.IPlaylistUseCase
}

func NewPlaylistHandler(playlistUsecase usecasecontract.IPlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{
		playlistUsecase: playlistUsecase,
	}
}

func (h *PlaylistHandler) CreatePlaylist(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	playlist, err := h.playlistUsecase.CreatePlaylist(c.Request.Context(), userID, req)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, playlist)
}

func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	playlist, err := h.playlistUsecase.GetPlaylist(c.Request.Context(), c.Param("playlistID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) ListUserPlaylists(c *gin.Context) {
	playlists, err := h.playlistUsecase.ListUserPlaylists(c.Request.Context(), c.Param("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"playlists": playlists})
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	playlist, err := h.playlistUsecase.AddVideo(c.Request.Context(), c.Param("playlistID"), c.Param("videoID"), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	metrics.PlaylistMutationsTotal.WithLabelValues("add_video").Inc()
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	playlist, err := h.playlistUsecase.RemoveVideo(c.Request.Context(), c.Param("playlistID"), c.Param("videoID"), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	metrics.PlaylistMutationsTotal.WithLabelValues("remove_video").Inc()
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	playlist, err := h.playlistUsecase.UpdatePlaylist(c.Request.Context(), c.Param("playlistID"), req, userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, playlist)
}

func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	if err := h.playlistUsecase.DeletePlaylist(c.Request.Context(), c.Param("playlistID"), userID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Playlist deleted successfully")
}
