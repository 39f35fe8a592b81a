package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	"github.com/mikiasgoitom/Vidora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type VideoHandler struct {
	videoUsecase usecasecontract.IVideoUseCase
	config       usecasecontract.IConfigProvider
}

func NewVideoHandler(videoUsecase usecasecontract.IVideoUseCase, config usecasecontract.IConfigProvider) *VideoHandler {
	return &VideoHandler{
		videoUsecase: videoUsecase,
		config:       config,
	}
}

// PublishVideo accepts a multipart upload with a required "video" file part
// and an optional "thumbnail" part.
func (h *VideoHandler) PublishVideo(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	videoFile, videoHeader, err := c.Request.FormFile("video")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "A video file is required")
		return
	}
	defer videoFile.Close()

	upload := dto.MediaUpload{
		Reader:      videoFile,
		Size:        videoHeader.Size,
		ContentType: videoHeader.Header.Get("Content-Type"),
		Filename:    videoHeader.Filename,
	}

	var thumbnail *dto.MediaUpload
	if thumbFile, thumbHeader, err := c.Request.FormFile("thumbnail"); err == nil {
		defer thumbFile.Close()
		thumbnail = &dto.MediaUpload{
			Reader:      thumbFile,
			Size:        thumbHeader.Size,
			ContentType: thumbHeader.Header.Get("Content-Type"),
			Filename:    thumbHeader.Filename,
		}
	}

	video, err := h.videoUsecase.PublishVideo(c.Request.Context(), userID, req, upload, thumbnail)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, video)
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.videoUsecase.GetVideo(c.Request.Context(), c.Param("videoID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

func (h *VideoHandler) ListVideos(c *gin.Context) {
	page, pageSize := PageParams(c, h.config)
	opts := &contract.VideoFilterOptions{
		Query:     c.Query("query"),
		OwnerID:   c.Query("owner_id"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
		Page:      page,
		PageSize:  pageSize,
	}
	videos, err := h.videoUsecase.ListVideos(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, videos)
}

func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	video, err := h.videoUsecase.UpdateVideo(c.Request.Context(), c.Param("videoID"), req, userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}

func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	if err := h.videoUsecase.DeleteVideo(c.Request.Context(), c.Param("videoID"), userID); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Video deleted successfully")
}

func (h *VideoHandler) TogglePublishStatus(c *gin.Context) {
	userID, ok := ActingUserID(c)
	if !ok {
		return
	}
	video, err := h.videoUsecase.TogglePublishStatus(c.Request.Context(), c.Param("videoID"), userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, video)
}
