package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Vidora/internal/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUseCase
	config         usecasecontract.IConfigProvider
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUseCase, config usecasecontract.IConfigProvider) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
		config:         config,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	comment, err := h.commentUsecase.AddComment(c.Request.Context(), c.Param("videoID"), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	comment, err := h.commentUsecase.UpdateComment(c.Request.Context(), c.Param("commentID"), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentUsecase.DeleteComment(c.Request.Context(), c.Param("commentID")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully")
}

func (h *CommentHandler) GetVideoComments(c *gin.Context) {
	page, pageSize := PageParams(c, h.config)

	comments, err := h.commentUsecase.GetVideoComments(c.Request.Context(), c.Param("videoID"), page, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, comments)
}
