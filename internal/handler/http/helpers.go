package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Vidora/internal/domain/apperr"
	"github.com/mikiasgoitom/Vidora/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// RespondError maps an application error kind to its HTTP status code.
func RespondError(c *gin.Context, err error) {
	kind, ok := apperr.KindOf(err)
	if !ok {
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
		return
	}
	switch kind {
	case apperr.KindValidation:
		ErrorHandler(c, http.StatusBadRequest, err.Error())
	case apperr.KindNotFound:
		ErrorHandler(c, http.StatusNotFound, err.Error())
	case apperr.KindForbidden:
		ErrorHandler(c, http.StatusForbidden, err.Error())
	case apperr.KindConflict:
		ErrorHandler(c, http.StatusConflict, err.Error())
	case apperr.KindUnavailable:
		ErrorHandler(c, http.StatusServiceUnavailable, err.Error())
	default:
		ErrorHandler(c, http.StatusInternalServerError, err.Error())
	}
}

// PageParams reads the page/page_size query parameters, falling back to the
// configured defaults.
func PageParams(c *gin.Context, cfg usecasecontract.IConfigProvider) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || pageSize < 1 || pageSize > cfg.GetMaxPageSize() {
		pageSize = cfg.GetDefaultPageSize()
	}
	return page, pageSize
}

// ActingUserID extracts the authenticated user identity set by the auth
// middleware. Every mutation handler threads it through explicitly.
func ActingUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	userIDStr, ok := userID.(string)
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid user ID format in token")
		return "", false
	}
	return userIDStr, true
}
