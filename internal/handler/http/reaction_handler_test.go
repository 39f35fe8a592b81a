package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "github.com/mikiasgoitom/Vidora/internal/handler/http"
	"github.com/mikiasgoitom/Vidora/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// authAs injects the authenticated identity the way the auth middleware does.
func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func setupReactionRouter(h *handler.ReactionHandler, userID string) *gin.Engine {
	r := gin.New()
	r.GET("/likes/:targetKind/:targetID/count", h.GetReactionCount)
	authed := r.Group("/")
	authed.Use(authAs(userID))
	authed.POST("/likes/:targetKind/:targetID/toggle", h.ToggleReaction)
	authed.GET("/likes/videos", h.ListLikedVideos)
	return r
}

func TestToggleReaction(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/video/video-42/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"present"`)
	assert.Equal(t, "user-1", mockUsecase.LastUserID)
	assert.Equal(t, "video-42", mockUsecase.LastTargetID)
}

func TestToggleReactionBadKind(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/banana/video-42/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleReactionMissingTarget(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	mockUsecase.ShouldFailToggle = true
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/likes/video/ghost/toggle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListLikedVideos(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, "user-1")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/videos", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "videos")
}

func TestGetReactionCount(t *testing.T) {
	mockUsecase := mocks.NewMockReactionUsecase()
	h := handler.NewReactionHandler(mockUsecase)
	r := setupReactionRouter(h, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/likes/comment/comment-7/count", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":3`)
}
