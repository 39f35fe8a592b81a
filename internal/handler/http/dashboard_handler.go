package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type DashboardHandler struct {
	dashboardUsecase usecasecontract.IDashboardUseCase
	config           usecasecontract.IConfigProvider
}

func NewDashboardHandler(dashboardUsecase usecasecontract.IDashboardUseCase, config usecasecontract.IConfigProvider) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		config:           config,
	}
}

// GetChannelStats reports a channel's aggregate counters.
func (h *DashboardHandler) GetChannelStats(c *gin.Context) {
	stats, err := h.dashboardUsecase.GetChannelStats(c.Request.Context(), c.Param("channelID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}

// GetChannelVideos lists a channel's videos, published or not.
func (h *DashboardHandler) GetChannelVideos(c *gin.Context) {
	page, pageSize := PageParams(c, h.config)

	videos, err := h.dashboardUsecase.GetChannelVideos(c.Request.Context(), c.Param("channelID"), page, pageSize)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, videos)
}
