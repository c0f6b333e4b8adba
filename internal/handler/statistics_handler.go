package handler

import (
	"net/http"

	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statsGroup := router.Group("/api/statistics")
	{
		statsGroup.GET("/overview", h.GetOverview)
	}
}

// GetOverview returns the dashboard counters
// @Summary      Dashboard overview
// @Description  Active guests, total advance collection, pending orders and room occupancy
// @Tags         statistics
// @Produce      json
// @Success      200  {object}  response.Response{data=service.OverviewResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/statistics/overview [get]
func (h *StatisticsHandler) GetOverview(c *gin.Context) {
	stats, err := h.statisticsService.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
