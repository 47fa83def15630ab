package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alumni-network/backend/internal/service"
)

// StatsHandler exposes dashboard statistics
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// RegisterRoutes registers the stats routes
func (h *StatsHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/dashboard-stats", h.Dashboard)
}

// Dashboard returns user, event and job counts plus the role split
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
