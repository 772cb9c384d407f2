// internal/handlers/stats.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/producttracker/backend/internal/services"
	"github.com/producttracker/backend/internal/utils"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GET /v1/stats
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.ComputeStats()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"stats": stats,
	})
}

// GET /v1/dashboard
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.statsService.Dashboard()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, dashboard)
}
