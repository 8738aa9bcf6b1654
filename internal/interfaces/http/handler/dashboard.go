package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/landryjoias/crm/internal/application/report"
)

// DashboardHandler handles management dashboard API endpoints
type DashboardHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary godoc
// @Summary      Dashboard summary
// @Description  Headline counters: clients, revenue, pending orders, open opportunities, low stock
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.Response{data=report.DashboardSummary}
// @Security     BearerAuth
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// MonthlyRevenue godoc
// @Summary      Monthly revenue chart
// @Description  Revenue grouped by month, oldest first, cancelled orders excluded
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dto.Response{data=[]report.MonthlyRevenue}
// @Security     BearerAuth
// @Router       /dashboard/chart [get]
func (h *DashboardHandler) MonthlyRevenue(c *gin.Context) {
	series, err := h.dashboardService.MonthlyRevenue(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, series)
}
