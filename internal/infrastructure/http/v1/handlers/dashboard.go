package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"printdesk/internal/domain/analytics"
	"printdesk/internal/infrastructure/http/v1/dto"
)

// DashboardHandler handles dashboard statistics endpoints.
type DashboardHandler struct {
	*BaseHandler
	service *analytics.Service
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(base *BaseHandler, service *analytics.Service) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Stats handles GET /dashboard/stats?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var query dto.DashboardQuery
	if !h.BindQuery(c, &query) {
		return
	}

	stats, err := h.service.DashboardStats(ctx, storeID, query.StartDate, query.EndDate, time.Now().UTC())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStats(stats))
}

// RegisterRoutes registers dashboard routes.
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
}
