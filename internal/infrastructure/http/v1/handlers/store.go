package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/store"
	"printdesk/internal/infrastructure/http/v1/dto"
)

// StoreHandler handles seller account endpoints.
type StoreHandler struct {
	*BaseHandler
	service *store.Service
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(base *BaseHandler, service *store.Service) *StoreHandler {
	return &StoreHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Get handles GET /store - the caller's store.
func (h *StoreHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	st, err := h.service.GetByID(ctx, storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStore(st))
}

// UpdateSettings handles PUT /store/settings
func (h *StoreHandler) UpdateSettings(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var req dto.UpdateStoreSettingsRequest
	if !h.BindJSON(c, &req) {
		return
	}

	settings := store.Settings{
		PaysTax:          req.PaysTax,
		TaxPercentage:    types.NewMoney(req.TaxPercentage),
		EnergyCostPerKwh: types.NewMoney(req.EnergyCostPerKwh),
	}

	st, err := h.service.UpdateProfile(ctx, storeID, req.Name, settings, req.Version)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStore(st))
}

// RegisterRoutes registers store routes.
func (h *StoreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.PUT("/settings", h.UpdateSettings)
}
