package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/analytics"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/infrastructure/http/v1/dto"
)

const defaultBreakageHorizonDays = 30

// FilamentHandler handles filament catalog endpoints.
type FilamentHandler struct {
	*BaseHandler
	service   *filament.Service
	analytics *analytics.Service
}

// NewFilamentHandler creates a new filament handler.
func NewFilamentHandler(base *BaseHandler, service *filament.Service, analyticsService *analytics.Service) *FilamentHandler {
	return &FilamentHandler{
		BaseHandler: base,
		service:     service,
		analytics:   analyticsService,
	}
}

// List handles GET /filaments
func (h *FilamentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	items, err := h.service.ListByStore(ctx, storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromFilaments(items)})
}

// Get handles GET /filaments/:id
func (h *FilamentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	filamentID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	f, err := h.service.GetByID(ctx, filamentID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromFilament(f))
}

// Register handles POST /filaments - register a spool with its first purchase.
func (h *FilamentHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var req dto.CreateFilamentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Register(ctx, storeID, req.Name, req.Material, req.Color,
		types.NewGramsFromFloat64(req.Grams), types.NewMoney(req.TotalValue))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromFilament(f))
}

// Purchase handles POST /filaments/:id/purchase
func (h *FilamentHandler) Purchase(c *gin.Context) {
	ctx := c.Request.Context()

	filamentID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.PurchaseFilamentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Purchase(ctx, filamentID,
		types.NewGramsFromFloat64(req.Grams), types.NewMoney(req.TotalValue))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromFilament(f))
}

// Consume handles POST /filaments/:id/consume
func (h *FilamentHandler) Consume(c *gin.Context) {
	ctx := c.Request.Context()

	filamentID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.ConsumeFilamentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Consume(ctx, filamentID, types.NewGramsFromFloat64(req.Grams))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromFilament(f))
}

// LowStock handles GET /filaments/low-stock
func (h *FilamentHandler) LowStock(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	items, err := h.service.LowStock(ctx, storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromFilaments(items)})
}

// Breakage handles GET /filaments/:id/breakage - predict stock run-out.
func (h *FilamentHandler) Breakage(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	filamentID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var query dto.BreakageQuery
	if !h.BindQuery(c, &query) {
		return
	}
	if query.HorizonDays == 0 {
		query.HorizonDays = defaultBreakageHorizonDays
	}

	prediction, err := h.analytics.FilamentBreakage(ctx, storeID, filamentID, query.HorizonDays, time.Now().UTC())
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBreakage(*prediction))
}

// Delete handles DELETE /filaments/:id
func (h *FilamentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	filamentID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, filamentID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers filament routes.
func (h *FilamentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Register)
	rg.GET("/low-stock", h.LowStock)
	rg.GET("/:id", h.Get)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/purchase", h.Purchase)
	rg.POST("/:id/consume", h.Consume)
	rg.GET("/:id/breakage", h.Breakage)
}
