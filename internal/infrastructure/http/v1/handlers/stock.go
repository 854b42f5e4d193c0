package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/stock"
	"printdesk/internal/infrastructure/http/v1/dto"
)

// StockHandler handles generic stock line and inventory asset endpoints.
type StockHandler struct {
	*BaseHandler
	service *stock.Service
}

// NewStockHandler creates a new stock handler.
func NewStockHandler(base *BaseHandler, service *stock.Service) *StockHandler {
	return &StockHandler{
		BaseHandler: base,
		service:     service,
	}
}

// --- Stock items ---

// ListItems handles GET /stock/items
func (h *StockHandler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	items, err := h.service.ListItems(ctx, storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromStockItems(items)})
}

// CreateItem handles POST /stock/items
func (h *StockHandler) CreateItem(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var req dto.SaveStockItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.CreateItem(ctx, storeID, req.Name, req.Quantity, types.NewMoney(req.TotalValue))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromStockItem(item))
}

// UpdateItem handles PUT /stock/items/:id
func (h *StockHandler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.SaveStockItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item, err := h.service.UpdateItem(ctx, itemID, req.Name, req.Quantity, types.NewMoney(req.TotalValue))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromStockItem(item))
}

// DeleteItem handles DELETE /stock/items/:id
func (h *StockHandler) DeleteItem(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(ctx, itemID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Inventory assets ---

// ListAssets handles GET /stock/assets
func (h *StockHandler) ListAssets(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	assets, err := h.service.ListAssets(ctx, storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromInventoryAssets(assets)})
}

// CreateAsset handles POST /stock/assets
func (h *StockHandler) CreateAsset(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var req dto.SaveInventoryAssetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	asset, err := h.service.CreateAsset(ctx, storeID, req.Name, req.Quantity, types.NewMoney(req.PaidValue))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromInventoryAsset(asset))
}

// UpdateAsset handles PUT /stock/assets/:id
func (h *StockHandler) UpdateAsset(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.SaveInventoryAssetRequest
	if !h.BindJSON(c, &req) {
		return
	}

	asset, err := h.service.UpdateAsset(ctx, assetID, req.Name, req.Quantity, types.NewMoney(req.PaidValue))
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromInventoryAsset(asset))
}

// DeleteAsset handles DELETE /stock/assets/:id
func (h *StockHandler) DeleteAsset(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAsset(ctx, assetID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers stock routes.
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/items", h.ListItems)
	rg.POST("/items", h.CreateItem)
	rg.PUT("/items/:id", h.UpdateItem)
	rg.DELETE("/items/:id", h.DeleteItem)

	rg.GET("/assets", h.ListAssets)
	rg.POST("/assets", h.CreateAsset)
	rg.PUT("/assets/:id", h.UpdateAsset)
	rg.DELETE("/assets/:id", h.DeleteAsset)
}
