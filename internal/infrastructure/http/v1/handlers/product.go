package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"printdesk/internal/core/id"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{
		BaseHandler: base,
		service:     service,
	}
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"items": dto.FromProducts(items)})
}

// Get handles GET /products/:id - single product with its bill of materials.
func (h *ProductHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	productID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(ctx, productID)
	if err != nil {
		h.Error(c, err)
		return
	}

	links, err := h.service.ListLinks(ctx, []id.ID{productID})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(p, links))
}

// Create handles POST /products - create with recomputed pricing.
func (h *ProductHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var req dto.SaveProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToSaveInput(storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	p, _, err := h.service.CreateWithPricing(ctx, in)
	if err != nil {
		h.Error(c, err)
		return
	}

	links, err := h.service.ListLinks(ctx, []id.ID{p.ID})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromProduct(p, links))
}

// Update handles PUT /products/:id - update with recomputed pricing.
func (h *ProductHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	productID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.SaveProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToSaveInput(storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	p, _, err := h.service.UpdateWithPricing(ctx, productID, in)
	if err != nil {
		h.Error(c, err)
		return
	}

	links, err := h.service.ListLinks(ctx, []id.ID{p.ID})
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromProduct(p, links))
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	productID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, productID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers product routes.
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
