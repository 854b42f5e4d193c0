package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/infrastructure/http/v1/dto"
)

// PricingHandler handles pricing preview endpoints.
type PricingHandler struct {
	*BaseHandler
	service *product.Service
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(base *BaseHandler, service *product.Service) *PricingHandler {
	return &PricingHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Preview handles POST /pricing/preview - price a configuration without saving.
func (h *PricingHandler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var req dto.PricingPreviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToSaveInput(storeID)
	if err != nil {
		h.Error(c, err)
		return
	}

	quote, err := h.service.Quote(ctx, in)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromQuote(quote))
}

// RegisterRoutes registers pricing routes.
func (h *PricingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/preview", h.Preview)
}
