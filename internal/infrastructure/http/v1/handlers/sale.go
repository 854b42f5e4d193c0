package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"printdesk/internal/core/apperror"
	"printdesk/internal/domain/sales"
	"printdesk/internal/infrastructure/http/v1/dto"
)

// SaleHandler handles sale recording and listing endpoints.
type SaleHandler struct {
	*BaseHandler
	service *sales.Service
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *sales.Service) *SaleHandler {
	return &SaleHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Record handles POST /sales - record a sale with its economics snapshot.
func (h *SaleHandler) Record(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	var req dto.RecordSaleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	in, err := req.ToRecordInput(storeID, time.Now().UTC())
	if err != nil {
		h.Error(c, err)
		return
	}

	sale, err := h.service.Record(ctx, in)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSale(sale))
}

// Get handles GET /sales/:id
func (h *SaleHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	saleID, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	sale, err := h.service.GetByID(ctx, saleID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromSale(sale))
}

// List handles GET /sales?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *SaleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	storeID, ok := h.StoreID(c)
	if !ok {
		return
	}

	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		h.Error(c, err)
		return
	}

	items, err := h.service.ListByDateRange(ctx, storeID, from, to)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": dto.FromSales(items)})
}

// parseDateRange parses from/to query dates. Absent values default to the
// last 30 days ending today.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	to := now
	from := now.AddDate(0, 0, -30)

	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return from, to, apperror.NewValidation("invalid 'to' date, expected YYYY-MM-DD")
		}
		to = parsed
	}
	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return from, to, apperror.NewValidation("invalid 'from' date, expected YYYY-MM-DD")
		}
		from = parsed
	}
	if from.After(to) {
		return from, to, apperror.NewInvalidDateRange("'from' must not be after 'to'")
	}
	return from, to, nil
}

// RegisterRoutes registers sale routes.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Record)
	rg.GET("/:id", h.Get)
}
