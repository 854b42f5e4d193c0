package handlers

import (
	"github.com/gin-gonic/gin"

	"printdesk/internal/core/id"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/infrastructure/http/v1/dto"
)

// NewPlatformHandler wires the generic catalog handler for sales channels.
// Platforms are global, so list results are not store-scoped.
func NewPlatformHandler(base *BaseHandler, service *platform.Service) *CatalogHandler[*platform.Platform, dto.CreatePlatformRequest, dto.UpdatePlatformRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*platform.Platform, dto.CreatePlatformRequest, dto.UpdatePlatformRequest]{
		Service:     service.CatalogService,
		EntityName:  "platform",
		StoreScoped: false,
		MapCreateDTO: func(req dto.CreatePlatformRequest, _ id.ID) *platform.Platform {
			return platform.New(req.Name, types.NewMoney(req.CommissionPercentage), types.NewMoney(req.FixedFeePerItem))
		},
		MapUpdateDTO: func(req dto.UpdatePlatformRequest, existing *platform.Platform) *platform.Platform {
			existing.Name = req.Name
			existing.CommissionPercentage = types.NewMoney(req.CommissionPercentage)
			existing.FixedFeePerItem = types.NewMoney(req.FixedFeePerItem)
			existing.Version = req.Version
			existing.Touch()
			return existing
		},
		MapToDTO: func(p *platform.Platform) any {
			return dto.FromPlatform(p)
		},
	})
}

// RegisterPlatformRoutes registers platform routes.
func RegisterPlatformRoutes(rg *gin.RouterGroup, h *CatalogHandler[*platform.Platform, dto.CreatePlatformRequest, dto.UpdatePlatformRequest]) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
