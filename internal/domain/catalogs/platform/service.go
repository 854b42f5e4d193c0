package platform

import (
	"context"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/tx"
	"printdesk/internal/domain"
	"printdesk/pkg/logger"
)

// Repository persists platforms.
type Repository interface {
	domain.CatalogRepository[*Platform]

	// ListAll retrieves every platform. Platforms are global, not
	// store-scoped.
	ListAll(ctx context.Context) ([]Platform, error)
}

// Service provides business logic for the platform catalog.
type Service struct {
	*domain.CatalogService[*Platform]
	repo Repository
}

// NewService creates a new platform service.
func NewService(repo Repository, txManager tx.Manager, log *logger.Logger) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Platform]{
		Repo:       repo,
		TxManager:  txManager,
		Logger:     log,
		EntityName: "platform",
	})
	return &Service{
		CatalogService: base,
		repo:           repo,
	}
}

// ListAll retrieves every platform.
func (s *Service) ListAll(ctx context.Context) ([]Platform, error) {
	return s.repo.ListAll(ctx)
}

// GetMany resolves a set of platform IDs, preserving input order.
// An unknown ID is a not-found error, never a silently shorter result.
func (s *Service) GetMany(ctx context.Context, ids []id.ID) ([]Platform, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[id.ID]Platform, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}
	out := make([]Platform, 0, len(ids))
	for _, pid := range ids {
		p, ok := byID[pid]
		if !ok {
			return nil, apperror.NewNotFound("platform", pid.String())
		}
		out = append(out, p)
	}
	return out, nil
}
