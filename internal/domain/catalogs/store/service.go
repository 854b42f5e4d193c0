package store

import (
	"context"
	"fmt"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/id"
	"printdesk/internal/core/tx"
	"printdesk/pkg/logger"
)

// Repository persists stores.
type Repository interface {
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id id.ID) (*Store, error)
	GetByOwner(ctx context.Context, ownerUserID id.ID) (*Store, error)
	Update(ctx context.Context, s *Store) error
}

// Service provides business logic for seller accounts.
type Service struct {
	repo      Repository
	txManager tx.Manager
	log       *logger.Logger
}

// NewService creates a new store service.
func NewService(repo Repository, txManager tx.Manager, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		repo:      repo,
		txManager: txManager,
		log:       log.WithComponent("store"),
	}
}

// Create registers a new seller account.
func (s *Service) Create(ctx context.Context, st *Store) error {
	if err := st.Validate(ctx); err != nil {
		return err
	}
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, st); err != nil {
			return fmt.Errorf("create store: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a store.
func (s *Service) GetByID(ctx context.Context, storeID id.ID) (*Store, error) {
	st, err := s.repo.GetByID(ctx, storeID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("store", storeID.String())
		}
		return nil, err
	}
	return st, nil
}

// GetByOwner retrieves the store owned by a user.
func (s *Service) GetByOwner(ctx context.Context, ownerUserID id.ID) (*Store, error) {
	st, err := s.repo.GetByOwner(ctx, ownerUserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewNotFound("store", ownerUserID.String())
		}
		return nil, err
	}
	return st, nil
}

// Settings retrieves the normalized financial configuration of a store.
func (s *Service) Settings(ctx context.Context, storeID id.ID) (Settings, error) {
	st, err := s.GetByID(ctx, storeID)
	if err != nil {
		return Settings{}, err
	}
	return st.Settings(), nil
}

// UpdateSettings replaces the financial configuration of a store.
func (s *Service) UpdateSettings(ctx context.Context, storeID id.ID, settings Settings) (*Store, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	var out *Store
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		st, err := s.GetByID(ctx, storeID)
		if err != nil {
			return err
		}
		st.PaysTax = settings.PaysTax
		st.TaxPercentage = settings.TaxPercentage
		st.EnergyCostPerKwh = settings.EnergyCostPerKwh
		st.Touch()
		if err := s.repo.Update(ctx, st); err != nil {
			return fmt.Errorf("update store: %w", err)
		}
		out = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProfile replaces the store name and financial configuration.
// The caller-supplied version guards against concurrent edits.
func (s *Service) UpdateProfile(ctx context.Context, storeID id.ID, name string, settings Settings, version int) (*Store, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	var out *Store
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		st, err := s.GetByID(ctx, storeID)
		if err != nil {
			return err
		}
		if name != "" {
			st.Name = name
		}
		st.PaysTax = settings.PaysTax
		st.TaxPercentage = settings.TaxPercentage
		st.EnergyCostPerKwh = settings.EnergyCostPerKwh
		st.Version = version
		st.Touch()
		if err := s.repo.Update(ctx, st); err != nil {
			return fmt.Errorf("update store: %w", err)
		}
		out = st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
