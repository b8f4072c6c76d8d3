package boxer

import (
	"context"

	"github.com/rs/zerolog"
)

// Store is the persistence behavior the service depends on (implemented by
// Repository, mocked in tests).
type Store interface {
	Create(ctx context.Context, n NewBoxer) (Boxer, error)
	GetByID(ctx context.Context, id int64) (Boxer, error)
	GetByName(ctx context.Context, name string) (Boxer, error)
	Delete(ctx context.Context, id int64) error
}

// Service applies boxer attribute validation on top of the store.
type Service struct {
	store  Store
	logger zerolog.Logger
}

// NewService constructs a boxer service.
func NewService(store Store, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "boxer").Logger(),
	}
}

// Create validates and persists a new boxer.
func (s *Service) Create(ctx context.Context, n NewBoxer) (Boxer, error) {
	if err := n.Validate(); err != nil {
		s.logger.Warn().Err(err).Str("name", n.Name).Msg("boxer validation failed")
		return Boxer{}, err
	}
	b, err := s.store.Create(ctx, n)
	if err != nil {
		return Boxer{}, err
	}
	s.logger.Info().Int64("id", b.ID).Str("name", b.Name).
		Str("weight_class", b.WeightClass).Msg("boxer created")
	return b, nil
}

// GetByID fetches a boxer by numeric id.
func (s *Service) GetByID(ctx context.Context, id int64) (Boxer, error) {
	return s.store.GetByID(ctx, id)
}

// GetByName fetches a boxer by its unique name.
func (s *Service) GetByName(ctx context.Context, name string) (Boxer, error) {
	return s.store.GetByName(ctx, name)
}

// Delete removes a boxer record.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("boxer deleted")
	return nil
}
