package ports

import (
	"context"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.TimeSlot) error
	GetByID(ctx context.Context, id string) (*domain.TimeSlot, error)
	Update(ctx context.Context, s *domain.TimeSlot) error
	Delete(ctx context.Context, id string) error
	// ListActiveCustom returns active custom slots for the space limited to
	// the given dates, in one query.
	ListActiveCustom(ctx context.Context, venueID, spaceID string, dates []string) ([]*domain.TimeSlot, error)
}
