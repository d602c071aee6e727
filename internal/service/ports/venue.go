package ports

import (
	"context"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
)

type VenueRepo interface {
	Create(ctx context.Context, v *domain.Venue) error
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	GetSpace(ctx context.Context, venueID, spaceID string) (*domain.Space, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}
