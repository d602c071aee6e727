package ports

import (
	"context"
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// ExistsAt reports whether a non-cancelled booking occupies the exact
	// (venue, space, date, startTime) key.
	ExistsAt(ctx context.Context, venueID, spaceID, date, startTime string) (bool, error)
	// ListInRange returns non-cancelled bookings for the space limited to
	// the given dates, with the booker's username joined in.
	ListInRange(ctx context.Context, venueID, spaceID string, dates []string) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	// ListDueReminders returns non-cancelled, not yet reminded bookings
	// starting within the window from now.
	ListDueReminders(ctx context.Context, window time.Duration) ([]*domain.Booking, error)
	MarkReminded(ctx context.Context, id string, at time.Time) error
}
