package ports

import (
	"context"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingReminder(ctx context.Context, user *domain.User, b *domain.Booking)
}
