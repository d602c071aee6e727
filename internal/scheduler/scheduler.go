package scheduler

import (
	"context"
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingReminder interface {
	RemindUpcoming(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler runs the periodic reminder sweep for upcoming bookings.
type Scheduler struct {
	bookingService bookingReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.bookingService.RemindUpcoming(ctx)
	if err != nil {
		s.logger.Error("failed to send booking reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reminded {
		s.logger.Info("booking reminder sent",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("date", b.Date),
			logger.String("start", b.StartTime),
		)
	}
}
