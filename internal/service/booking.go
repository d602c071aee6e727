package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo    ports.BookingRepo
	venueRepo      ports.VenueRepo
	userRepo       ports.UserRepo
	notifier       ports.BookingNotifier
	reminderWindow time.Duration
	logger         logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	reminderWindow time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		venueRepo:      venueRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		reminderWindow: reminderWindow,
		logger:         logger,
	}
}

// Book admits a booking against an open slot key. The occupancy check is
// keyed on the exact (venue, space, date, startTime); the partial unique
// index on bookings is the authoritative race closer behind it.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.EventName == "" {
		return nil, fmt.Errorf("%w: eventName is required", domain.ErrValidation)
	}
	if _, err := parseDate(input.Date); err != nil {
		return nil, err
	}
	if _, _, err := validateTimeRange(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	if _, err := s.venueRepo.GetSpace(ctx, input.VenueID, input.SpaceID); err != nil {
		return nil, fmt.Errorf("check space: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	taken, err := s.bookingRepo.ExistsAt(ctx, input.VenueID, input.SpaceID, input.Date, input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("check occupancy: %w", err)
	}
	if taken {
		return nil, domain.ErrSlotTaken
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		VenueID:   input.VenueID,
		SpaceID:   input.SpaceID,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		UserID:    input.UserID,
		EventName: input.EventName,
		Notes:     input.Notes,
		Status:    domain.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("venue_id", booking.VenueID),
		logger.String("space_id", booking.SpaceID),
		logger.String("date", booking.Date),
		logger.String("start", booking.StartTime),
		logger.String("user_id", booking.UserID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, booking)

	return booking, nil
}

// Cancel soft-transitions the booking to cancelled, which frees its slot
// key for subsequent bookings while keeping the record.
func (s *BookingService) Cancel(ctx context.Context, bookingID, requesterID string, requesterIsAdmin bool) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != requesterID && !requesterIsAdmin {
		return domain.ErrForbidden
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", bookingID),
		logger.String("requested_by", requesterID),
	)

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), user, booking)

	return nil
}

// Confirm transitions a pending booking to confirmed.
func (s *BookingService) Confirm(ctx context.Context, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusPending {
		return domain.ErrBookingNotPending
	}

	if err := s.bookingRepo.Confirm(ctx, bookingID); err != nil {
		return fmt.Errorf("confirm booking: %w", err)
	}

	s.logger.Info("booking confirmed", logger.String("booking_id", bookingID))

	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for confirm notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, booking)

	return nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

// RemindUpcoming notifies owners of bookings starting within the reminder
// window and stamps reminded_at, so each booking is reminded at most once
// across restarts and instances.
func (s *BookingService) RemindUpcoming(ctx context.Context) ([]*domain.Booking, error) {
	due, err := s.bookingRepo.ListDueReminders(ctx, s.reminderWindow)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}

	var reminded []*domain.Booking
	for _, b := range due {
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", b.UserID),
				logger.String("booking_id", b.ID),
			)
			continue
		}

		if err := s.bookingRepo.MarkReminded(ctx, b.ID, time.Now().UTC()); err != nil {
			s.logger.Error("failed to mark booking reminded",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyBookingReminder(ctx, user, b)
		reminded = append(reminded, b)
	}

	return reminded, nil
}
