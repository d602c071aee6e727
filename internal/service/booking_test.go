package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockVenueRepo, *mocks.MockUserRepo, *mocks.MockBookingNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	venueRepo := mocks.NewMockVenueRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, venueRepo, userRepo, notifier, 24*time.Hour, log)
	return svc, bookingRepo, venueRepo, userRepo, notifier
}

func validBookingInput() domain.CreateBookingInput {
	return domain.CreateBookingInput{
		VenueID:   "v1",
		SpaceID:   "s1",
		Date:      "2025-06-10",
		StartTime: "10:00",
		EndTime:   "11:00",
		UserID:    "u1",
		EventName: "Pickup soccer",
	}
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, bookingRepo, venueRepo, userRepo, notifier := newBookingService(t)

	user := &domain.User{ID: "u1", Username: "alice"}

	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	bookingRepo.EXPECT().ExistsAt(mock.Anything, "v1", "s1", "2025-06-10", "10:00").Return(false, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, user, mock.Anything).Return()

	booking, err := svc.Book(context.Background(), validBookingInput())

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "v1", booking.VenueID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, "Pickup soccer", booking.EventName)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_SlotTaken(t *testing.T) {
	svc, bookingRepo, venueRepo, userRepo, _ := newBookingService(t)

	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1"}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().ExistsAt(mock.Anything, "v1", "s1", "2025-06-10", "10:00").Return(true, nil)

	_, err := svc.Book(context.Background(), validBookingInput())

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestBookingService_Book_SpaceNotFound(t *testing.T) {
	svc, _, venueRepo, _, _ := newBookingService(t)

	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(nil, domain.ErrSpaceNotFound)

	_, err := svc.Book(context.Background(), validBookingInput())

	assert.ErrorIs(t, err, domain.ErrSpaceNotFound)
}

func TestBookingService_Book_MissingEventName(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	input := validBookingInput()
	input.EventName = ""

	_, err := svc.Book(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_EndBeforeStart(t *testing.T) {
	svc, _, _, _, _ := newBookingService(t)

	input := validBookingInput()
	input.StartTime = "11:00"
	input.EndTime = "10:00"

	_, err := svc.Book(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel_ByOwner(t *testing.T) {
	svc, bookingRepo, _, userRepo, notifier := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	user := &domain.User{ID: "u1", Username: "alice"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, booking).Return()

	err := svc.Cancel(context.Background(), "b1", "u1", false)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_ByAdmin(t *testing.T) {
	svc, bookingRepo, _, userRepo, notifier := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	user := &domain.User{ID: "u1", Username: "alice"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, user, booking).Return()

	err := svc.Cancel(context.Background(), "b1", "admin", true)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Cancel(context.Background(), "b1", "u2", false)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1", false)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Confirm_Success(t *testing.T) {
	svc, bookingRepo, _, userRepo, notifier := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	user := &domain.User{ID: "u1", Username: "alice"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	bookingRepo.EXPECT().Confirm(mock.Anything, "b1").Return(nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, booking).Return()

	err := svc.Confirm(context.Background(), "b1")

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Confirm_NotPending(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", Status: domain.BookingStatusCancelled}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)

	err := svc.Confirm(context.Background(), "b1")

	assert.ErrorIs(t, err, domain.ErrBookingNotPending)
}

func TestBookingService_RemindUpcoming(t *testing.T) {
	svc, bookingRepo, _, userRepo, notifier := newBookingService(t)

	due := []*domain.Booking{
		{ID: "b1", UserID: "u1", Date: "2025-06-10", StartTime: "10:00"},
		{ID: "b2", UserID: "gone", Date: "2025-06-10", StartTime: "11:00"},
	}
	user := &domain.User{ID: "u1", Username: "alice"}

	bookingRepo.EXPECT().ListDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrUserNotFound)
	bookingRepo.EXPECT().MarkReminded(mock.Anything, "b1", mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingReminder(mock.Anything, user, due[0]).Return()

	reminded, err := svc.RemindUpcoming(context.Background())

	require.NoError(t, err)
	require.Len(t, reminded, 1)
	assert.Equal(t, "b1", reminded[0].ID)
}

func TestBookingService_RemindUpcoming_ListFails(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().ListDueReminders(mock.Anything, 24*time.Hour).Return(nil, errors.New("db down"))

	_, err := svc.RemindUpcoming(context.Background())

	require.Error(t, err)
}
