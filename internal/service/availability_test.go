package service

import (
	"context"
	"testing"
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAvailabilityService(t *testing.T) (*AvailabilityService, *mocks.MockVenueRepo, *mocks.MockSlotRepo, *mocks.MockBookingRepo) {
	t.Helper()
	venueRepo := mocks.NewMockVenueRepo(t)
	slotRepo := mocks.NewMockSlotRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	svc := NewAvailabilityService(venueRepo, slotRepo, bookingRepo)
	return svc, venueRepo, slotRepo, bookingRepo
}

func mondayVenue() *domain.Venue {
	return &domain.Venue{
		ID: "v1",
		Hours: domain.OperatingHours{
			"monday": {Open: "09:00", Close: "12:00"},
		},
	}
}

func TestAvailabilityService_ListSlots_SingleDay(t *testing.T) {
	svc, venueRepo, slotRepo, bookingRepo := newAvailabilityService(t)

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(mondayVenue(), nil)
	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1", Name: "Court A"}, nil)
	slotRepo.EXPECT().ListActiveCustom(mock.Anything, "v1", "s1", []string{"2025-06-09"}).Return(nil, nil)
	bookingRepo.EXPECT().ListInRange(mock.Anything, "v1", "s1", []string{"2025-06-09"}).Return(nil, nil)

	// 2025-06-09 is a Monday.
	got, err := svc.ListSlots(context.Background(), "v1", "s1", "2025-06-09", "", "")

	require.NoError(t, err)
	assert.Equal(t, "Court A", got.SpaceName)
	require.Len(t, got.Slots, 3)
	assert.Equal(t, "09:00", got.Slots[0].StartTime)
	assert.Equal(t, "10:00", got.Slots[1].StartTime)
	assert.Equal(t, "11:00", got.Slots[2].StartTime)
	for _, s := range got.Slots {
		assert.True(t, s.Available)
		assert.False(t, s.IsCustom)
	}
}

func TestAvailabilityService_ListSlots_BookingOverlay(t *testing.T) {
	svc, venueRepo, slotRepo, bookingRepo := newAvailabilityService(t)

	booking := &domain.Booking{
		ID:        "b1",
		Date:      "2025-06-09",
		StartTime: "10:00",
		EndTime:   "11:00",
		UserID:    "u1",
		Username:  "alice",
		EventName: "Pickup soccer",
		Status:    domain.BookingStatusConfirmed,
	}

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(mondayVenue(), nil)
	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1", Name: "Court A"}, nil)
	slotRepo.EXPECT().ListActiveCustom(mock.Anything, "v1", "s1", []string{"2025-06-09"}).Return(nil, nil)
	bookingRepo.EXPECT().ListInRange(mock.Anything, "v1", "s1", []string{"2025-06-09"}).Return([]*domain.Booking{booking}, nil)

	got, err := svc.ListSlots(context.Background(), "v1", "s1", "2025-06-09", "", "")

	require.NoError(t, err)
	require.Len(t, got.Slots, 3)

	booked := got.Slots[1]
	assert.False(t, booked.Available)
	assert.Equal(t, "Pickup soccer", booked.EventName)
	assert.Equal(t, "u1", booked.BookedBy)
	assert.Equal(t, "alice", booked.BookedByUsername)
	assert.Equal(t, "b1", booked.BookingID)

	assert.True(t, got.Slots[0].Available)
	assert.True(t, got.Slots[2].Available)
}

func TestAvailabilityService_ListSlots_CustomMerge(t *testing.T) {
	svc, venueRepo, slotRepo, bookingRepo := newAvailabilityService(t)

	custom := []*domain.TimeSlot{
		{
			ID: "c1", VenueID: "v1", SpaceID: "s1",
			Date: "2025-06-09", StartTime: "10:30", EndTime: "12:00",
			Price: 300, IsCustom: true, IsActive: true,
		},
	}

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(mondayVenue(), nil)
	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1", Name: "Court A"}, nil)
	slotRepo.EXPECT().ListActiveCustom(mock.Anything, "v1", "s1", []string{"2025-06-09"}).Return(custom, nil)
	bookingRepo.EXPECT().ListInRange(mock.Anything, "v1", "s1", []string{"2025-06-09"}).Return(nil, nil)

	got, err := svc.ListSlots(context.Background(), "v1", "s1", "2025-06-09", "", "")

	require.NoError(t, err)
	// The 10:00 and 11:00 auto hours are suppressed by the overlapping
	// custom slot; 09:00 survives.
	require.Len(t, got.Slots, 2)
	assert.Equal(t, "09:00", got.Slots[0].StartTime)
	assert.False(t, got.Slots[0].IsCustom)
	assert.Equal(t, "10:30", got.Slots[1].StartTime)
	assert.True(t, got.Slots[1].IsCustom)
	assert.Equal(t, 300, got.Slots[1].Price)
}

func TestAvailabilityService_ListSlots_ClosedDay(t *testing.T) {
	svc, venueRepo, slotRepo, bookingRepo := newAvailabilityService(t)

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(mondayVenue(), nil)
	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1", Name: "Court A"}, nil)
	slotRepo.EXPECT().ListActiveCustom(mock.Anything, "v1", "s1", []string{"2025-06-10"}).Return(nil, nil)
	bookingRepo.EXPECT().ListInRange(mock.Anything, "v1", "s1", []string{"2025-06-10"}).Return(nil, nil)

	// Tuesday has no window.
	got, err := svc.ListSlots(context.Background(), "v1", "s1", "2025-06-10", "", "")

	require.NoError(t, err)
	assert.Empty(t, got.Slots)
}

func TestAvailabilityService_ListSlots_DefaultRange(t *testing.T) {
	svc, venueRepo, slotRepo, bookingRepo := newAvailabilityService(t)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 9, 15, 30, 0, 0, time.UTC)
	}

	var capturedDates []string
	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(&domain.Venue{ID: "v1"}, nil)
	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1"}, nil)
	slotRepo.EXPECT().ListActiveCustom(mock.Anything, "v1", "s1", mock.Anything).Run(func(ctx context.Context, venueID, spaceID string, dates []string) {
		capturedDates = dates
	}).Return(nil, nil)
	bookingRepo.EXPECT().ListInRange(mock.Anything, "v1", "s1", mock.Anything).Return(nil, nil)

	_, err := svc.ListSlots(context.Background(), "v1", "s1", "", "", "")

	require.NoError(t, err)
	require.Len(t, capturedDates, 14)
	assert.Equal(t, "2025-06-09", capturedDates[0])
	assert.Equal(t, "2025-06-22", capturedDates[13])
}

func TestAvailabilityService_ListSlots_HalfRange(t *testing.T) {
	svc, venueRepo, _, _ := newAvailabilityService(t)

	venueRepo.EXPECT().GetByID(mock.Anything, "v1").Return(mondayVenue(), nil)
	venueRepo.EXPECT().GetSpace(mock.Anything, "v1", "s1").Return(&domain.Space{ID: "s1"}, nil)

	_, err := svc.ListSlots(context.Background(), "v1", "s1", "", "2025-06-09", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_ListSlots_VenueNotFound(t *testing.T) {
	svc, venueRepo, _, _ := newAvailabilityService(t)

	venueRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	_, err := svc.ListSlots(context.Background(), "missing", "s1", "2025-06-09", "", "")

	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}
