package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/service/ports"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/slots"
)

// defaultRangeDays is the horizon listed when the client gives no date.
const defaultRangeDays = 14

// AvailabilityService composes operating hours, custom slots and booking
// occupancy into the per-date slot listing. Read-only.
type AvailabilityService struct {
	venueRepo   ports.VenueRepo
	slotRepo    ports.SlotRepo
	bookingRepo ports.BookingRepo
	now         func() time.Time
}

func NewAvailabilityService(
	venueRepo ports.VenueRepo,
	slotRepo ports.SlotRepo,
	bookingRepo ports.BookingRepo,
) *AvailabilityService {
	return &AvailabilityService{
		venueRepo:   venueRepo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

// ListSlots resolves the target dates from an explicit date, an explicit
// [startDate, endDate] range, or the next defaultRangeDays days, and
// projects availability for each.
func (s *AvailabilityService) ListSlots(ctx context.Context, venueID, spaceID, date, startDate, endDate string) (*domain.SpaceAvailability, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	space, err := s.venueRepo.GetSpace(ctx, venueID, spaceID)
	if err != nil {
		return nil, fmt.Errorf("get space: %w", err)
	}

	dates, err := s.resolveDates(date, startDate, endDate)
	if err != nil {
		return nil, err
	}

	// Two bulk queries for the whole range keeps the query count flat no
	// matter how many dates are listed.
	custom, err := s.slotRepo.ListActiveCustom(ctx, venueID, spaceID, dates)
	if err != nil {
		return nil, fmt.Errorf("list custom slots: %w", err)
	}
	bookings, err := s.bookingRepo.ListInRange(ctx, venueID, spaceID, dates)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	customByDate := make(map[string][]*domain.TimeSlot, len(dates))
	for _, c := range custom {
		customByDate[c.Date] = append(customByDate[c.Date], c)
	}
	bookingByKey := make(map[string]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bookingByKey[b.Date+"|"+b.StartTime] = b
	}

	out := make([]domain.AvailabilitySlot, 0, len(dates)*8)
	for _, ds := range dates {
		day, err := parseDate(ds)
		if err != nil {
			return nil, err
		}

		generated, err := slots.Generate(ds, venue.Hours.WindowFor(day), customByDate[ds])
		if err != nil {
			return nil, fmt.Errorf("generate slots for %s: %w", ds, err)
		}
		for _, g := range generated {
			applyBooking(&g, bookingByKey[g.Date+"|"+g.StartTime])
			out = append(out, g)
		}

		for _, c := range customByDate[ds] {
			slot := domain.AvailabilitySlot{
				ID:        c.ID,
				Date:      c.Date,
				StartTime: c.StartTime,
				EndTime:   c.EndTime,
				Available: true,
				Price:     c.Price,
				IsCustom:  true,
			}
			applyBooking(&slot, bookingByKey[c.Date+"|"+c.StartTime])
			out = append(out, slot)
		}
	}

	// Zero-padded date and time strings order correctly lexicographically.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})

	return &domain.SpaceAvailability{
		VenueID:   venueID,
		SpaceID:   spaceID,
		SpaceName: space.Name,
		Slots:     out,
	}, nil
}

func applyBooking(slot *domain.AvailabilitySlot, b *domain.Booking) {
	if b == nil {
		return
	}
	slot.Available = false
	slot.EventName = b.EventName
	slot.BookedBy = b.UserID
	slot.BookedByUsername = b.Username
	slot.BookingID = b.ID
}

func (s *AvailabilityService) resolveDates(date, startDate, endDate string) ([]string, error) {
	switch {
	case date != "":
		if _, err := parseDate(date); err != nil {
			return nil, err
		}
		return []string{date}, nil

	case startDate != "" || endDate != "":
		if startDate == "" || endDate == "" {
			return nil, fmt.Errorf("%w: startDate and endDate must be given together", domain.ErrValidation)
		}
		from, err := parseDate(startDate)
		if err != nil {
			return nil, err
		}
		to, err := parseDate(endDate)
		if err != nil {
			return nil, err
		}
		if to.Before(from) {
			return nil, fmt.Errorf("%w: endDate is before startDate", domain.ErrValidation)
		}
		var dates []string
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d.Format(dateLayout))
		}
		return dates, nil

	default:
		today := s.now().UTC().Truncate(24 * time.Hour)
		dates := make([]string, 0, defaultRangeDays)
		for i := 0; i < defaultRangeDays; i++ {
			dates = append(dates, today.AddDate(0, 0, i).Format(dateLayout))
		}
		return dates, nil
	}
}
