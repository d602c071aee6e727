package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/service/ports"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/slots"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/timeofday"
	"github.com/wb-go/wbf/logger"
)

// SlotService is the admission gate for administrator slot mutations:
// custom slot CRUD and bulk generation from operating hours.
type SlotService struct {
	slotRepo    ports.SlotRepo
	venueRepo   ports.VenueRepo
	bookingRepo ports.BookingRepo
	logger      logger.Logger
}

func NewSlotService(
	slotRepo ports.SlotRepo,
	venueRepo ports.VenueRepo,
	bookingRepo ports.BookingRepo,
	logger logger.Logger,
) *SlotService {
	return &SlotService{
		slotRepo:    slotRepo,
		venueRepo:   venueRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (s *SlotService) CreateCustom(ctx context.Context, input domain.CreateSlotInput) (*domain.TimeSlot, error) {
	if _, err := parseDate(input.Date); err != nil {
		return nil, err
	}
	startMin, endMin, err := validateTimeRange(input.StartTime, input.EndTime)
	if err != nil {
		return nil, err
	}

	if _, err := s.venueRepo.GetSpace(ctx, input.VenueID, input.SpaceID); err != nil {
		return nil, fmt.Errorf("check space: %w", err)
	}

	overlap, err := s.hasOverlap(ctx, input.VenueID, input.SpaceID, input.Date, startMin, endMin, "")
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		return nil, domain.ErrSlotOverlap
	}

	price := input.Price
	if price <= 0 {
		price = slots.BasePrice
	}

	now := time.Now().UTC()
	slot := &domain.TimeSlot{
		ID:        uuid.New().String(),
		VenueID:   input.VenueID,
		SpaceID:   input.SpaceID,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Price:     price,
		IsCustom:  true,
		IsActive:  true,
		CreatedBy: input.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The unique (venue, space, date, startTime) constraint closes the race
	// between the overlap check and this insert.
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	s.logger.Info("custom slot created",
		logger.String("slot_id", slot.ID),
		logger.String("venue_id", slot.VenueID),
		logger.String("space_id", slot.SpaceID),
		logger.String("date", slot.Date),
		logger.String("start", slot.StartTime),
	)

	return slot, nil
}

func (s *SlotService) UpdateCustom(ctx context.Context, slotID string, input domain.UpdateSlotInput) (*domain.TimeSlot, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	date, start, end := slot.Date, slot.StartTime, slot.EndTime
	if input.Date != nil {
		date = *input.Date
	}
	if input.StartTime != nil {
		start = *input.StartTime
	}
	if input.EndTime != nil {
		end = *input.EndTime
	}
	timingChanged := date != slot.Date || start != slot.StartTime || end != slot.EndTime

	// Price-only edits on a booked slot are allowed; moving it is not.
	if timingChanged {
		occupied, err := s.bookingRepo.ExistsAt(ctx, slot.VenueID, slot.SpaceID, slot.Date, slot.StartTime)
		if err != nil {
			return nil, fmt.Errorf("check booking: %w", err)
		}
		if occupied {
			return nil, domain.ErrSlotOccupied
		}
	}

	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	startMin, endMin, err := validateTimeRange(start, end)
	if err != nil {
		return nil, err
	}

	overlap, err := s.hasOverlap(ctx, slot.VenueID, slot.SpaceID, date, startMin, endMin, slot.ID)
	if err != nil {
		return nil, fmt.Errorf("check overlap: %w", err)
	}
	if overlap {
		return nil, domain.ErrSlotOverlap
	}

	slot.Date = date
	slot.StartTime = start
	slot.EndTime = end
	if input.Price != nil {
		slot.Price = *input.Price
	}
	slot.UpdatedAt = time.Now().UTC()

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}

	return slot, nil
}

func (s *SlotService) DeleteCustom(ctx context.Context, slotID string) error {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return fmt.Errorf("get slot: %w", err)
	}

	occupied, err := s.bookingRepo.ExistsAt(ctx, slot.VenueID, slot.SpaceID, slot.Date, slot.StartTime)
	if err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if occupied {
		return domain.ErrSlotOccupied
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	s.logger.Info("slot deleted", logger.String("slot_id", slotID))

	return nil
}

// BulkGenerate materializes hourly slots for every date in the range from
// the venue's operating hours. Dates the venue is closed contribute
// nothing; hours covered by an active custom slot and slots that already
// exist are counted as skipped rather than failing the batch.
func (s *SlotService) BulkGenerate(ctx context.Context, input domain.GenerateSlotsInput) (*domain.GenerateResult, error) {
	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", domain.ErrValidation)
	}

	venue, err := s.venueRepo.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}
	if _, err := s.venueRepo.GetSpace(ctx, input.VenueID, input.SpaceID); err != nil {
		return nil, fmt.Errorf("check space: %w", err)
	}
	if len(venue.Hours) == 0 {
		return nil, domain.ErrNoOperatingHours
	}

	var dates []string
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}

	// Custom slots take precedence over auto-generation. The unique index
	// only closes identical start keys, so custom coverage has to be
	// checked here with the interval predicate.
	custom, err := s.slotRepo.ListActiveCustom(ctx, input.VenueID, input.SpaceID, dates)
	if err != nil {
		return nil, fmt.Errorf("list custom slots: %w", err)
	}
	type interval struct{ start, end int }
	customByDate := make(map[string][]interval, len(custom))
	for _, c := range custom {
		start, err := timeofday.Minutes(c.StartTime)
		if err != nil {
			return nil, fmt.Errorf("slot %s start: %w", c.ID, err)
		}
		end, err := timeofday.Minutes(c.EndTime)
		if err != nil {
			return nil, fmt.Errorf("slot %s end: %w", c.ID, err)
		}
		customByDate[c.Date] = append(customByDate[c.Date], interval{start: start, end: end})
	}

	price := input.Price
	if price <= 0 {
		price = slots.BasePrice
	}

	result := &domain.GenerateResult{Slots: []*domain.TimeSlot{}}
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		window := venue.Hours.WindowFor(d)
		if window == nil {
			continue
		}

		openHour, closeHour, err := slots.EffectiveHours(*window)
		if err != nil {
			return nil, fmt.Errorf("operating hours for %s: %w", domain.WeekdayName(d), err)
		}

		taken := customByDate[d.Format(dateLayout)]

		for h := openHour; h < closeHour; h++ {
			covered := false
			for _, iv := range taken {
				if slots.Overlaps(h*60, (h+1)*60, iv.start, iv.end) {
					covered = true
					break
				}
			}
			if covered {
				result.Skipped++
				continue
			}

			now := time.Now().UTC()
			slot := &domain.TimeSlot{
				ID:        uuid.New().String(),
				VenueID:   input.VenueID,
				SpaceID:   input.SpaceID,
				Date:      d.Format(dateLayout),
				StartTime: timeofday.TimeOfDay{Hour: h}.String(),
				EndTime:   timeofday.TimeOfDay{Hour: h + 1}.String(),
				Price:     price,
				IsCustom:  false,
				IsActive:  true,
				CreatedBy: input.CreatedBy,
				CreatedAt: now,
				UpdatedAt: now,
			}

			err := s.slotRepo.Create(ctx, slot)
			switch {
			case err == nil:
				result.Created++
				result.Slots = append(result.Slots, slot)
			case errors.Is(err, domain.ErrSlotOverlap):
				result.Skipped++
			default:
				return nil, fmt.Errorf("create slot %s %s: %w", slot.Date, slot.StartTime, err)
			}
		}
	}

	s.logger.Info("slots generated",
		logger.String("venue_id", input.VenueID),
		logger.String("space_id", input.SpaceID),
		logger.Int("created", result.Created),
		logger.Int("skipped", result.Skipped),
	)

	return result, nil
}

// hasOverlap checks the candidate [start,end) minute interval against every
// other active custom slot for the same (venue, space, date). excludeID
// skips the slot being updated.
func (s *SlotService) hasOverlap(ctx context.Context, venueID, spaceID, date string, startMin, endMin int, excludeID string) (bool, error) {
	existing, err := s.slotRepo.ListActiveCustom(ctx, venueID, spaceID, []string{date})
	if err != nil {
		return false, err
	}

	for _, other := range existing {
		if other.ID == excludeID {
			continue
		}
		otherStart, err := timeofday.Minutes(other.StartTime)
		if err != nil {
			return false, fmt.Errorf("slot %s start: %w", other.ID, err)
		}
		otherEnd, err := timeofday.Minutes(other.EndTime)
		if err != nil {
			return false, fmt.Errorf("slot %s end: %w", other.ID, err)
		}
		if slots.Overlaps(startMin, endMin, otherStart, otherEnd) {
			return true, nil
		}
	}

	return false, nil
}
