// Package slots derives the hourly availability grid for a space from its
// venue's operating hours and any administrator-defined custom slots.
package slots

import (
	"fmt"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/timeofday"
)

// BasePrice is the venue-independent hourly rate applied to auto-generated
// slots when no explicit price is given.
const BasePrice = 150

const slotMinutes = 60

// EffectiveHours converts an operating window into the bookable hour range
// [open, close). An open time with nonzero minutes rounds up to the next
// full hour; a close time with nonzero minutes floors, so a partial last
// hour is never bookable.
func EffectiveHours(w domain.OperatingWindow) (int, int, error) {
	open, err := timeofday.Parse(w.Open)
	if err != nil {
		return 0, 0, fmt.Errorf("open time: %w", err)
	}
	closing, err := timeofday.Parse(w.Close)
	if err != nil {
		return 0, 0, fmt.Errorf("close time: %w", err)
	}

	openHour := open.Hour
	if open.Minute > 0 {
		openHour++
	}

	return openHour, closing.Hour, nil
}

// Overlaps reports whether the half-open minute intervals [s1,e1) and
// [s2,e2) intersect. Touching endpoints do not overlap, so back-to-back
// slots are allowed.
func Overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && e1 > s2
}

// Generate produces one 60-minute slot per effective operating hour of the
// date, suppressing hours covered by a custom slot: custom slots take
// precedence and are never duplicated by auto-generation. A nil window
// (venue closed that weekday) yields no slots. Output depends only on the
// inputs.
func Generate(date string, window *domain.OperatingWindow, custom []*domain.TimeSlot) ([]domain.AvailabilitySlot, error) {
	if window == nil {
		return nil, nil
	}

	openHour, closeHour, err := EffectiveHours(*window)
	if err != nil {
		return nil, err
	}

	type interval struct{ start, end int }
	taken := make([]interval, 0, len(custom))
	for _, c := range custom {
		start, err := timeofday.Minutes(c.StartTime)
		if err != nil {
			return nil, fmt.Errorf("custom slot %s start: %w", c.ID, err)
		}
		end, err := timeofday.Minutes(c.EndTime)
		if err != nil {
			return nil, fmt.Errorf("custom slot %s end: %w", c.ID, err)
		}
		taken = append(taken, interval{start: start, end: end})
	}

	var out []domain.AvailabilitySlot
	for h := openHour; h < closeHour; h++ {
		start := h * slotMinutes
		end := start + slotMinutes

		covered := false
		for _, iv := range taken {
			if Overlaps(start, end, iv.start, iv.end) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}

		out = append(out, domain.AvailabilitySlot{
			ID:        fmt.Sprintf("%s-%02d:00", date, h),
			Date:      date,
			StartTime: fmt.Sprintf("%02d:00", h),
			EndTime:   fmt.Sprintf("%02d:00", h+1),
			Available: true,
			Price:     BasePrice,
		})
	}

	return out, nil
}
