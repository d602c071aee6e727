package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/timeofday"
)

const dateLayout = "2006-01-02"

// Slot boundaries on the write path are strict 24-hour HH:MM; the looser
// AM/PM forms are only accepted where venue operating hours are read.
var slotTimePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, s)
	}
	return d, nil
}

// validateTimeRange checks both boundaries are well-formed 24-hour times
// with end after start, and returns them as minutes since midnight.
func validateTimeRange(start, end string) (int, int, error) {
	if !slotTimePattern.MatchString(start) {
		return 0, 0, fmt.Errorf("%w: invalid startTime %q, expected HH:MM", domain.ErrValidation, start)
	}
	if !slotTimePattern.MatchString(end) {
		return 0, 0, fmt.Errorf("%w: invalid endTime %q, expected HH:MM", domain.ErrValidation, end)
	}

	startMin, err := timeofday.Minutes(start)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	endMin, err := timeofday.Minutes(end)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if endMin <= startMin {
		return 0, 0, fmt.Errorf("%w: endTime must be after startTime", domain.ErrValidation)
	}

	return startMin, endMin, nil
}
