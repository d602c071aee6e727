// Package timeofday normalizes heterogeneous time-of-day strings
// ("14:30", "2:30 PM") into minutes-since-midnight form.
package timeofday

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)?$`)

type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseError reports an input that matches neither the 24-hour nor the
// 12-hour form. Parsing never falls back to a default value.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse time of day %q", e.Input)
}

// Parse accepts 24-hour "HH:MM" and 12-hour "H:MM AM/PM" (case-insensitive,
// surrounding whitespace tolerated). With a meridiem marker, 12 AM maps to
// hour 0, 12 PM stays 12 and 1–11 PM gain 12 hours.
func Parse(input string) (TimeOfDay, error) {
	s := strings.ToUpper(strings.TrimSpace(input))

	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, &ParseError{Input: input}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if minute > 59 {
		return TimeOfDay{}, &ParseError{Input: input}
	}

	switch m[3] {
	case "AM":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, &ParseError{Input: input}
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, &ParseError{Input: input}
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour > 23 {
			return TimeOfDay{}, &ParseError{Input: input}
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes parses input and returns it as minutes since midnight.
func Minutes(input string) (int, error) {
	t, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return t.Minutes(), nil
}
