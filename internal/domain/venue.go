package domain

import (
	"strings"
	"time"
)

type Venue struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	VenueType string         `json:"venueType"`
	Address   string         `json:"address"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Spaces    []Space        `json:"spaces"`
	Hours     OperatingHours `json:"operatingHours"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Space is a bookable sub-area of a venue (a court, a hall).
type Space struct {
	ID        string `json:"id"`
	VenueID   string `json:"venueId"`
	Name      string `json:"name"`
	SpaceType string `json:"spaceType"`
	Capacity  int    `json:"capacity"`
}

// OperatingWindow is a venue's open/close times for one weekday,
// both in 24-hour "HH:MM" form.
type OperatingWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OperatingHours maps a lowercase weekday name ("monday") to its window.
// A missing weekday means the venue is closed that day.
type OperatingHours map[string]OperatingWindow

// WindowFor returns the operating window for the weekday of date,
// or nil when the venue is closed that day.
func (h OperatingHours) WindowFor(date time.Time) *OperatingWindow {
	w, ok := h[WeekdayName(date)]
	if !ok {
		return nil
	}
	return &w
}

func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

type CreateVenueInput struct {
	Name      string
	VenueType string
	Address   string
	Latitude  float64
	Longitude float64
	Spaces    []CreateSpaceInput
	Hours     OperatingHours
}

type CreateSpaceInput struct {
	Name      string
	SpaceType string
	Capacity  int
}
