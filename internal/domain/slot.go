package domain

import "time"

// TimeSlot is a persisted bookable interval. Custom slots are explicit
// administrator overrides; non-custom slots are materialized by the
// bulk-generate operation.
type TimeSlot struct {
	ID        string    `json:"id"`
	VenueID   string    `json:"venueId"`
	SpaceID   string    `json:"spaceId"`
	Date      string    `json:"date"`      // YYYY-MM-DD
	StartTime string    `json:"startTime"` // HH:MM
	EndTime   string    `json:"endTime"`   // HH:MM
	Price     int       `json:"price"`
	IsCustom  bool      `json:"isCustom"`
	IsActive  bool      `json:"isActive"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AvailabilitySlot is the derived per-hour availability view. It has no
// lifecycle of its own: it is recomputed on every read from operating
// hours, custom slots and booking occupancy.
type AvailabilitySlot struct {
	ID               string `json:"id"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Available        bool   `json:"available"`
	Price            int    `json:"price"`
	EventName        string `json:"eventName,omitempty"`
	BookedBy         string `json:"bookedBy,omitempty"`
	BookedByUsername string `json:"bookedByUsername,omitempty"`
	BookingID        string `json:"bookingId,omitempty"`
	IsCustom         bool   `json:"isCustom"`
}

// SpaceAvailability is the full listing returned for one space.
type SpaceAvailability struct {
	VenueID   string             `json:"venueId"`
	SpaceID   string             `json:"spaceId"`
	SpaceName string             `json:"spaceName"`
	Slots     []AvailabilitySlot `json:"slots"`
}

type CreateSlotInput struct {
	VenueID   string
	SpaceID   string
	Date      string
	StartTime string
	EndTime   string
	Price     int
	CreatedBy string
}

// UpdateSlotInput carries partial updates; nil fields keep their value.
type UpdateSlotInput struct {
	Date      *string
	StartTime *string
	EndTime   *string
	Price     *int
}

type GenerateSlotsInput struct {
	VenueID   string
	SpaceID   string
	StartDate string
	EndDate   string
	Price     int
	CreatedBy string
}

// GenerateResult reports a bulk-generate run. Skipped counts slots that
// already existed; that is designed partial success, not an error.
type GenerateResult struct {
	Created int         `json:"created"`
	Skipped int         `json:"skipped"`
	Slots   []*TimeSlot `json:"slots"`
}
