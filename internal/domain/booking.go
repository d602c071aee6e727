package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID         string        `json:"id"`
	VenueID    string        `json:"venueId"`
	SpaceID    string        `json:"spaceId"`
	Date       string        `json:"date"`      // YYYY-MM-DD
	StartTime  string        `json:"startTime"` // HH:MM
	EndTime    string        `json:"endTime"`   // HH:MM
	UserID     string        `json:"userId"`
	Username   string        `json:"username,omitempty"` // joined on range reads
	EventName  string        `json:"eventName"`
	Notes      string        `json:"notes,omitempty"`
	Status     BookingStatus `json:"status"`
	RemindedAt *time.Time    `json:"remindedAt,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

type CreateBookingInput struct {
	VenueID   string
	SpaceID   string
	Date      string
	StartTime string
	EndTime   string
	UserID    string
	EventName string
	Notes     string
}
