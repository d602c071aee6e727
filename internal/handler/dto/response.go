package dto

import (
	"time"

	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
)

type SlotResponse struct {
	ID        string `json:"id"`
	VenueID   string `json:"venueId"`
	SpaceID   string `json:"spaceId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Price     int    `json:"price"`
	IsCustom  bool   `json:"isCustom"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

type GenerateSlotsResponse struct {
	Created int            `json:"created"`
	Skipped int            `json:"skipped"`
	Slots   []SlotResponse `json:"slots"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	VenueID   string `json:"venueId"`
	SpaceID   string `json:"spaceId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	UserID    string `json:"userId"`
	EventName string `json:"eventName"`
	Notes     string `json:"notes,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type VenueResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	VenueType string                    `json:"venueType,omitempty"`
	Address   string                    `json:"address,omitempty"`
	Latitude  float64                   `json:"latitude,omitempty"`
	Longitude float64                   `json:"longitude,omitempty"`
	Spaces    []SpaceResponse           `json:"spaces,omitempty"`
	Hours     map[string]OperatingHours `json:"operatingHours,omitempty"`
	CreatedAt string                    `json:"createdAt"`
}

type SpaceResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SpaceType string `json:"spaceType,omitempty"`
	Capacity  int    `json:"capacity"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSlotResponse(s *domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		VenueID:   s.VenueID,
		SpaceID:   s.SpaceID,
		Date:      s.Date,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Price:     s.Price,
		IsCustom:  s.IsCustom,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func ToGenerateSlotsResponse(r *domain.GenerateResult) GenerateSlotsResponse {
	slots := make([]SlotResponse, 0, len(r.Slots))
	for _, s := range r.Slots {
		slots = append(slots, ToSlotResponse(s))
	}

	return GenerateSlotsResponse{
		Created: r.Created,
		Skipped: r.Skipped,
		Slots:   slots,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		VenueID:   b.VenueID,
		SpaceID:   b.SpaceID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		UserID:    b.UserID,
		EventName: b.EventName,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	resp := VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		VenueType: v.VenueType,
		Address:   v.Address,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
	for _, sp := range v.Spaces {
		resp.Spaces = append(resp.Spaces, SpaceResponse{
			ID:        sp.ID,
			Name:      sp.Name,
			SpaceType: sp.SpaceType,
			Capacity:  sp.Capacity,
		})
	}
	if len(v.Hours) > 0 {
		resp.Hours = make(map[string]OperatingHours, len(v.Hours))
		for day, w := range v.Hours {
			resp.Hours[day] = OperatingHours{Open: w.Open, Close: w.Close}
		}
	}

	return resp
}
