package dto

type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Price     int    `json:"price"`
}

// UpdateSlotRequest fields are all optional; omitted fields keep their
// stored values.
type UpdateSlotRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Price     *int    `json:"price"`
}

type GenerateSlotsRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Price     int    `json:"price"`
}

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	EventName string `json:"eventName" binding:"required"`
	Notes     string `json:"notes"`
}

type CreateVenueRequest struct {
	Name      string                    `json:"name" binding:"required"`
	VenueType string                    `json:"venueType"`
	Address   string                    `json:"address"`
	Latitude  float64                   `json:"latitude"`
	Longitude float64                   `json:"longitude"`
	Spaces    []CreateSpaceRequest      `json:"spaces" binding:"required,min=1,dive"`
	Hours     map[string]OperatingHours `json:"operatingHours"`
}

type CreateSpaceRequest struct {
	Name      string `json:"name" binding:"required"`
	SpaceType string `json:"spaceType"`
	Capacity  int    `json:"capacity"`
}

type OperatingHours struct {
	Open  string `json:"open" binding:"required"`
	Close string `json:"close" binding:"required"`
}
