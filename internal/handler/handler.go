package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/handler/dto"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type SlotSvc interface {
	CreateCustom(ctx context.Context, input domain.CreateSlotInput) (*domain.TimeSlot, error)
	UpdateCustom(ctx context.Context, slotID string, input domain.UpdateSlotInput) (*domain.TimeSlot, error)
	DeleteCustom(ctx context.Context, slotID string) error
	BulkGenerate(ctx context.Context, input domain.GenerateSlotsInput) (*domain.GenerateResult, error)
}

type AvailabilitySvc interface {
	ListSlots(ctx context.Context, venueID, spaceID, date, startDate, endDate string) (*domain.SpaceAvailability, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, requesterID string, requesterIsAdmin bool) error
	Confirm(ctx context.Context, bookingID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

type Handler struct {
	slotService         SlotSvc
	availabilityService AvailabilitySvc
	bookingService      BookingSvc
	venueService        VenueSvc
}

func NewHandler(slotService SlotSvc, availabilityService AvailabilitySvc, bookingService BookingSvc, venueService VenueSvc) *Handler {
	return &Handler{
		slotService:         slotService,
		availabilityService: availabilityService,
		bookingService:      bookingService,
		venueService:        venueService,
	}
}

// Availability

func (h *Handler) ListSlots(c *ginext.Context) {
	availability, err := h.availabilityService.ListSlots(
		c.Request.Context(),
		c.Param("venueId"),
		c.Param("spaceId"),
		c.Query("date"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

// Slots (admin)

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.CreateCustom(c.Request.Context(), domain.CreateSlotInput{
		VenueID:   c.Param("venueId"),
		SpaceID:   c.Param("spaceId"),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
		CreatedBy: c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) UpdateSlot(c *ginext.Context) {
	slotID := c.Param("slotId")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.UpdateCustom(c.Request.Context(), slotID, domain.UpdateSlotInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) DeleteSlot(c *ginext.Context) {
	slotID := c.Param("slotId")
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	if err := h.slotService.DeleteCustom(c.Request.Context(), slotID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GenerateSlots(c *ginext.Context) {
	var req dto.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.slotService.BulkGenerate(c.Request.Context(), domain.GenerateSlotsInput{
		VenueID:   c.Param("venueId"),
		SpaceID:   c.Param("spaceId"),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Price:     req.Price,
		CreatedBy: c.GetString(middleware.UserIDKey),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGenerateSlotsResponse(result))
}

// Bookings

func (h *Handler) BookSlot(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), domain.CreateBookingInput{
		VenueID:   c.Param("venueId"),
		SpaceID:   c.Param("spaceId"),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		UserID:    c.GetString(middleware.UserIDKey),
		EventName: req.EventName,
		Notes:     req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	err := h.bookingService.Cancel(
		c.Request.Context(),
		bookingID,
		c.GetString(middleware.UserIDKey),
		c.GetBool(middleware.IsAdminKey),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Confirm(c.Request.Context(), bookingID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID := c.Param("id")
	if userID != c.GetString(middleware.UserIDKey) && !c.GetBool(middleware.IsAdminKey) {
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "insufficient privileges"})
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateVenueInput{
		Name:      req.Name,
		VenueType: req.VenueType,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Hours:     domain.OperatingHours{},
	}
	for _, sp := range req.Spaces {
		input.Spaces = append(input.Spaces, domain.CreateSpaceInput{
			Name:      sp.Name,
			SpaceType: sp.SpaceType,
			Capacity:  sp.Capacity,
		})
	}
	for day, w := range req.Hours {
		input.Hours[day] = domain.OperatingWindow{Open: w.Open, Close: w.Close}
	}

	venue, err := h.venueService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	venue, err := h.venueService.GetByID(c.Request.Context(), c.Param("venueId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrSpaceNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSlotOverlap),
		errors.Is(err, domain.ErrSlotTaken),
		errors.Is(err, domain.ErrSlotOccupied),
		errors.Is(err, domain.ErrBookingNotPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNoOperatingHours):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
