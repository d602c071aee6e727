package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/domain"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/handler/dto"
	hmocks "github.com/oconnor-pat/BetterpPlay-BE/internal/handler/mocks"
	"github.com/oconnor-pat/BetterpPlay-BE/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

// asUser stands in for the auth middleware and stamps the request identity.
func asUser(id string, admin bool) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, id)
		c.Set(middleware.IsAdminKey, admin)
		c.Next()
	}
}

type testMocks struct {
	slotSvc         *hmocks.MockSlotSvc
	availabilitySvc *hmocks.MockAvailabilitySvc
	bookingSvc      *hmocks.MockBookingSvc
	venueSvc        *hmocks.MockVenueSvc
}

func setupRouter(t *testing.T, identity ginext.HandlerFunc) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		slotSvc:         hmocks.NewMockSlotSvc(t),
		availabilitySvc: hmocks.NewMockAvailabilitySvc(t),
		bookingSvc:      hmocks.NewMockBookingSvc(t),
		venueSvc:        hmocks.NewMockVenueSvc(t),
	}

	h := NewHandler(m.slotSvc, m.availabilitySvc, m.bookingSvc, m.venueSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	if identity != nil {
		api.Use(identity)
	}
	{
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:venueId", h.GetVenue)
		api.GET("/venues/:venueId/spaces/:spaceId/timeslots", h.ListSlots)
		api.POST("/venues", h.CreateVenue)
		api.POST("/venues/:venueId/spaces/:spaceId/slots", h.CreateSlot)
		api.PUT("/venues/:venueId/spaces/:spaceId/slots/:slotId", h.UpdateSlot)
		api.DELETE("/venues/:venueId/spaces/:spaceId/slots/:slotId", h.DeleteSlot)
		api.POST("/venues/:venueId/spaces/:spaceId/generate-slots", h.GenerateSlots)
		api.POST("/venues/:venueId/spaces/:spaceId/book", h.BookSlot)
		api.PATCH("/bookings/:id/cancel", h.CancelBooking)
		api.PATCH("/bookings/:id/confirm", h.ConfirmBooking)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Availability ---

func TestHandler_ListSlots_Success(t *testing.T) {
	m, r := setupRouter(t, nil)

	availability := &domain.SpaceAvailability{
		VenueID:   "v1",
		SpaceID:   "s1",
		SpaceName: "Court A",
		Slots: []domain.AvailabilitySlot{
			{ID: "2025-06-09-10:00", Date: "2025-06-09", StartTime: "10:00", EndTime: "11:00", Available: true, Price: 150},
		},
	}

	m.availabilitySvc.EXPECT().ListSlots(mock.Anything, "v1", "s1", "2025-06-09", "", "").Return(availability, nil)

	w := doJSON(t, r, http.MethodGet, "/api/venues/v1/spaces/s1/timeslots?date=2025-06-09", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.SpaceAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Court A", resp.SpaceName)
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].Available)
}

func TestHandler_ListSlots_VenueNotFound(t *testing.T) {
	m, r := setupRouter(t, nil)

	m.availabilitySvc.EXPECT().ListSlots(mock.Anything, "missing", "s1", "", "", "").Return(nil, domain.ErrVenueNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/venues/missing/spaces/s1/timeslots", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Slots ---

func TestHandler_CreateSlot_Success(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	slot := &domain.TimeSlot{
		ID: uuid.New().String(), VenueID: "v1", SpaceID: "s1",
		Date: "2025-06-09", StartTime: "18:30", EndTime: "20:00",
		Price: 200, IsCustom: true, IsActive: true,
		CreatedAt: time.Now(),
	}

	m.slotSvc.EXPECT().CreateCustom(mock.Anything, mock.Anything).Return(slot, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/slots", dto.CreateSlotRequest{
		Date:      "2025-06-09",
		StartTime: "18:30",
		EndTime:   "20:00",
		Price:     200,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "18:30", resp.StartTime)
	assert.True(t, resp.IsCustom)
}

func TestHandler_CreateSlot_Overlap(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	m.slotSvc.EXPECT().CreateCustom(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotOverlap)

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/slots", dto.CreateSlotRequest{
		Date:      "2025-06-09",
		StartTime: "18:30",
		EndTime:   "20:00",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateSlot_BadRequest(t *testing.T) {
	_, r := setupRouter(t, asUser("admin", true))

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/slots", map[string]string{"date": "2025-06-09"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSlot_InvalidID(t *testing.T) {
	_, r := setupRouter(t, asUser("admin", true))

	w := doJSON(t, r, http.MethodPut, "/api/venues/v1/spaces/s1/slots/not-a-uuid", dto.UpdateSlotRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteSlot_Occupied(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	slotID := uuid.New().String()
	m.slotSvc.EXPECT().DeleteCustom(mock.Anything, slotID).Return(domain.ErrSlotOccupied)

	w := doJSON(t, r, http.MethodDelete, "/api/venues/v1/spaces/s1/slots/"+slotID, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GenerateSlots_Success(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	result := &domain.GenerateResult{
		Created: 6,
		Skipped: 2,
		Slots:   []*domain.TimeSlot{},
	}

	m.slotSvc.EXPECT().BulkGenerate(mock.Anything, mock.Anything).Return(result, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/generate-slots", dto.GenerateSlotsRequest{
		StartDate: "2025-06-09",
		EndDate:   "2025-06-15",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.GenerateSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Created)
	assert.Equal(t, 2, resp.Skipped)
}

func TestHandler_GenerateSlots_NoOperatingHours(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	m.slotSvc.EXPECT().BulkGenerate(mock.Anything, mock.Anything).Return(nil, domain.ErrNoOperatingHours)

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/generate-slots", dto.GenerateSlotsRequest{
		StartDate: "2025-06-09",
		EndDate:   "2025-06-15",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_BookSlot_Success(t *testing.T) {
	m, r := setupRouter(t, asUser("u1", false))

	booking := &domain.Booking{
		ID: uuid.New().String(), VenueID: "v1", SpaceID: "s1",
		Date: "2025-06-09", StartTime: "10:00", EndTime: "11:00",
		UserID: "u1", EventName: "Pickup soccer",
		Status: domain.BookingStatusPending, CreatedAt: time.Now(),
	}

	m.bookingSvc.EXPECT().Book(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.UserID == "u1" && in.VenueID == "v1" && in.StartTime == "10:00"
	})).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/book", dto.CreateBookingRequest{
		Date:      "2025-06-09",
		StartTime: "10:00",
		EndTime:   "11:00",
		EventName: "Pickup soccer",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "u1", resp.UserID)
}

func TestHandler_BookSlot_Taken(t *testing.T) {
	m, r := setupRouter(t, asUser("u1", false))

	m.bookingSvc.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrSlotTaken)

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/book", dto.CreateBookingRequest{
		Date:      "2025-06-09",
		StartTime: "10:00",
		EndTime:   "11:00",
		EventName: "Pickup soccer",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_BookSlot_MissingEventName(t *testing.T) {
	_, r := setupRouter(t, asUser("u1", false))

	w := doJSON(t, r, http.MethodPost, "/api/venues/v1/spaces/s1/book", map[string]string{
		"date":      "2025-06-09",
		"startTime": "10:00",
		"endTime":   "11:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	m, r := setupRouter(t, asUser("u1", false))

	bookingID := uuid.New().String()
	m.bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, "u1", false).Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	m, r := setupRouter(t, asUser("u2", false))

	bookingID := uuid.New().String()
	m.bookingSvc.EXPECT().Cancel(mock.Anything, bookingID, "u2", false).Return(domain.ErrForbidden)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ConfirmBooking_NotPending(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	bookingID := uuid.New().String()
	m.bookingSvc.EXPECT().Confirm(mock.Anything, bookingID).Return(domain.ErrBookingNotPending)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"/confirm", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserBookings_Owner(t *testing.T) {
	m, r := setupRouter(t, asUser("u1", false))

	bookings := []*domain.Booking{
		{ID: "b1", UserID: "u1", Date: "2025-06-09", StartTime: "10:00", Status: domain.BookingStatusConfirmed},
	}
	m.bookingSvc.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/u1/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "b1", resp[0].ID)
}

func TestHandler_GetUserBookings_OtherUser(t *testing.T) {
	_, r := setupRouter(t, asUser("u2", false))

	w := doJSON(t, r, http.MethodGet, "/api/users/u1/bookings", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetUserBookings_Admin(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	m.bookingSvc.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/u1/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	m, r := setupRouter(t, asUser("admin", true))

	venue := &domain.Venue{
		ID:   uuid.New().String(),
		Name: "Riverside Park",
		Spaces: []domain.Space{
			{ID: uuid.New().String(), Name: "Field 1"},
		},
		CreatedAt: time.Now(),
	}

	m.venueSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(venue, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{
		Name:   "Riverside Park",
		Spaces: []dto.CreateSpaceRequest{{Name: "Field 1"}},
		Hours: map[string]dto.OperatingHours{
			"monday": {Open: "09:00", Close: "17:00"},
		},
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Riverside Park", resp.Name)
	require.Len(t, resp.Spaces, 1)
}

func TestHandler_GetVenue_NotFound(t *testing.T) {
	m, r := setupRouter(t, nil)

	m.venueSvc.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrVenueNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/venues/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
