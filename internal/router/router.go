package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSlots(c *ginext.Context)
	CreateSlot(c *ginext.Context)
	UpdateSlot(c *ginext.Context)
	DeleteSlot(c *ginext.Context)
	GenerateSlots(c *ginext.Context)
	BookSlot(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ConfirmBooking(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth, admin ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public reads
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:venueId", h.GetVenue)
		api.GET("/venues/:venueId/spaces/:spaceId/timeslots", h.ListSlots)

		authed := api.Group("")
		authed.Use(auth)
		{
			authed.POST("/venues/:venueId/spaces/:spaceId/book", h.BookSlot)
			authed.PATCH("/bookings/:id/cancel", h.CancelBooking)
			authed.GET("/users/:id/bookings", h.GetUserBookings)

			adm := authed.Group("")
			adm.Use(admin)
			{
				adm.POST("/venues", h.CreateVenue)
				adm.POST("/venues/:venueId/spaces/:spaceId/slots", h.CreateSlot)
				adm.PUT("/venues/:venueId/spaces/:spaceId/slots/:slotId", h.UpdateSlot)
				adm.DELETE("/venues/:venueId/spaces/:spaceId/slots/:slotId", h.DeleteSlot)
				adm.POST("/venues/:venueId/spaces/:spaceId/generate-slots", h.GenerateSlots)
				adm.PATCH("/bookings/:id/confirm", h.ConfirmBooking)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
