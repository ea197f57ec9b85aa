package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/dto"
	"staybook/internal/app/handlers/bookings"
)

type BookingHandler struct {
	CreateHandler *bookings.CreateBookingHandler
	ListHandler   *bookings.ListBookingsHandler
}

var _ BookingHTTP = BookingHandler{}

func (h BookingHandler) List(c *gin.Context) {
	res, err := h.ListHandler.Handle(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h BookingHandler) Create(c *gin.Context) {
	var req dto.UpsertBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd := bookings.CreateBookingCommand{
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		RoomID:        req.RoomID,
		UserID:        req.UserID,
	}
	res, err := h.CreateHandler.Handle(c.Request.Context(), cmd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}
