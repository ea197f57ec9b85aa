package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/dto"
	"staybook/internal/app/handlers/rooms"
)

type RoomHandler struct {
	Service *rooms.Service
}

var _ RoomHTTP = RoomHandler{}

func (h RoomHandler) List(c *gin.Context) {
	q := rooms.ListQuery{
		ID:            queryInt64(c, "id"),
		Name:          c.Query("name"),
		MinPrice:      queryFloat(c, "min_price"),
		MaxPrice:      queryFloat(c, "max_price"),
		GuestCount:    queryInt(c, "guest_count"),
		HotelID:       queryInt64(c, "hotel_id"),
		ArrivalDate:   c.Query("arrival_date"),
		DepartureDate: c.Query("departure_date"),
		PageSize:      queryInt(c, "page_size"),
		PageNumber:    queryInt(c, "page_number"),
	}
	res, err := h.Service.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h RoomHandler) Create(c *gin.Context) {
	var req dto.UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpsertRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
