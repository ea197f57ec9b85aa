package dto

import domainbooking "staybook/internal/domain/booking"

type UpsertBookingRequest struct {
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
	RoomID        int64  `json:"room_id"`
	UserID        int64  `json:"user_id"`
}

type BookingResponse struct {
	ID            int64  `json:"id"`
	ArrivalDate   string `json:"arrival_date"`
	DepartureDate string `json:"departure_date"`
	RoomID        int64  `json:"room_id"`
	UserID        int64  `json:"user_id"`
}

type BookingListResponse struct {
	Items []BookingResponse `json:"items"`
}

func MapBooking(b *domainbooking.Booking) BookingResponse {
	return BookingResponse{
		ID:            int64(b.ID),
		ArrivalDate:   b.Stay.Arrival.String(),
		DepartureDate: b.Stay.Departure.String(),
		RoomID:        int64(b.RoomID),
		UserID:        int64(b.UserID),
	}
}

func MapBookings(bs []domainbooking.Booking) BookingListResponse {
	items := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		items = append(items, MapBooking(&bs[i]))
	}
	return BookingListResponse{Items: items}
}
