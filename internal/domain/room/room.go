package room

import (
	"context"
	"errors"

	"staybook/internal/domain/hotel"
	"staybook/internal/domain/shared/daterange"
)

var ErrNotFound = errors.New("room: not found")

type RoomID int64

type Room struct {
	ID          RoomID
	HotelID     hotel.HotelID
	Name        string
	Description string
	Number      int
	Price       float64
	Capacity    int
}

// Filter narrows room listings. When both Arrival and Departure are set the
// listing excludes rooms with any blocked date inside that inclusive window.
type Filter struct {
	ID         RoomID
	Name       string
	MinPrice   float64
	MaxPrice   float64
	GuestCount int
	HotelID    hotel.HotelID
	Stay       *daterange.Range
	PageSize   int
	PageNumber int
}

type Repository interface {
	ByID(ctx context.Context, id RoomID) (*Room, error)
	List(ctx context.Context, filter Filter) ([]Room, error)
	Create(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id RoomID) error

	// ByIDForUpdate resolves a room while holding a row lock for the rest
	// of the surrounding transaction. Booking creation reads blocked dates
	// under this lock so a concurrent request on the same room waits.
	ByIDForUpdate(ctx context.Context, id RoomID) (*Room, error)
	BlockedDates(ctx context.Context, id RoomID) ([]daterange.Date, error)
}
