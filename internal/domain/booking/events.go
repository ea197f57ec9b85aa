package booking

import (
	"strconv"
	"time"

	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/user"
)

// RoomBooked is published to the booking event topic after a successful
// commit. Dates travel as plain yyyy-mm-dd strings.
type RoomBooked struct {
	UserID       user.UserID `json:"userId"`
	CheckInDate  string      `json:"checkInDate"`
	CheckOutDate string      `json:"checkOutDate"`
	At           time.Time   `json:"-"`
}

func (e RoomBooked) EventName() string     { return "booking.room_booked" }
func (e RoomBooked) AggregateID() string   { return strconv.FormatInt(int64(e.UserID), 10) }
func (e RoomBooked) OccurredAt() time.Time { return e.At }

func RoomBookedEvent(userID user.UserID, stay daterange.Range, at time.Time) RoomBooked {
	return RoomBooked{
		UserID:       userID,
		CheckInDate:  stay.Arrival.String(),
		CheckOutDate: stay.Departure.String(),
		At:           at.UTC(),
	}
}
