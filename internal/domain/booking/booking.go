package booking

import (
	"context"
	"errors"
	"time"

	"staybook/internal/domain/room"
	"staybook/internal/domain/shared/daterange"
	"staybook/internal/domain/shared/events"
	"staybook/internal/domain/user"
)

var (
	// ErrPastDate rejects stays whose arrival or departure is today or
	// earlier. Only strictly future dates are bookable.
	ErrPastDate = errors.New("booking: dates must be in the future")

	// ErrBlockedDateTaken surfaces the store's uniqueness backstop on
	// (room, date) when a concurrent writer got there first.
	ErrBlockedDateTaken = errors.New("booking: blocked date already taken")
)

type BookingID int64

// Booking is immutable once created: there is no reschedule or cancel path,
// a committed booking keeps its blocked dates until the room is deleted.
type Booking struct {
	ID        BookingID
	RoomID    room.RoomID
	UserID    user.UserID
	Stay      daterange.Range
	CreatedAt time.Time

	events.EventRecorder
}

func New(roomID room.RoomID, userID user.UserID, stay daterange.Range, now time.Time) (*Booking, error) {
	if err := stay.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateStay(stay, now); err != nil {
		return nil, err
	}
	return &Booking{RoomID: roomID, UserID: userID, Stay: stay, CreatedAt: now.UTC()}, nil
}

// ValidateStay enforces the strictly-future rule: a stay touching today is
// rejected, tomorrow is the earliest bookable day.
func ValidateStay(stay daterange.Range, now time.Time) error {
	today := daterange.DateOf(now)
	if !stay.Arrival.After(today) || !stay.Departure.After(today) {
		return ErrPastDate
	}
	return nil
}

// Booked records the publication event once the store assigned an id.
func (b *Booking) Booked(now time.Time) {
	b.Record(RoomBookedEvent(b.UserID, b.Stay, now))
}

type Repository interface {
	List(ctx context.Context) ([]Booking, error)

	// Create persists the booking together with one blocked-date row per
	// day of the stay, all inside the caller's transaction.
	Create(ctx context.Context, b *Booking, blocked []daterange.Date) error
}
