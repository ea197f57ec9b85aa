package availability

import (
	"errors"

	"staybook/internal/domain/room"
	"staybook/internal/domain/shared/daterange"
)

var (
	// ErrDateConflict means the room is already booked for part or all of
	// the requested range.
	ErrDateConflict = errors.New("availability: range overlaps with existing blocked dates")
)

// Calendar is a room's committed blocked-date set at the instant the
// surrounding transaction read it. It is a pure value: checking it has no
// side effects and identical inputs always yield identical decisions.
type Calendar struct {
	RoomID  room.RoomID
	Blocked []daterange.Date
}

func NewCalendar(id room.RoomID, blocked []daterange.Date) *Calendar {
	return &Calendar{RoomID: id, Blocked: blocked}
}

// CanReserve reports whether the stay shares no day with any blocked date.
// Each blocked date is a single-day range, so the general interval-overlap
// law (a1 <= d2 && a2 <= d1) degenerates to a per-day containment test.
func (c *Calendar) CanReserve(stay daterange.Range) bool {
	for _, b := range c.Blocked {
		if stay.Overlaps(daterange.Range{Arrival: b, Departure: b}) {
			return false
		}
	}
	return true
}

// CheckAndExpand decides whether the stay can be booked and, on acceptance,
// returns every calendar day that must be newly blocked: the full inclusive
// sequence [arrival .. departure]. The result is disjoint from the existing
// blocked set by construction, so duplicates are impossible.
func (c *Calendar) CheckAndExpand(stay daterange.Range) ([]daterange.Date, error) {
	if err := stay.Validate(); err != nil {
		return nil, err
	}
	if !c.CanReserve(stay) {
		return nil, ErrDateConflict
	}
	return stay.Days(), nil
}
