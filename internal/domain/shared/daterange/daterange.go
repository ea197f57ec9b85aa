package daterange

import (
	"errors"
	"time"
)

var (
	ErrInvalidRange = errors.New("daterange: arrival must not be after departure")
)

const dayLayout = "2006-01-02"

// Date is a calendar day without a time component, normalized to UTC midnight.
type Date struct {
	t time.Time
}

func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time    { return d.t }
func (d Date) String() string     { return d.t.Format(dayLayout) }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Next() Date         { return Date{t: d.t.AddDate(0, 0, 1)} }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }

// Range represents an inclusive stay interval [Arrival, Departure].
// A same-day stay is a valid single-day range.
type Range struct {
	Arrival   Date
	Departure Date
}

func New(arrival, departure Date) (Range, error) {
	r := Range{Arrival: arrival, Departure: departure}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

func (r Range) Validate() error {
	if r.Arrival.IsZero() || r.Departure.IsZero() {
		return ErrInvalidRange
	}
	if r.Arrival.After(r.Departure) {
		return ErrInvalidRange
	}
	return nil
}

// Nights counts the calendar days covered by the range, inclusive of both ends.
func (r Range) Nights() int {
	return int(r.Departure.t.Sub(r.Arrival.t).Hours()/24) + 1
}

// Days enumerates every calendar day of the range in chronological order.
func (r Range) Days() []Date {
	days := make([]Date, 0, r.Nights())
	for d := r.Arrival; !d.After(r.Departure); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// Overlaps reports whether two inclusive ranges share at least one day:
// a1 <= d2 && a2 <= d1.
func (r Range) Overlaps(other Range) bool {
	return !r.Arrival.After(other.Departure) && !other.Arrival.After(r.Departure)
}

// Contains reports whether the single day d falls inside the range.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Arrival) && !d.After(r.Departure)
}
