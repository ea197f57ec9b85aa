package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/shared/daterange"
)

var now = time.Date(2024, 6, 10, 15, 4, 5, 0, time.UTC)

func stayFrom(t *testing.T, arrival, departure string) daterange.Range {
	t.Helper()
	a, err := daterange.ParseDate(arrival)
	require.NoError(t, err)
	d, err := daterange.ParseDate(departure)
	require.NoError(t, err)
	return daterange.Range{Arrival: a, Departure: d}
}

func TestValidateStay_TodayIsNotFuture(t *testing.T) {
	err := booking.ValidateStay(stayFrom(t, "2024-06-10", "2024-06-12"), now)
	assert.ErrorIs(t, err, booking.ErrPastDate)
}

func TestValidateStay_TomorrowIsBookable(t *testing.T) {
	err := booking.ValidateStay(stayFrom(t, "2024-06-11", "2024-06-12"), now)
	assert.NoError(t, err)
}

func TestValidateStay_PastArrivalRejected(t *testing.T) {
	err := booking.ValidateStay(stayFrom(t, "2024-06-01", "2024-06-12"), now)
	assert.ErrorIs(t, err, booking.ErrPastDate)
}

func TestNew_RejectsInvertedStay(t *testing.T) {
	_, err := booking.New(1, 1, stayFrom(t, "2024-06-15", "2024-06-11"), now)
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}

func TestNew_RecordsNothingUntilBooked(t *testing.T) {
	b, err := booking.New(1, 7, stayFrom(t, "2024-06-11", "2024-06-12"), now)
	require.NoError(t, err)
	assert.Empty(t, b.PendingEvents())

	b.ID = 42
	b.Booked(now)
	evs := b.PendingEvents()
	require.Len(t, evs, 1)

	ev, ok := evs[0].(booking.RoomBooked)
	require.True(t, ok)
	assert.Equal(t, "2024-06-11", ev.CheckInDate)
	assert.Equal(t, "2024-06-12", ev.CheckOutDate)
	assert.Equal(t, "7", ev.AggregateID())
}
