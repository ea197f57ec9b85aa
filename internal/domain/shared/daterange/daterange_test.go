package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/shared/daterange"
)

func mustDate(t *testing.T, s string) daterange.Date {
	t.Helper()
	d, err := daterange.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestDateOf_StripsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	d := daterange.DateOf(time.Date(2024, 6, 10, 23, 30, 0, 0, loc))
	assert.Equal(t, "2024-06-10", d.String())
}

func TestNew_RejectsInvertedRange(t *testing.T) {
	_, err := daterange.New(mustDate(t, "2024-06-15"), mustDate(t, "2024-06-10"))
	assert.ErrorIs(t, err, daterange.ErrInvalidRange)
}

func TestNew_AllowsSameDayStay(t *testing.T) {
	r, err := daterange.New(mustDate(t, "2024-06-10"), mustDate(t, "2024-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Nights())
	assert.Equal(t, []daterange.Date{mustDate(t, "2024-06-10")}, r.Days())
}

func TestDays_EnumeratesInclusiveRange(t *testing.T) {
	r, err := daterange.New(mustDate(t, "2024-06-13"), mustDate(t, "2024-06-15"))
	require.NoError(t, err)

	days := r.Days()
	require.Len(t, days, 3)
	assert.Equal(t, "2024-06-13", days[0].String())
	assert.Equal(t, "2024-06-14", days[1].String())
	assert.Equal(t, "2024-06-15", days[2].String())
}

func TestDays_CrossesMonthBoundary(t *testing.T) {
	r, err := daterange.New(mustDate(t, "2024-06-29"), mustDate(t, "2024-07-02"))
	require.NoError(t, err)

	days := r.Days()
	require.Len(t, days, 4)
	assert.Equal(t, "2024-07-01", days[2].String())
}

func TestOverlaps(t *testing.T) {
	base, err := daterange.New(mustDate(t, "2024-06-10"), mustDate(t, "2024-06-12"))
	require.NoError(t, err)

	cases := []struct {
		name       string
		arrival    string
		departure  string
		overlapped bool
	}{
		{"partial edge", "2024-06-11", "2024-06-13", true},
		{"fully nested", "2024-06-11", "2024-06-11", true},
		{"covering", "2024-06-08", "2024-06-20", true},
		{"shared single boundary day", "2024-06-12", "2024-06-14", true},
		{"adjacent after", "2024-06-13", "2024-06-15", false},
		{"adjacent before", "2024-06-08", "2024-06-09", false},
		{"disjoint", "2024-07-01", "2024-07-03", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other, err := daterange.New(mustDate(t, tc.arrival), mustDate(t, tc.departure))
			require.NoError(t, err)
			assert.Equal(t, tc.overlapped, base.Overlaps(other))
			assert.Equal(t, tc.overlapped, other.Overlaps(base))
		})
	}
}

func TestContains(t *testing.T) {
	r, err := daterange.New(mustDate(t, "2024-06-10"), mustDate(t, "2024-06-12"))
	require.NoError(t, err)

	assert.True(t, r.Contains(mustDate(t, "2024-06-10")))
	assert.True(t, r.Contains(mustDate(t, "2024-06-12")))
	assert.False(t, r.Contains(mustDate(t, "2024-06-13")))
	assert.False(t, r.Contains(mustDate(t, "2024-06-09")))
}
