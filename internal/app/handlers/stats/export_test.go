package stats_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/app/handlers/stats"
	"staybook/internal/app/policies"
)

type fakeAnalytics struct {
	booked     []policies.RoomBookedRecord
	registered []policies.UserRegisteredRecord
}

func (f fakeAnalytics) RoomBookedEvents(ctx context.Context) ([]policies.RoomBookedRecord, error) {
	return f.booked, nil
}

func (f fakeAnalytics) UserRegisteredEvents(ctx context.Context) ([]policies.UserRegisteredRecord, error) {
	return f.registered, nil
}

func TestExport_WritesSemicolonSeparatedFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "stats")
	h := &stats.ExportHandler{Analytics: fakeAnalytics{
		booked: []policies.RoomBookedRecord{
			{UserID: 7, CheckInDate: "2024-06-11", CheckOutDate: "2024-06-13"},
		},
		registered: []policies.UserRegisteredRecord{{UserID: 7}, {UserID: 8}},
	}}

	res, err := h.Handle(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, res.Files, 2)

	booked, err := os.ReadFile(filepath.Join(dir, "exportedRoomBookedEventData.csv"))
	require.NoError(t, err)
	assert.Equal(t, "userId;checkInDate;checkOutDate\n7;2024-06-11;2024-06-13\n", string(booked))

	registered, err := os.ReadFile(filepath.Join(dir, "exportedUserRegisteredEventData.csv"))
	require.NoError(t, err)
	assert.Equal(t, "userId\n7\n8\n", string(registered))
}

func TestExport_EmptyCollectionsStillWriteHeaders(t *testing.T) {
	dir := t.TempDir()
	h := &stats.ExportHandler{Analytics: fakeAnalytics{}}

	_, err := h.Handle(context.Background(), dir)
	require.NoError(t, err)

	booked, err := os.ReadFile(filepath.Join(dir, "exportedRoomBookedEventData.csv"))
	require.NoError(t, err)
	assert.Equal(t, "userId;checkInDate;checkOutDate\n", string(booked))
}
