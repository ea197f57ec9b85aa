package ginserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/app/handlers/bookings"
	"staybook/internal/app/uow"
	domainhotel "staybook/internal/domain/hotel"
	domainroom "staybook/internal/domain/room"
	domainuser "staybook/internal/domain/user"
	ginserver "staybook/internal/infra/http/gin"
	"staybook/internal/infra/obs"
	"staybook/internal/infra/storage/memory"
)

func clock() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func newTestRouter(t *testing.T) (*gin.Engine, *memory.Store, domainroom.RoomID, domainuser.UserID) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()

	ctx := context.Background()
	unit, err := memory.Factory{Store: store}.Begin(ctx, uow.TxOptions{})
	require.NoError(t, err)
	h := &domainhotel.Hotel{Name: "Grand", City: "Riga"}
	require.NoError(t, unit.Hotels().Create(ctx, h))
	rm := &domainroom.Room{HotelID: h.ID, Name: "Suite", Number: 101, Price: 120, Capacity: 2}
	require.NoError(t, unit.Rooms().Create(ctx, rm))
	u := domainuser.New("guest", "guest@example.com", "hash", domainuser.RoleUser)
	require.NoError(t, unit.Users().Create(ctx, u))
	require.NoError(t, unit.Commit(ctx))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handlers := ginserver.Handlers{
		Booking: ginserver.BookingHandler{
			CreateHandler: &bookings.CreateBookingHandler{
				UoWFactory: memory.Factory{Store: store},
				Logger:     logger,
				Now:        clock,
			},
			ListHandler: &bookings.ListBookingsHandler{UoWFactory: memory.Factory{Store: store}},
		},
	}
	router := ginserver.NewRouter(obs.Middleware{}, obs.HealthHandlers{}, handlers)
	return router, store, rm.ID, u.ID
}

func postBooking(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPostBooking_Created(t *testing.T) {
	router, _, roomID, userID := newTestRouter(t)

	body := fmt.Sprintf(
		`{"arrival_date":"2024-06-13","departure_date":"2024-06-15","room_id":%d,"user_id":%d}`,
		roomID, userID)
	rec := postBooking(router, body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var res struct {
		ID            int64  `json:"id"`
		ArrivalDate   string `json:"arrival_date"`
		DepartureDate string `json:"departure_date"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotZero(t, res.ID)
	assert.Equal(t, "2024-06-13", res.ArrivalDate)
	assert.Equal(t, "2024-06-15", res.DepartureDate)
}

func TestPostBooking_OverlapConflicts(t *testing.T) {
	router, _, roomID, userID := newTestRouter(t)

	body := fmt.Sprintf(
		`{"arrival_date":"2024-06-13","departure_date":"2024-06-15","room_id":%d,"user_id":%d}`,
		roomID, userID)
	require.Equal(t, http.StatusCreated, postBooking(router, body).Code)

	overlap := fmt.Sprintf(
		`{"arrival_date":"2024-06-15","departure_date":"2024-06-16","room_id":%d,"user_id":%d}`,
		roomID, userID)
	assert.Equal(t, http.StatusConflict, postBooking(router, overlap).Code)

	adjacent := fmt.Sprintf(
		`{"arrival_date":"2024-06-16","departure_date":"2024-06-17","room_id":%d,"user_id":%d}`,
		roomID, userID)
	assert.Equal(t, http.StatusCreated, postBooking(router, adjacent).Code)
}

func TestPostBooking_ValidationErrors(t *testing.T) {
	router, _, roomID, userID := newTestRouter(t)

	past := fmt.Sprintf(
		`{"arrival_date":"2024-06-01","departure_date":"2024-06-02","room_id":%d,"user_id":%d}`,
		roomID, userID)
	assert.Equal(t, http.StatusBadRequest, postBooking(router, past).Code)

	inverted := fmt.Sprintf(
		`{"arrival_date":"2024-06-15","departure_date":"2024-06-13","room_id":%d,"user_id":%d}`,
		roomID, userID)
	assert.Equal(t, http.StatusBadRequest, postBooking(router, inverted).Code)

	missing := `{"arrival_date":"","departure_date":"","room_id":0,"user_id":0}`
	assert.Equal(t, http.StatusBadRequest, postBooking(router, missing).Code)
}

func TestPostBooking_UnknownRoomAndUser(t *testing.T) {
	router, _, roomID, userID := newTestRouter(t)

	noRoom := fmt.Sprintf(
		`{"arrival_date":"2024-06-13","departure_date":"2024-06-15","room_id":999,"user_id":%d}`,
		userID)
	assert.Equal(t, http.StatusNotFound, postBooking(router, noRoom).Code)

	noUser := fmt.Sprintf(
		`{"arrival_date":"2024-06-13","departure_date":"2024-06-15","room_id":%d,"user_id":999}`,
		roomID)
	assert.Equal(t, http.StatusNotFound, postBooking(router, noUser).Code)
}

func TestGetBookings_ListsCommittedBookings(t *testing.T) {
	router, _, roomID, userID := newTestRouter(t)

	body := fmt.Sprintf(
		`{"arrival_date":"2024-06-13","departure_date":"2024-06-15","room_id":%d,"user_id":%d}`,
		roomID, userID)
	require.Equal(t, http.StatusCreated, postBooking(router, body).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		Items []struct {
			ArrivalDate string `json:"arrival_date"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Items, 1)
	assert.Equal(t, "2024-06-13", res.Items[0].ArrivalDate)
}
