package ginserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/app/handlers/stats"
	"staybook/internal/app/policies"
	ginserver "staybook/internal/infra/http/gin"
	"staybook/internal/infra/obs"
)

type fixedAnalytics struct{}

func (fixedAnalytics) RoomBookedEvents(ctx context.Context) ([]policies.RoomBookedRecord, error) {
	return []policies.RoomBookedRecord{
		{UserID: 7, CheckInDate: "2024-06-11", CheckOutDate: "2024-06-13"},
	}, nil
}

func (fixedAnalytics) UserRegisteredEvents(ctx context.Context) ([]policies.UserRegisteredRecord, error) {
	return []policies.UserRegisteredRecord{{UserID: 7}}, nil
}

func newStatsRouter(fallbackDir string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handlers := ginserver.Handlers{
		Stats: ginserver.StatsHandler{
			Handler:   &stats.ExportHandler{Analytics: fixedAnalytics{}},
			ExportDir: fallbackDir,
		},
	}
	return ginserver.NewRouter(obs.Middleware{}, obs.HealthHandlers{}, handlers)
}

func TestStatsExport_RequestSuppliedFolder(t *testing.T) {
	fallback := t.TempDir()
	requested := filepath.Join(t.TempDir(), "reports")
	router := newStatsRouter(fallback)

	target := "/api/v1/stats/export?path_to_folder=" + url.QueryEscape(requested)
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	booked, err := os.ReadFile(filepath.Join(requested, "exportedRoomBookedEventData.csv"))
	require.NoError(t, err)
	assert.Equal(t, "userId;checkInDate;checkOutDate\n7;2024-06-11;2024-06-13\n", string(booked))

	_, err = os.Stat(filepath.Join(fallback, "exportedRoomBookedEventData.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestStatsExport_FallsBackToConfiguredFolder(t *testing.T) {
	fallback := t.TempDir()
	router := newStatsRouter(fallback)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stats/export", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	_, err := os.Stat(filepath.Join(fallback, "exportedUserRegisteredEventData.csv"))
	assert.NoError(t, err)
}
