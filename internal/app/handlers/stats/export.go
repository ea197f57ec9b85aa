package stats

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"staybook/internal/app/policies"
)

const (
	roomBookedFile     = "exportedRoomBookedEventData.csv"
	userRegisteredFile = "exportedUserRegisteredEventData.csv"
)

// ExportHandler dumps the analytics collections into semicolon-separated
// CSV files inside a caller-supplied directory.
type ExportHandler struct {
	Analytics policies.AnalyticsReader
}

type ExportResult struct {
	Files []string `json:"files"`
}

func (h *ExportHandler) Handle(ctx context.Context, dir string) (ExportResult, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ExportResult{}, fmt.Errorf("stats: create export directory: %w", err)
	}

	bookedPath := filepath.Join(dir, roomBookedFile)
	if err := h.exportRoomBooked(ctx, bookedPath); err != nil {
		return ExportResult{}, err
	}
	registeredPath := filepath.Join(dir, userRegisteredFile)
	if err := h.exportUserRegistered(ctx, registeredPath); err != nil {
		return ExportResult{}, err
	}
	return ExportResult{Files: []string{bookedPath, registeredPath}}, nil
}

func (h *ExportHandler) exportRoomBooked(ctx context.Context, path string) error {
	records, err := h.Analytics.RoomBookedEvents(ctx)
	if err != nil {
		return fmt.Errorf("stats: read room booked events: %w", err)
	}
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"userId", "checkInDate", "checkOutDate"})
	for _, r := range records {
		rows = append(rows, []string{strconv.FormatInt(r.UserID, 10), r.CheckInDate, r.CheckOutDate})
	}
	return writeCSV(path, rows)
}

func (h *ExportHandler) exportUserRegistered(ctx context.Context, path string) error {
	records, err := h.Analytics.UserRegisteredEvents(ctx)
	if err != nil {
		return fmt.Errorf("stats: read user registered events: %w", err)
	}
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"userId"})
	for _, r := range records {
		rows = append(rows, []string{strconv.FormatInt(r.UserID, 10)})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stats: create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	w.Comma = ';'
	err = w.WriteAll(rows)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("stats: write %s: %w", path, err)
	}
	return nil
}
