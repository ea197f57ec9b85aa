package hotel

import (
	"context"
	"errors"
	"math"
)

var (
	ErrNotFound    = errors.New("hotel: not found")
	ErrInvalidMark = errors.New("hotel: mark must be between 1 and 5")
)

type HotelID int64

type Hotel struct {
	ID                 HotelID
	Name               string
	Title              string
	City               string
	Address            string
	DistanceFromCenter float64
	Rating             float64
	NumberOfRatings    int
}

// Filter narrows hotel listings; zero values mean "no constraint".
type Filter struct {
	ID              HotelID
	Name            string
	Title           string
	City            string
	Address         string
	Distance        float64
	Rating          float64
	NumberOfRatings int
	PageSize        int
	PageNumber      int
}

type Repository interface {
	ByID(ctx context.Context, id HotelID) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]Hotel, error)
	Create(ctx context.Context, h *Hotel) error
	Update(ctx context.Context, h *Hotel) error
	Delete(ctx context.Context, id HotelID) error
	Count(ctx context.Context) (int64, error)
}

// ApplyMark folds a new visitor mark into the running average. The running
// total replaces one historical contribution with the new mark before
// re-averaging, then grows the rating count by one.
func (h *Hotel) ApplyMark(mark int) error {
	if mark < 1 || mark > 5 {
		return ErrInvalidMark
	}
	n := h.NumberOfRatings
	if n == 0 {
		h.Rating = float64(mark)
		h.NumberOfRatings = 1
		return nil
	}
	total := h.Rating*float64(n) - h.Rating + float64(mark)
	h.Rating = math.Round(total/float64(n)*100) / 100
	h.NumberOfRatings = n + 1
	return nil
}
