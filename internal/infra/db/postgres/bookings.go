package postgres

import (
	"context"
	"database/sql"
	"fmt"

	domainbooking "staybook/internal/domain/booking"
	"staybook/internal/domain/shared/daterange"
)

type BookingRepository struct {
	tx *sql.Tx
}

var _ domainbooking.Repository = (*BookingRepository)(nil)

func (r *BookingRepository) List(ctx context.Context) ([]domainbooking.Booking, error) {
	query := `SELECT id, room_id, user_id, arrival_date, departure_date, created_at FROM bookings ORDER BY id`
	rows, err := r.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list bookings: %w", err)
	}
	defer rows.Close()

	var out []domainbooking.Booking
	for rows.Next() {
		var b domainbooking.Booking
		var arrival, departure sql.NullTime
		if err := rows.Scan(&b.ID, &b.RoomID, &b.UserID, &arrival, &departure, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: scan booking: %w", err)
		}
		b.Stay = daterange.Range{
			Arrival:   daterange.DateOf(arrival.Time),
			Departure: daterange.DateOf(departure.Time),
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Create inserts the booking row and one unavailable_dates row per day of
// the stay inside the surrounding transaction. The unique index on
// (room_id, date) is the backstop against a writer that slipped past the
// pre-check: any violation aborts the whole transaction, nothing partial
// ever commits.
func (r *BookingRepository) Create(ctx context.Context, b *domainbooking.Booking, blocked []daterange.Date) error {
	query := `
		INSERT INTO bookings (room_id, user_id, arrival_date, departure_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.tx.QueryRowContext(ctx, query,
		int64(b.RoomID), int64(b.UserID),
		b.Stay.Arrival.Time(), b.Stay.Departure.Time(), b.CreatedAt,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("postgres: create booking: %w", err)
	}

	for _, d := range blocked {
		_, err := r.tx.ExecContext(ctx,
			`INSERT INTO unavailable_dates (room_id, date) VALUES ($1, $2)`,
			int64(b.RoomID), d.Time(),
		)
		if isUniqueViolation(err) {
			return domainbooking.ErrBlockedDateTaken
		}
		if err != nil {
			return fmt.Errorf("postgres: create blocked date: %w", err)
		}
	}
	return nil
}
