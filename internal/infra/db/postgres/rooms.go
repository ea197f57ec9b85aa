package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domainroom "staybook/internal/domain/room"
	"staybook/internal/domain/shared/daterange"
)

type RoomRepository struct {
	tx *sql.Tx
}

var _ domainroom.Repository = (*RoomRepository)(nil)

const roomColumns = `id, hotel_id, name, description, number, price, capacity`

func (r *RoomRepository) ByID(ctx context.Context, id domainroom.RoomID) (*domainroom.Room, error) {
	return r.byID(ctx, id, false)
}

// ByIDForUpdate locks the room row for the remainder of the transaction.
// Concurrent booking attempts on the same room queue on this lock, so each
// sees the blocked dates the previous one committed.
func (r *RoomRepository) ByIDForUpdate(ctx context.Context, id domainroom.RoomID) (*domainroom.Room, error) {
	return r.byID(ctx, id, true)
}

func (r *RoomRepository) byID(ctx context.Context, id domainroom.RoomID, forUpdate bool) (*domainroom.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var rm domainroom.Room
	err := r.tx.QueryRowContext(ctx, query, int64(id)).Scan(
		&rm.ID, &rm.HotelID, &rm.Name, &rm.Description, &rm.Number, &rm.Price, &rm.Capacity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainroom.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: room by id: %w", err)
	}
	return &rm, nil
}

func (r *RoomRepository) BlockedDates(ctx context.Context, id domainroom.RoomID) ([]daterange.Date, error) {
	rows, err := r.tx.QueryContext(ctx,
		`SELECT date FROM unavailable_dates WHERE room_id = $1 ORDER BY date`, int64(id))
	if err != nil {
		return nil, fmt.Errorf("postgres: blocked dates: %w", err)
	}
	defer rows.Close()

	var out []daterange.Date
	for rows.Next() {
		var t sql.NullTime
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("postgres: scan blocked date: %w", err)
		}
		out = append(out, daterange.DateOf(t.Time))
	}
	return out, rows.Err()
}

func (r *RoomRepository) List(ctx context.Context, filter domainroom.Filter) ([]domainroom.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms`
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.ID != 0 {
		conds = append(conds, "id = "+arg(int64(filter.ID)))
	}
	if filter.HotelID != 0 {
		conds = append(conds, "hotel_id = "+arg(int64(filter.HotelID)))
	}
	if filter.Name != "" {
		conds = append(conds, "name ILIKE "+arg("%"+filter.Name+"%"))
	}
	if filter.MinPrice > 0 {
		conds = append(conds, "price >= "+arg(filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		conds = append(conds, "price <= "+arg(filter.MaxPrice))
	}
	if filter.GuestCount > 0 {
		conds = append(conds, "capacity >= "+arg(filter.GuestCount))
	}
	if filter.Stay != nil {
		cond := fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM unavailable_dates ud WHERE ud.room_id = rooms.id AND ud.date BETWEEN %s AND %s)",
			arg(filter.Stay.Arrival.Time()), arg(filter.Stay.Departure.Time()),
		)
		conds = append(conds, cond)
	}
	for i, c := range conds {
		if i == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY id"
	if filter.PageSize > 0 {
		query += " LIMIT " + arg(filter.PageSize)
		query += " OFFSET " + arg(filter.PageNumber*filter.PageSize)
	}

	rows, err := r.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: list rooms: %w", err)
	}
	defer rows.Close()

	var out []domainroom.Room
	for rows.Next() {
		var rm domainroom.Room
		if err := rows.Scan(
			&rm.ID, &rm.HotelID, &rm.Name, &rm.Description, &rm.Number, &rm.Price, &rm.Capacity,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan room: %w", err)
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *RoomRepository) Create(ctx context.Context, rm *domainroom.Room) error {
	query := `
		INSERT INTO rooms (hotel_id, name, description, number, price, capacity)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.tx.QueryRowContext(ctx, query,
		int64(rm.HotelID), rm.Name, rm.Description, rm.Number, rm.Price, rm.Capacity,
	).Scan(&rm.ID)
	if err != nil {
		return fmt.Errorf("postgres: create room: %w", err)
	}
	return nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *domainroom.Room) error {
	query := `
		UPDATE rooms
		SET hotel_id = $2, name = $3, description = $4, number = $5, price = $6, capacity = $7
		WHERE id = $1`
	res, err := r.tx.ExecContext(ctx, query,
		int64(rm.ID), int64(rm.HotelID), rm.Name, rm.Description, rm.Number, rm.Price, rm.Capacity,
	)
	if err != nil {
		return fmt.Errorf("postgres: update room: %w", err)
	}
	return requireRow(res, domainroom.ErrNotFound)
}

func (r *RoomRepository) Delete(ctx context.Context, id domainroom.RoomID) error {
	res, err := r.tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("postgres: delete room: %w", err)
	}
	return requireRow(res, domainroom.ErrNotFound)
}
