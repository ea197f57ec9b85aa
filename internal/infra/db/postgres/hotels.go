package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domainhotel "staybook/internal/domain/hotel"
)

type HotelRepository struct {
	tx *sql.Tx
}

var _ domainhotel.Repository = (*HotelRepository)(nil)

const hotelColumns = `id, name, title, city, address, distance_from_city_center, rating, number_of_ratings`

func (r *HotelRepository) ByID(ctx context.Context, id domainhotel.HotelID) (*domainhotel.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`
	var h domainhotel.Hotel
	err := r.tx.QueryRowContext(ctx, query, int64(id)).Scan(
		&h.ID, &h.Name, &h.Title, &h.City, &h.Address,
		&h.DistanceFromCenter, &h.Rating, &h.NumberOfRatings,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domainhotel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: hotel by id: %w", err)
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context, filter domainhotel.Filter) ([]domainhotel.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels`
	conds := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.ID != 0 {
		conds = append(conds, "id = "+arg(int64(filter.ID)))
	}
	if filter.Name != "" {
		conds = append(conds, "name ILIKE "+arg("%"+filter.Name+"%"))
	}
	if filter.Title != "" {
		conds = append(conds, "title ILIKE "+arg("%"+filter.Title+"%"))
	}
	if filter.City != "" {
		conds = append(conds, "city = "+arg(filter.City))
	}
	if filter.Address != "" {
		conds = append(conds, "address ILIKE "+arg("%"+filter.Address+"%"))
	}
	if filter.Distance > 0 {
		conds = append(conds, "distance_from_city_center <= "+arg(filter.Distance))
	}
	if filter.Rating > 0 {
		conds = append(conds, "rating >= "+arg(filter.Rating))
	}
	if filter.NumberOfRatings > 0 {
		conds = append(conds, "number_of_ratings >= "+arg(filter.NumberOfRatings))
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
		return nil, fmt.Errorf("postgres: list hotels: %w", err)
	}
	defer rows.Close()

	var out []domainhotel.Hotel
	for rows.Next() {
		var h domainhotel.Hotel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Title, &h.City, &h.Address,
			&h.DistanceFromCenter, &h.Rating, &h.NumberOfRatings,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan hotel: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *HotelRepository) Create(ctx context.Context, h *domainhotel.Hotel) error {
	query := `
		INSERT INTO hotels (name, title, city, address, distance_from_city_center, rating, number_of_ratings)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.tx.QueryRowContext(ctx, query,
		h.Name, h.Title, h.City, h.Address, h.DistanceFromCenter, h.Rating, h.NumberOfRatings,
	).Scan(&h.ID)
	if err != nil {
		return fmt.Errorf("postgres: create hotel: %w", err)
	}
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domainhotel.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, title = $3, city = $4, address = $5,
		    distance_from_city_center = $6, rating = $7, number_of_ratings = $8
		WHERE id = $1`
	res, err := r.tx.ExecContext(ctx, query,
		int64(h.ID), h.Name, h.Title, h.City, h.Address,
		h.DistanceFromCenter, h.Rating, h.NumberOfRatings,
	)
	if err != nil {
		return fmt.Errorf("postgres: update hotel: %w", err)
	}
	return requireRow(res, domainhotel.ErrNotFound)
}

func (r *HotelRepository) Delete(ctx context.Context, id domainhotel.HotelID) error {
	res, err := r.tx.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("postgres: delete hotel: %w", err)
	}
	return requireRow(res, domainhotel.ErrNotFound)
}

func (r *HotelRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotels`).Scan(&n); err != nil {
		return 0, fmt.Errorf("postgres: count hotels: %w", err)
	}
	return n, nil
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
