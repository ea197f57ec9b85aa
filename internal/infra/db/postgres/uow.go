package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"staybook/internal/app/uow"
	domainbooking "staybook/internal/domain/booking"
	domainhotel "staybook/internal/domain/hotel"
	domainroom "staybook/internal/domain/room"
	domainuser "staybook/internal/domain/user"
)

// Factory starts transaction-backed units of work. Every unit maps to one
// database transaction, so the read-check-write sequence of a booking is
// atomic and the room row lock taken inside it holds until commit.
type Factory struct {
	DB *sql.DB
}

func (f Factory) Begin(ctx context.Context, opts uow.TxOptions) (uow.UnitOfWork, error) {
	tx, err := f.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: opts.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("postgres: begin: %w", err)
	}
	return &Unit{tx: tx}, nil
}

// Unit is a uow.UnitOfWork bound to a single *sql.Tx.
type Unit struct {
	tx   *sql.Tx
	done bool
}

func (u *Unit) Hotels() domainhotel.Repository     { return &HotelRepository{tx: u.tx} }
func (u *Unit) Rooms() domainroom.Repository       { return &RoomRepository{tx: u.tx} }
func (u *Unit) Users() domainuser.Repository       { return &UserRepository{tx: u.tx} }
func (u *Unit) Bookings() domainbooking.Repository { return &BookingRepository{tx: u.tx} }

func (u *Unit) Commit(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func (u *Unit) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true
	if err := u.tx.Rollback(); err != nil {
		return fmt.Errorf("postgres: rollback: %w", err)
	}
	return nil
}
