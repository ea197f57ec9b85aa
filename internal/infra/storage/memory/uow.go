package memory

import (
	"context"
	"sync"

	"staybook/internal/app/uow"
	domainbooking "staybook/internal/domain/booking"
	domainhotel "staybook/internal/domain/hotel"
	domainroom "staybook/internal/domain/room"
	domainuser "staybook/internal/domain/user"
)

// Factory wires in-memory repositories into a unit-of-work boundary.
// Begin takes the store lock and snapshots the tables; Commit releases the
// lock, Rollback restores the snapshot first. Units are fully serialized:
// the closest in-memory analogue of the read-check-write transaction the
// Postgres implementation provides.
type Factory struct {
	Store *Store
}

func (f Factory) Begin(ctx context.Context, opts uow.TxOptions) (uow.UnitOfWork, error) {
	f.Store.mu.Lock()
	return &Unit{store: f.Store, snap: f.Store.snapshot()}, nil
}

// Unit is a uow.UnitOfWork backed by the in-memory store.
type Unit struct {
	store   *Store
	snap    snapshot
	release sync.Once
}

func (u *Unit) Hotels() domainhotel.Repository     { return hotelRepo{s: u.store} }
func (u *Unit) Rooms() domainroom.Repository       { return roomRepo{s: u.store} }
func (u *Unit) Users() domainuser.Repository       { return userRepo{s: u.store} }
func (u *Unit) Bookings() domainbooking.Repository { return bookingRepo{s: u.store} }

func (u *Unit) Commit(ctx context.Context) error {
	u.finish(false)
	return nil
}

func (u *Unit) Rollback(ctx context.Context) error {
	u.finish(true)
	return nil
}

func (u *Unit) finish(restore bool) {
	u.release.Do(func() {
		if restore {
			u.store.restore(u.snap)
		}
		u.store.mu.Unlock()
	})
}

type snapshot struct {
	hotels   map[domainhotel.HotelID]domainhotel.Hotel
	rooms    map[domainroom.RoomID]domainroom.Room
	users    map[domainuser.UserID]domainuser.User
	bookings map[domainbooking.BookingID]domainbooking.Booking
	blocked  map[domainroom.RoomID]map[string]struct{}

	nextHotel   int64
	nextRoom    int64
	nextUser    int64
	nextBooking int64
}

// snapshot copies the tables; repositories replace whole entries, so a
// per-map copy (nested for blocked dates) is enough to roll back.
func (s *Store) snapshot() snapshot {
	sn := snapshot{
		hotels:      make(map[domainhotel.HotelID]domainhotel.Hotel, len(s.hotels)),
		rooms:       make(map[domainroom.RoomID]domainroom.Room, len(s.rooms)),
		users:       make(map[domainuser.UserID]domainuser.User, len(s.users)),
		bookings:    make(map[domainbooking.BookingID]domainbooking.Booking, len(s.bookings)),
		blocked:     make(map[domainroom.RoomID]map[string]struct{}, len(s.blocked)),
		nextHotel:   s.nextHotel,
		nextRoom:    s.nextRoom,
		nextUser:    s.nextUser,
		nextBooking: s.nextBooking,
	}
	for id, h := range s.hotels {
		sn.hotels[id] = h
	}
	for id, rm := range s.rooms {
		sn.rooms[id] = rm
	}
	for id, u := range s.users {
		sn.users[id] = u
	}
	for id, b := range s.bookings {
		sn.bookings[id] = b
	}
	for id, days := range s.blocked {
		copied := make(map[string]struct{}, len(days))
		for d := range days {
			copied[d] = struct{}{}
		}
		sn.blocked[id] = copied
	}
	return sn
}

func (s *Store) restore(sn snapshot) {
	s.hotels = sn.hotels
	s.rooms = sn.rooms
	s.users = sn.users
	s.bookings = sn.bookings
	s.blocked = sn.blocked
	s.nextHotel = sn.nextHotel
	s.nextRoom = sn.nextRoom
	s.nextUser = sn.nextUser
	s.nextBooking = sn.nextBooking
}
