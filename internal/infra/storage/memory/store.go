package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	domainbooking "staybook/internal/domain/booking"
	domainhotel "staybook/internal/domain/hotel"
	domainroom "staybook/internal/domain/room"
	"staybook/internal/domain/shared/daterange"
	domainuser "staybook/internal/domain/user"
)

// Store keeps every table in arena-style maps keyed by id. All access goes
// through the unit-of-work lock, so a transaction sees a stable snapshot and
// two concurrent booking attempts are serialized the way row locks serialize
// them in Postgres.
type Store struct {
	mu sync.Mutex

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

func NewStore() *Store {
	return &Store{
		hotels:   make(map[domainhotel.HotelID]domainhotel.Hotel),
		rooms:    make(map[domainroom.RoomID]domainroom.Room),
		users:    make(map[domainuser.UserID]domainuser.User),
		bookings: make(map[domainbooking.BookingID]domainbooking.Booking),
		blocked:  make(map[domainroom.RoomID]map[string]struct{}),
	}
}

type hotelRepo struct{ s *Store }

func (r hotelRepo) ByID(ctx context.Context, id domainhotel.HotelID) (*domainhotel.Hotel, error) {
	h, ok := r.s.hotels[id]
	if !ok {
		return nil, domainhotel.ErrNotFound
	}
	return &h, nil
}

func (r hotelRepo) List(ctx context.Context, filter domainhotel.Filter) ([]domainhotel.Hotel, error) {
	out := make([]domainhotel.Hotel, 0, len(r.s.hotels))
	for _, h := range r.s.hotels {
		if filter.ID != 0 && h.ID != filter.ID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(h.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Title != "" && !strings.Contains(strings.ToLower(h.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.City != "" && !strings.EqualFold(h.City, filter.City) {
			continue
		}
		if filter.Address != "" && !strings.Contains(strings.ToLower(h.Address), strings.ToLower(filter.Address)) {
			continue
		}
		if filter.Distance > 0 && h.DistanceFromCenter > filter.Distance {
			continue
		}
		if filter.Rating > 0 && h.Rating < filter.Rating {
			continue
		}
		if filter.NumberOfRatings > 0 && h.NumberOfRatings < filter.NumberOfRatings {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, filter.PageNumber, filter.PageSize), nil
}

func (r hotelRepo) Create(ctx context.Context, h *domainhotel.Hotel) error {
	r.s.nextHotel++
	h.ID = domainhotel.HotelID(r.s.nextHotel)
	r.s.hotels[h.ID] = *h
	return nil
}

func (r hotelRepo) Update(ctx context.Context, h *domainhotel.Hotel) error {
	if _, ok := r.s.hotels[h.ID]; !ok {
		return domainhotel.ErrNotFound
	}
	r.s.hotels[h.ID] = *h
	return nil
}

func (r hotelRepo) Delete(ctx context.Context, id domainhotel.HotelID) error {
	if _, ok := r.s.hotels[id]; !ok {
		return domainhotel.ErrNotFound
	}
	delete(r.s.hotels, id)
	for rid, rm := range r.s.rooms {
		if rm.HotelID == id {
			delete(r.s.rooms, rid)
			delete(r.s.blocked, rid)
		}
	}
	return nil
}

func (r hotelRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.s.hotels)), nil
}

type roomRepo struct{ s *Store }

func (r roomRepo) ByID(ctx context.Context, id domainroom.RoomID) (*domainroom.Room, error) {
	rm, ok := r.s.rooms[id]
	if !ok {
		return nil, domainroom.ErrNotFound
	}
	return &rm, nil
}

// ByIDForUpdate is the same lookup; the unit-of-work lock already serializes
// writers the way a row lock would.
func (r roomRepo) ByIDForUpdate(ctx context.Context, id domainroom.RoomID) (*domainroom.Room, error) {
	return r.ByID(ctx, id)
}

func (r roomRepo) BlockedDates(ctx context.Context, id domainroom.RoomID) ([]daterange.Date, error) {
	set := r.s.blocked[id]
	out := make([]daterange.Date, 0, len(set))
	for s := range set {
		d, err := daterange.ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}

func (r roomRepo) List(ctx context.Context, filter domainroom.Filter) ([]domainroom.Room, error) {
	out := make([]domainroom.Room, 0, len(r.s.rooms))
	for _, rm := range r.s.rooms {
		if filter.ID != 0 && rm.ID != filter.ID {
			continue
		}
		if filter.HotelID != 0 && rm.HotelID != filter.HotelID {
			continue
		}
		if filter.MinPrice > 0 && rm.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && rm.Price > filter.MaxPrice {
			continue
		}
		if filter.GuestCount > 0 && rm.Capacity < filter.GuestCount {
			continue
		}
		if filter.Stay != nil && r.anyBlockedWithin(rm.ID, *filter.Stay) {
			continue
		}
		out = append(out, rm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, filter.PageNumber, filter.PageSize), nil
}

func (r roomRepo) anyBlockedWithin(id domainroom.RoomID, stay daterange.Range) bool {
	for s := range r.s.blocked[id] {
		d, err := daterange.ParseDate(s)
		if err != nil {
			continue
		}
		if stay.Contains(d) {
			return true
		}
	}
	return false
}

func (r roomRepo) Create(ctx context.Context, rm *domainroom.Room) error {
	if _, ok := r.s.hotels[rm.HotelID]; !ok {
		return domainhotel.ErrNotFound
	}
	r.s.nextRoom++
	rm.ID = domainroom.RoomID(r.s.nextRoom)
	r.s.rooms[rm.ID] = *rm
	return nil
}

func (r roomRepo) Update(ctx context.Context, rm *domainroom.Room) error {
	if _, ok := r.s.rooms[rm.ID]; !ok {
		return domainroom.ErrNotFound
	}
	r.s.rooms[rm.ID] = *rm
	return nil
}

func (r roomRepo) Delete(ctx context.Context, id domainroom.RoomID) error {
	if _, ok := r.s.rooms[id]; !ok {
		return domainroom.ErrNotFound
	}
	delete(r.s.rooms, id)
	delete(r.s.blocked, id)
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) ByID(ctx context.Context, id domainuser.UserID) (*domainuser.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, domainuser.ErrNotFound
	}
	return &u, nil
}

func (r userRepo) ByName(ctx context.Context, name string) (*domainuser.User, error) {
	for _, u := range r.s.users {
		if u.Name == name {
			out := u
			return &out, nil
		}
	}
	return nil, domainuser.ErrNotFound
}

func (r userRepo) List(ctx context.Context) ([]domainuser.User, error) {
	out := make([]domainuser.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r userRepo) Create(ctx context.Context, u *domainuser.User) error {
	for _, existing := range r.s.users {
		if existing.Name == u.Name || existing.Email == u.Email {
			return domainuser.ErrDuplicate
		}
	}
	r.s.nextUser++
	u.ID = domainuser.UserID(r.s.nextUser)
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) Update(ctx context.Context, u *domainuser.User) error {
	if _, ok := r.s.users[u.ID]; !ok {
		return domainuser.ErrNotFound
	}
	for _, existing := range r.s.users {
		if existing.ID != u.ID && (existing.Name == u.Name || existing.Email == u.Email) {
			return domainuser.ErrDuplicate
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) Delete(ctx context.Context, id domainuser.UserID) error {
	if _, ok := r.s.users[id]; !ok {
		return domainuser.ErrNotFound
	}
	delete(r.s.users, id)
	return nil
}

type bookingRepo struct{ s *Store }

func (r bookingRepo) List(ctx context.Context) ([]domainbooking.Booking, error) {
	out := make([]domainbooking.Booking, 0, len(r.s.bookings))
	for _, b := range r.s.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Create writes the booking and its blocked dates all-or-nothing: a
// duplicate (room, date) pair fails the whole call before anything lands.
func (r bookingRepo) Create(ctx context.Context, b *domainbooking.Booking, blocked []daterange.Date) error {
	if _, ok := r.s.rooms[b.RoomID]; !ok {
		return domainroom.ErrNotFound
	}
	set := r.s.blocked[b.RoomID]
	if set == nil {
		set = make(map[string]struct{})
		r.s.blocked[b.RoomID] = set
	}
	for _, d := range blocked {
		if _, dup := set[d.String()]; dup {
			return domainbooking.ErrBlockedDateTaken
		}
	}
	r.s.nextBooking++
	b.ID = domainbooking.BookingID(r.s.nextBooking)
	r.s.bookings[b.ID] = *b
	for _, d := range blocked {
		set[d.String()] = struct{}{}
	}
	return nil
}

func paginate[T any](items []T, page, size int) []T {
	if size <= 0 {
		return items
	}
	if page < 0 {
		page = 0
	}
	start := page * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
