package rooms

import (
	"context"
	"time"

	"staybook/internal/app/dto"
	"staybook/internal/app/uow"
	"staybook/internal/app/validate"
	domainhotel "staybook/internal/domain/hotel"
	domainroom "staybook/internal/domain/room"
	"staybook/internal/domain/shared/daterange"
)

// ListQuery mirrors the room filter as it arrives from the HTTP layer; the
// stay window travels as raw strings and is validated here.
type ListQuery struct {
	ID            int64
	Name          string
	MinPrice      float64
	MaxPrice      float64
	GuestCount    int
	HotelID       int64
	ArrivalDate   string
	DepartureDate string
	PageSize      int
	PageNumber    int
}

type Service struct {
	UoWFactory uow.UoWFactory

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// List returns rooms matching the filter. When a stay window is given, rooms
// with any blocked date inside the inclusive window are excluded; the window
// obeys the same rules as booking: well-ordered and strictly in the future.
func (s *Service) List(ctx context.Context, q ListQuery) (dto.RoomListResponse, error) {
	filter := domainroom.Filter{
		ID:         domainroom.RoomID(q.ID),
		Name:       q.Name,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		GuestCount: q.GuestCount,
		HotelID:    domainhotel.HotelID(q.HotelID),
		PageSize:   q.PageSize,
		PageNumber: q.PageNumber,
	}
	if q.ArrivalDate != "" || q.DepartureDate != "" {
		var c validate.Collector
		arrival, _ := c.RequireFutureDate("arrivalDate", q.ArrivalDate, s.now())
		departure, _ := c.RequireFutureDate("departureDate", q.DepartureDate, s.now())
		if err := c.Errors().OrNil(); err != nil {
			return dto.RoomListResponse{}, err
		}
		stay, err := daterange.New(arrival, departure)
		if err != nil {
			return dto.RoomListResponse{}, err
		}
		filter.Stay = &stay
	}

	unit, err := s.begin(ctx, true)
	if err != nil {
		return dto.RoomListResponse{}, err
	}
	defer unit.Rollback(ctx)

	items, err := unit.Rooms().List(ctx, filter)
	if err != nil {
		return dto.RoomListResponse{}, err
	}
	return dto.MapRooms(items), nil
}

func (s *Service) Get(ctx context.Context, id int64) (dto.RoomResponse, error) {
	unit, err := s.begin(ctx, true)
	if err != nil {
		return dto.RoomResponse{}, err
	}
	defer unit.Rollback(ctx)

	r, err := unit.Rooms().ByID(ctx, domainroom.RoomID(id))
	if err != nil {
		return dto.RoomResponse{}, err
	}
	return dto.MapRoom(r), nil
}

func (s *Service) Create(ctx context.Context, req dto.UpsertRoomRequest) (dto.RoomResponse, error) {
	var c validate.Collector
	c.Require("name", req.Name)
	c.RequireID("hotelId", req.HotelID)
	if err := c.Errors().OrNil(); err != nil {
		return dto.RoomResponse{}, err
	}

	unit, err := s.begin(ctx, false)
	if err != nil {
		return dto.RoomResponse{}, err
	}
	defer unit.Rollback(ctx)

	r := &domainroom.Room{
		HotelID:     domainhotel.HotelID(req.HotelID),
		Name:        req.Name,
		Description: req.Description,
		Number:      req.Number,
		Price:       req.Price,
		Capacity:    req.Capacity,
	}
	if err := unit.Rooms().Create(ctx, r); err != nil {
		return dto.RoomResponse{}, err
	}
	if err := unit.Commit(ctx); err != nil {
		return dto.RoomResponse{}, err
	}
	return dto.MapRoom(r), nil
}

func (s *Service) Update(ctx context.Context, id int64, req dto.UpsertRoomRequest) (dto.RoomResponse, error) {
	unit, err := s.begin(ctx, false)
	if err != nil {
		return dto.RoomResponse{}, err
	}
	defer unit.Rollback(ctx)

	r, err := unit.Rooms().ByID(ctx, domainroom.RoomID(id))
	if err != nil {
		return dto.RoomResponse{}, err
	}
	if req.Name != "" {
		r.Name = req.Name
	}
	if req.Description != "" {
		r.Description = req.Description
	}
	if req.Number != 0 {
		r.Number = req.Number
	}
	if req.Price != 0 {
		r.Price = req.Price
	}
	if req.Capacity != 0 {
		r.Capacity = req.Capacity
	}
	if req.HotelID != 0 {
		r.HotelID = domainhotel.HotelID(req.HotelID)
	}
	if err := unit.Rooms().Update(ctx, r); err != nil {
		return dto.RoomResponse{}, err
	}
	if err := unit.Commit(ctx); err != nil {
		return dto.RoomResponse{}, err
	}
	return dto.MapRoom(r), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	unit, err := s.begin(ctx, false)
	if err != nil {
		return err
	}
	defer unit.Rollback(ctx)

	if err := unit.Rooms().Delete(ctx, domainroom.RoomID(id)); err != nil {
		return err
	}
	return unit.Commit(ctx)
}

func (s *Service) begin(ctx context.Context, readOnly bool) (uow.UnitOfWork, error) {
	if s.UoWFactory == nil {
		return nil, uow.ErrUnitOfWorkMissing
	}
	return s.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: readOnly})
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
