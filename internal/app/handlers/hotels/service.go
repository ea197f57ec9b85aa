package hotels

import (
	"context"

	"staybook/internal/app/dto"
	"staybook/internal/app/uow"
	"staybook/internal/app/validate"
	domainhotel "staybook/internal/domain/hotel"
)

// Service covers the hotel CRUD surface plus the visitor-rating update.
type Service struct {
	UoWFactory uow.UoWFactory
}

func (s *Service) List(ctx context.Context, filter domainhotel.Filter) (dto.HotelListResponse, error) {
	unit, err := s.begin(ctx, true)
	if err != nil {
		return dto.HotelListResponse{}, err
	}
	defer unit.Rollback(ctx)

	items, err := unit.Hotels().List(ctx, filter)
	if err != nil {
		return dto.HotelListResponse{}, err
	}
	return dto.MapHotels(items), nil
}

func (s *Service) Get(ctx context.Context, id int64) (dto.HotelResponse, error) {
	unit, err := s.begin(ctx, true)
	if err != nil {
		return dto.HotelResponse{}, err
	}
	defer unit.Rollback(ctx)

	h, err := unit.Hotels().ByID(ctx, domainhotel.HotelID(id))
	if err != nil {
		return dto.HotelResponse{}, err
	}
	return dto.MapHotel(h), nil
}

func (s *Service) Create(ctx context.Context, req dto.UpsertHotelRequest) (dto.HotelResponse, error) {
	if err := validateUpsert(req); err != nil {
		return dto.HotelResponse{}, err
	}
	unit, err := s.begin(ctx, false)
	if err != nil {
		return dto.HotelResponse{}, err
	}
	defer unit.Rollback(ctx)

	h := &domainhotel.Hotel{
		Name:               req.Name,
		Title:              req.Title,
		City:               req.City,
		Address:            req.Address,
		DistanceFromCenter: req.DistanceFromCityCenter,
	}
	if err := unit.Hotels().Create(ctx, h); err != nil {
		return dto.HotelResponse{}, err
	}
	if err := unit.Commit(ctx); err != nil {
		return dto.HotelResponse{}, err
	}
	return dto.MapHotel(h), nil
}

// Update overwrites only the fields present in the request, matching the
// copy-non-null semantics of partial upserts.
func (s *Service) Update(ctx context.Context, id int64, req dto.UpsertHotelRequest) (dto.HotelResponse, error) {
	unit, err := s.begin(ctx, false)
	if err != nil {
		return dto.HotelResponse{}, err
	}
	defer unit.Rollback(ctx)

	h, err := unit.Hotels().ByID(ctx, domainhotel.HotelID(id))
	if err != nil {
		return dto.HotelResponse{}, err
	}
	if req.Name != "" {
		h.Name = req.Name
	}
	if req.Title != "" {
		h.Title = req.Title
	}
	if req.City != "" {
		h.City = req.City
	}
	if req.Address != "" {
		h.Address = req.Address
	}
	if req.DistanceFromCityCenter != 0 {
		h.DistanceFromCenter = req.DistanceFromCityCenter
	}
	if err := unit.Hotels().Update(ctx, h); err != nil {
		return dto.HotelResponse{}, err
	}
	if err := unit.Commit(ctx); err != nil {
		return dto.HotelResponse{}, err
	}
	return dto.MapHotel(h), nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	unit, err := s.begin(ctx, false)
	if err != nil {
		return err
	}
	defer unit.Rollback(ctx)

	if err := unit.Hotels().Delete(ctx, domainhotel.HotelID(id)); err != nil {
		return err
	}
	return unit.Commit(ctx)
}

// Rate folds a 1..5 visitor mark into the hotel's running average inside a
// single transaction, so concurrent marks cannot lose updates.
func (s *Service) Rate(ctx context.Context, id int64, mark int) (dto.HotelResponse, error) {
	var c validate.Collector
	c.Range("mark", mark, 1, 5)
	if err := c.Errors().OrNil(); err != nil {
		return dto.HotelResponse{}, err
	}

	unit, err := s.begin(ctx, false)
	if err != nil {
		return dto.HotelResponse{}, err
	}
	defer unit.Rollback(ctx)

	h, err := unit.Hotels().ByID(ctx, domainhotel.HotelID(id))
	if err != nil {
		return dto.HotelResponse{}, err
	}
	if err := h.ApplyMark(mark); err != nil {
		return dto.HotelResponse{}, err
	}
	if err := unit.Hotels().Update(ctx, h); err != nil {
		return dto.HotelResponse{}, err
	}
	if err := unit.Commit(ctx); err != nil {
		return dto.HotelResponse{}, err
	}
	return dto.MapHotel(h), nil
}

func (s *Service) begin(ctx context.Context, readOnly bool) (uow.UnitOfWork, error) {
	if s.UoWFactory == nil {
		return nil, uow.ErrUnitOfWorkMissing
	}
	return s.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: readOnly})
}

func validateUpsert(req dto.UpsertHotelRequest) error {
	var c validate.Collector
	c.Require("name", req.Name)
	c.Require("title", req.Title)
	c.Require("city", req.City)
	c.Require("address", req.Address)
	return c.Errors().OrNil()
}
