package bookings

import (
	"context"

	"staybook/internal/app/dto"
	"staybook/internal/app/uow"
)

type ListBookingsHandler struct {
	UoWFactory uow.UoWFactory
}

func (h *ListBookingsHandler) Handle(ctx context.Context) (dto.BookingListResponse, error) {
	unit, ok := uow.FromContext(ctx)
	if !ok {
		if h.UoWFactory == nil {
			return dto.BookingListResponse{}, uow.ErrUnitOfWorkMissing
		}
		var err error
		unit, err = h.UoWFactory.Begin(ctx, uow.TxOptions{ReadOnly: true})
		if err != nil {
			return dto.BookingListResponse{}, err
		}
		ctx = uow.ContextWithUnitOfWork(ctx, unit)
		defer unit.Rollback(ctx)
	}

	items, err := unit.Bookings().List(ctx)
	if err != nil {
		return dto.BookingListResponse{}, err
	}
	return dto.MapBookings(items), nil
}
