package bookings

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/app/dto"
	"staybook/internal/app/policies"
	"staybook/internal/app/uow"
	"staybook/internal/app/validate"
	domainavailability "staybook/internal/domain/availability"
	domainbooking "staybook/internal/domain/booking"
	domainroom "staybook/internal/domain/room"
	"staybook/internal/domain/shared/daterange"
	domainuser "staybook/internal/domain/user"
)

type CreateBookingCommand struct {
	ArrivalDate   string
	DepartureDate string
	RoomID        int64
	UserID        int64
}

type CreateBookingHandler struct {
	UoWFactory uow.UoWFactory
	Notifier   policies.Notifier
	Logger     *slog.Logger

	// Now is overridable in tests; defaults to time.Now.
	Now func() time.Time
}

// Handle runs the whole booking flow: field validation, room resolution and
// row lock, the availability check, and the atomic write of the booking plus
// its blocked dates. The read of blocked dates, the conflict check and the
// write all happen inside one unit of work; the notification goes out only
// after the commit succeeded.
func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (dto.BookingResponse, error) {
	now := h.now()

	var c validate.Collector
	arrival, _ := c.RequireFutureDate("arrivalDate", cmd.ArrivalDate, now)
	departure, _ := c.RequireFutureDate("departureDate", cmd.DepartureDate, now)
	c.RequireID("roomId", cmd.RoomID)
	c.RequireID("userId", cmd.UserID)
	if err := c.Errors().OrNil(); err != nil {
		return dto.BookingResponse{}, err
	}

	stay, err := daterange.New(arrival, departure)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	unit, managed, err := h.unit(ctx)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	committed := false
	if managed {
		defer func() {
			if !committed {
				_ = unit.Rollback(ctx)
			}
		}()
	}
	ctx = uow.ContextWithUnitOfWork(ctx, unit)

	if _, err := unit.Users().ByID(ctx, domainuser.UserID(cmd.UserID)); err != nil {
		return dto.BookingResponse{}, err
	}

	// The row lock makes a concurrent request for the same room wait until
	// this transaction commits, so both can never read the same pre-write
	// blocked-date set.
	rm, err := unit.Rooms().ByIDForUpdate(ctx, domainroom.RoomID(cmd.RoomID))
	if err != nil {
		return dto.BookingResponse{}, err
	}
	blocked, err := unit.Rooms().BlockedDates(ctx, rm.ID)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	calendar := domainavailability.NewCalendar(rm.ID, blocked)
	days, err := calendar.CheckAndExpand(stay)
	if err != nil {
		return dto.BookingResponse{}, err
	}

	bk, err := domainbooking.New(rm.ID, domainuser.UserID(cmd.UserID), stay, now)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	if err := unit.Bookings().Create(ctx, bk, days); err != nil {
		return dto.BookingResponse{}, err
	}

	if managed {
		if err := unit.Commit(ctx); err != nil {
			return dto.BookingResponse{}, err
		}
		committed = true
	}

	bk.Booked(now)
	h.publish(ctx, bk)

	return dto.MapBooking(bk), nil
}

func (h *CreateBookingHandler) publish(ctx context.Context, bk *domainbooking.Booking) {
	if h.Notifier == nil {
		return
	}
	for _, ev := range bk.PendingEvents() {
		if err := h.Notifier.Notify(ctx, ev); err != nil && h.Logger != nil {
			h.Logger.Error("event publish failed", "event", ev.EventName(), "error", err)
		}
	}
	bk.ClearEvents()
}

func (h *CreateBookingHandler) unit(ctx context.Context) (uow.UnitOfWork, bool, error) {
	if unit, ok := uow.FromContext(ctx); ok {
		return unit, false, nil
	}
	if h.UoWFactory == nil {
		return nil, false, uow.ErrUnitOfWorkMissing
	}
	unit, err := h.UoWFactory.Begin(ctx, uow.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	return unit, true, nil
}

func (h *CreateBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().UTC()
}
