package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/validate"
	domainavailability "staybook/internal/domain/availability"
	domainbooking "staybook/internal/domain/booking"
	domainhotel "staybook/internal/domain/hotel"
	domainroom "staybook/internal/domain/room"
	"staybook/internal/domain/shared/daterange"
	domainuser "staybook/internal/domain/user"
)

// respondError translates application errors into HTTP statuses: invalid
// input is 400, a missing aggregate 404, a lost race or duplicate 409,
// anything unrecognized a plain 500 without internals in the body.
func respondError(c *gin.Context, err error) {
	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErrs.Error(), "fields": fieldErrs})
		return
	}

	switch {
	case errors.Is(err, daterange.ErrInvalidRange),
		errors.Is(err, domainbooking.ErrPastDate),
		errors.Is(err, domainhotel.ErrInvalidMark),
		errors.Is(err, domainuser.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domainhotel.ErrNotFound),
		errors.Is(err, domainroom.ErrNotFound),
		errors.Is(err, domainuser.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainavailability.ErrDateConflict),
		errors.Is(err, domainbooking.ErrBlockedDateTaken),
		errors.Is(err, domainuser.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
