package validate

import (
	"fmt"
	"strings"
	"time"

	"staybook/internal/domain/shared/daterange"
)

// FieldError ties a rejection reason to the offending request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the full set of field-level problems found in one request.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) Empty() bool { return len(e) == 0 }

// OrNil returns the error set as an error value, or nil when clean. A typed
// nil Errors must never escape as a non-nil error.
func (e Errors) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

type Collector struct {
	errs Errors
}

func (c *Collector) Add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

func (c *Collector) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "is required")
	}
}

func (c *Collector) RequireID(field string, id int64) {
	if id <= 0 {
		c.Add(field, "is required")
	}
}

// RequireFutureDate parses a yyyy-mm-dd value and enforces the
// strictly-future rule: today does not count as a valid future date.
func (c *Collector) RequireFutureDate(field, value string, now time.Time) (daterange.Date, bool) {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "is required")
		return daterange.Date{}, false
	}
	d, err := daterange.ParseDate(value)
	if err != nil {
		c.Add(field, fmt.Sprintf("must be a date in the form %s", "2006-01-02"))
		return daterange.Date{}, false
	}
	if !d.After(daterange.DateOf(now)) {
		c.Add(field, "must be a future date")
		return daterange.Date{}, false
	}
	return d, true
}

func (c *Collector) Range(field string, value, min, max int) {
	if value < min || value > max {
		c.Add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

func (c *Collector) Errors() Errors { return c.errs }
