package policies

import "context"

// RoomBookedRecord is a booking event as stored by the analytics sink.
type RoomBookedRecord struct {
	UserID       int64  `bson:"user_id" json:"userId"`
	CheckInDate  string `bson:"check_in_date" json:"checkInDate"`
	CheckOutDate string `bson:"check_out_date" json:"checkOutDate"`
}

// UserRegisteredRecord is a registration event as stored by the analytics sink.
type UserRegisteredRecord struct {
	UserID int64 `bson:"user_id" json:"userId"`
}

// AnalyticsReader exposes the document store's event collections to the
// statistics export use case.
type AnalyticsReader interface {
	RoomBookedEvents(ctx context.Context) ([]RoomBookedRecord, error)
	UserRegisteredEvents(ctx context.Context) ([]UserRegisteredRecord, error)
}
