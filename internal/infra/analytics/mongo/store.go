package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"staybook/internal/app/policies"
)

const (
	roomBookedCollection     = "room_booked_events"
	userRegisteredCollection = "user_registered_events"
)

// EventStore keeps the consumed event stream in one collection per event
// kind. It is an append-only sink read back by the statistics export.
type EventStore struct {
	roomBooked     *mongo.Collection
	userRegistered *mongo.Collection
}

var _ policies.AnalyticsReader = (*EventStore)(nil)

func NewEventStore(db *mongo.Database) *EventStore {
	return &EventStore{
		roomBooked:     db.Collection(roomBookedCollection),
		userRegistered: db.Collection(userRegisteredCollection),
	}
}

func (s *EventStore) AddRoomBooked(ctx context.Context, rec policies.RoomBookedRecord) error {
	if _, err := s.roomBooked.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("mongo: insert room booked event: %w", err)
	}
	return nil
}

func (s *EventStore) AddUserRegistered(ctx context.Context, rec policies.UserRegisteredRecord) error {
	if _, err := s.userRegistered.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("mongo: insert user registered event: %w", err)
	}
	return nil
}

func (s *EventStore) RoomBookedEvents(ctx context.Context) ([]policies.RoomBookedRecord, error) {
	cur, err := s.roomBooked.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo: find room booked events: %w", err)
	}
	var out []policies.RoomBookedRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo: decode room booked events: %w", err)
	}
	return out, nil
}

func (s *EventStore) UserRegisteredEvents(ctx context.Context) ([]policies.UserRegisteredRecord, error) {
	cur, err := s.userRegistered.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongo: find user registered events: %w", err)
	}
	var out []policies.UserRegisteredRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("mongo: decode user registered events: %w", err)
	}
	return out, nil
}
