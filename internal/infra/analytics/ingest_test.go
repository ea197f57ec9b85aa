package analytics_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/app/policies"
	"staybook/internal/infra/analytics"
)

type captureSink struct {
	roomBooked     []policies.RoomBookedRecord
	userRegistered []policies.UserRegisteredRecord
	err            error
}

func (s *captureSink) AddRoomBooked(_ context.Context, rec policies.RoomBookedRecord) error {
	if s.err != nil {
		return s.err
	}
	s.roomBooked = append(s.roomBooked, rec)
	return nil
}

func (s *captureSink) AddUserRegistered(_ context.Context, rec policies.UserRegisteredRecord) error {
	if s.err != nil {
		return s.err
	}
	s.userRegistered = append(s.userRegistered, rec)
	return nil
}

func newIngestor(sink *captureSink) *analytics.Ingestor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return analytics.NewIngestor(sink, "room-booked", "user-registered", logger)
}

func TestHandle_RoomBookedEventReachesSink(t *testing.T) {
	sink := &captureSink{}
	ing := newIngestor(sink)

	msg := &sarama.ConsumerMessage{
		Topic: "room-booked",
		Value: []byte(`{"userId":7,"checkInDate":"2024-06-13","checkOutDate":"2024-06-15"}`),
	}
	require.NoError(t, ing.Handle(context.Background(), msg))

	require.Len(t, sink.roomBooked, 1)
	assert.Equal(t, policies.RoomBookedRecord{
		UserID:       7,
		CheckInDate:  "2024-06-13",
		CheckOutDate: "2024-06-15",
	}, sink.roomBooked[0])
}

func TestHandle_UserRegisteredEventReachesSink(t *testing.T) {
	sink := &captureSink{}
	ing := newIngestor(sink)

	msg := &sarama.ConsumerMessage{Topic: "user-registered", Value: []byte(`{"userId":42}`)}
	require.NoError(t, ing.Handle(context.Background(), msg))

	require.Len(t, sink.userRegistered, 1)
	assert.Equal(t, int64(42), sink.userRegistered[0].UserID)
}

func TestHandle_MalformedMessageSkippedNotRetried(t *testing.T) {
	sink := &captureSink{}
	ing := newIngestor(sink)

	msg := &sarama.ConsumerMessage{Topic: "room-booked", Value: []byte(`{not json`)}
	assert.NoError(t, ing.Handle(context.Background(), msg))
	assert.Empty(t, sink.roomBooked)
}

func TestHandle_SinkFailurePropagatesForRedelivery(t *testing.T) {
	sink := &captureSink{err: errors.New("mongo down")}
	ing := newIngestor(sink)

	msg := &sarama.ConsumerMessage{Topic: "user-registered", Value: []byte(`{"userId":1}`)}
	assert.Error(t, ing.Handle(context.Background(), msg))
}

func TestHandle_UnknownTopicRejected(t *testing.T) {
	ing := newIngestor(&captureSink{})
	msg := &sarama.ConsumerMessage{Topic: "other", Value: []byte(`{}`)}
	assert.Error(t, ing.Handle(context.Background(), msg))
}
