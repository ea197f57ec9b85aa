// Package analytics projects the published event stream into the document
// store that backs the statistics export.
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"

	"staybook/internal/app/policies"
	"staybook/internal/infra/broker/kafka"
)

// EventSink is the append side of the analytics store.
type EventSink interface {
	AddRoomBooked(ctx context.Context, rec policies.RoomBookedRecord) error
	AddUserRegistered(ctx context.Context, rec policies.UserRegisteredRecord) error
}

// Ingestor consumes the event topics and appends each message to the sink.
// A malformed message is logged and skipped; a sink failure is returned so
// the message is redelivered.
type Ingestor struct {
	sink                EventSink
	roomBookedTopic     string
	userRegisteredTopic string
	logger              *slog.Logger
}

var _ kafka.MessageHandler = (*Ingestor)(nil)

func NewIngestor(sink EventSink, roomBookedTopic, userRegisteredTopic string, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		sink:                sink,
		roomBookedTopic:     roomBookedTopic,
		userRegisteredTopic: userRegisteredTopic,
		logger:              logger,
	}
}

func (i *Ingestor) Topics() []string {
	return []string{i.roomBookedTopic, i.userRegisteredTopic}
}

func (i *Ingestor) Handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	switch msg.Topic {
	case i.roomBookedTopic:
		var rec policies.RoomBookedRecord
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			i.logger.Error("skipping malformed room booked event",
				slog.String("topic", msg.Topic), slog.Int64("offset", msg.Offset), slog.Any("error", err))
			return nil
		}
		return i.sink.AddRoomBooked(ctx, rec)
	case i.userRegisteredTopic:
		var rec policies.UserRegisteredRecord
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			i.logger.Error("skipping malformed user registered event",
				slog.String("topic", msg.Topic), slog.Int64("offset", msg.Offset), slog.Any("error", err))
			return nil
		}
		return i.sink.AddUserRegistered(ctx, rec)
	default:
		return fmt.Errorf("analytics: unexpected topic %q", msg.Topic)
	}
}
