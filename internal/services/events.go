package services

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// publishEvent wraps payload into an event and writes it to Kafka. A nil
// writer means publishing is disabled. Failures are logged and never
// returned, since the write that produced the event already succeeded.
func publishEvent(ctx context.Context, writer KafkaWriter, eventType string, userID uuid.UUID, payload any) {
	log := logger.FromContext(ctx)

	event := models.Event{
		EventID:   uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	if userID != uuid.Nil {
		event.UserID = userID.String()
	}

	if writer == nil {
		log.Debugw("kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", eventType)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("failed to marshal event for kafka", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(eventType)},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		log.Errorw("failed to publish event to kafka", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}
	log.Infow("event published to kafka", "event_id", event.EventID, "type", eventType)
}
