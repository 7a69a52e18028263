package notification

import (
	"context"
	"encoding/json"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink publishes envelopes keyed by request id so every event of one
// request lands on the same partition.
type KafkaSink struct {
	w   messageWriter
	log *logger.Logger
	now func() time.Time
}

var _ interfaces.INotificationSink = (*KafkaSink)(nil)

func NewKafkaSink(brokers []string, topic string, log *logger.Logger) *KafkaSink {
	if log == nil {
		log = logger.Nop()
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Warn("kafka delivery failed", "topic", topic, "messages", len(msgs), "error", err.Error())
			}
		},
	}
	return newKafkaSink(w, log)
}

func newKafkaSink(w messageWriter, log *logger.Logger) *KafkaSink {
	return &KafkaSink{w: w, log: log, now: time.Now}
}

func (s *KafkaSink) Notify(ctx context.Context, event entities.NotificationEvent, r entities.BuyForMeRequest) error {
	env, err := NewEnvelope(event, r, s.now())
	if err != nil {
		return err
	}
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(r.ID),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event)},
		},
	})
}

// Close flushes buffered messages.
func (s *KafkaSink) Close() error {
	return s.w.Close()
}
