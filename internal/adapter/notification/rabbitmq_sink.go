package notification

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase/interfaces"

	"github.com/rabbitmq/amqp091-go"
)

const routingKeyPrefix = "buyforme."

type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// RabbitMQSink publishes envelopes to a durable topic exchange with routing
// key buyforme.<event>.
type RabbitMQSink struct {
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
	log      *logger.Logger
	now      func() time.Time
}

var _ interfaces.INotificationSink = (*RabbitMQSink)(nil)

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.Trim(strings.TrimSpace(raw), "\"'")
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

// NewRabbitMQSink dials the broker and declares the exchange.
func NewRabbitMQSink(amqpURL, exchange string, log *logger.Logger) (*RabbitMQSink, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.DialConfig(cleanURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	s, err := newRabbitMQSink(ch, exchange, log)
	if err != nil {
		conn.Close()
		return nil, err
	}
	s.conn = conn
	return s, nil
}

func newRabbitMQSink(ch amqpChannel, exchange string, log *logger.Logger) (*RabbitMQSink, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		return nil, err
	}
	return &RabbitMQSink{channel: ch, exchange: exchange, log: log, now: time.Now}, nil
}

func (s *RabbitMQSink) Notify(ctx context.Context, event entities.NotificationEvent, r entities.BuyForMeRequest) error {
	env, err := NewEnvelope(event, r, s.now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(env)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		s.exchange,
		routingKeyPrefix+string(event),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp091.Persistent,
			MessageId:     env.EventID,
			CorrelationId: r.ID,
			Timestamp:     env.OccurredAt,
			Body:          body,
		},
	)
}

func (s *RabbitMQSink) Close() error {
	var err error
	if s.channel != nil {
		err = s.channel.Close()
	}
	if s.conn != nil {
		err = errors.Join(err, s.conn.Close())
	}
	return err
}
