package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase/interfaces"
)

// LogSink writes one structured line per event. Used when no broker or mail
// server is configured.
type LogSink struct {
	log *logger.Logger
}

var _ interfaces.INotificationSink = (*LogSink)(nil)

func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.Nop()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Notify(ctx context.Context, event entities.NotificationEvent, r entities.BuyForMeRequest) error {
	attrs := []any{
		slog.String("event", string(event)),
		slog.String("user_id", r.UserID),
		slog.String("status", string(r.Status)),
	}
	if r.Quote != nil {
		attrs = append(attrs, slog.Int("quote_version", r.Quote.Version), slog.Int64("total_amount", r.Quote.TotalAmount))
	}
	s.log.WithContext(ctx).WithRequestID(r.ID).Info("notification", attrs...)
	return nil
}

type namedSink struct {
	name string
	sink interfaces.INotificationSink
}

// DefaultSinkTimeout bounds a single sink call.
const DefaultSinkTimeout = 3 * time.Second

// MultiSink fans an event out to every sink. One failing sink does not stop
// the others; failures are logged and returned joined.
type MultiSink struct {
	sinks   []namedSink
	timeout time.Duration
	log     *logger.Logger
}

var _ interfaces.INotificationSink = (*MultiSink)(nil)

func NewMultiSink(log *logger.Logger) *MultiSink {
	if log == nil {
		log = logger.Nop()
	}
	return &MultiSink{timeout: DefaultSinkTimeout, log: log}
}

// WithTimeout sets the per-sink deadline. Zero or less removes it.
func (m *MultiSink) WithTimeout(d time.Duration) *MultiSink {
	m.timeout = d
	return m
}

// Add registers sink under name. Nil sinks are ignored.
func (m *MultiSink) Add(name string, sink interfaces.INotificationSink) *MultiSink {
	if sink != nil {
		m.sinks = append(m.sinks, namedSink{name: name, sink: sink})
	}
	return m
}

func (m *MultiSink) Len() int { return len(m.sinks) }

func (m *MultiSink) Notify(ctx context.Context, event entities.NotificationEvent, r entities.BuyForMeRequest) error {
	var errs []error
	for _, s := range m.sinks {
		if err := m.notifyOne(ctx, s, event, r); err != nil {
			m.log.WithContext(ctx).WithRequestID(r.ID).NotificationFailed(s.name, string(event), err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) notifyOne(ctx context.Context, s namedSink, event entities.NotificationEvent, r entities.BuyForMeRequest) error {
	if m.timeout <= 0 {
		return s.sink.Notify(ctx, event, r)
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return s.sink.Notify(ctx, event, r)
}
