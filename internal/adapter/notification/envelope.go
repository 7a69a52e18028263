// Package notification delivers lifecycle events to brokers, mail and logs.
package notification

import (
	"encoding/json"
	"time"

	"hiko_buyforme/internal/domain/entities"

	"github.com/google/uuid"
)

const (
	EnvelopeVersion = 1
	ProducerName    = "buyforme-service"
)

// Envelope is the broker message wrapping every lifecycle event.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// EventPayload is the subset of the request consumers need to react.
type EventPayload struct {
	RequestID      string                 `json:"request_id"`
	UserID         string                 `json:"user_id"`
	Status         entities.RequestStatus `json:"status"`
	ProductTitle   string                 `json:"product_title"`
	QuoteVersion   int                    `json:"quote_version,omitempty"`
	TotalAmount    int64                  `json:"total_amount,omitempty"`
	ValidUntil     *time.Time             `json:"valid_until,omitempty"`
	TrackingNumber string                 `json:"tracking_number,omitempty"`
	TrackingURL    string                 `json:"tracking_url,omitempty"`
}

func payloadFor(r entities.BuyForMeRequest) EventPayload {
	p := EventPayload{
		RequestID:    r.ID,
		UserID:       r.UserID,
		Status:       r.Status,
		ProductTitle: r.ProductInfo.Title,
	}
	if r.Quote != nil {
		p.QuoteVersion = r.Quote.Version
		p.TotalAmount = r.Quote.TotalAmount
		validUntil := r.Quote.ValidUntil
		p.ValidUntil = &validUntil
	}
	if r.OrderInfo != nil {
		p.TrackingNumber = r.OrderInfo.TrackingNumber
		p.TrackingURL = r.OrderInfo.TrackingURL
	}
	return p
}

// NewEnvelope wraps the event. The request id doubles as correlation id.
func NewEnvelope(event entities.NotificationEvent, r entities.BuyForMeRequest, now time.Time) (Envelope, error) {
	payload, err := json.Marshal(payloadFor(r))
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     string(event),
		EventVersion:  EnvelopeVersion,
		OccurredAt:    now.UTC(),
		Producer:      ProducerName,
		CorrelationID: r.ID,
		Payload:       payload,
	}, nil
}
