package interfaces

import (
	"context"

	"hiko_buyforme/internal/domain/entities"
)

// INotificationSink is told about committed lifecycle transitions.
// Delivery is best effort.
//
//go:generate mockgen -source=notification_sink_interface.go -destination=mocks/notification_sink_interface_mock.go -package=mock_interfaces
type INotificationSink interface {
	Notify(ctx context.Context, event entities.NotificationEvent, request entities.BuyForMeRequest) error
}
