package entities

// NotificationEvent names a lifecycle point the outside world is told about.
type NotificationEvent string

const (
	EventQuoteSent        NotificationEvent = "quote_sent"
	EventQuoteApproved    NotificationEvent = "quote_approved"
	EventPaymentConfirmed NotificationEvent = "payment_confirmed"
	EventOrderShipped     NotificationEvent = "order_shipped"
	EventOrderDelivered   NotificationEvent = "order_delivered"
)
