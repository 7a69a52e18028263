package entities

// RequestStatus represents the lifecycle of a buy-for-me request.
//
// Domain notes:
//   - Statuses move forward along a single total order.
//   - cancelled is reachable from every non-terminal status.
//   - delivered and cancelled are terminal.
type RequestStatus string

const (
	StatusPendingReview    RequestStatus = "pending_review"
	StatusQuoteSent        RequestStatus = "quote_sent"
	StatusQuoteApproved    RequestStatus = "quote_approved"
	StatusPaymentPending   RequestStatus = "payment_pending"
	StatusPaymentCompleted RequestStatus = "payment_completed"
	StatusPurchasing       RequestStatus = "purchasing"
	StatusShipping         RequestStatus = "shipping"
	StatusDelivered        RequestStatus = "delivered"
	StatusCancelled        RequestStatus = "cancelled"
)

// AllStatuses lists every status in lifecycle order, cancelled last.
var AllStatuses = []RequestStatus{
	StatusPendingReview,
	StatusQuoteSent,
	StatusQuoteApproved,
	StatusPaymentPending,
	StatusPaymentCompleted,
	StatusPurchasing,
	StatusShipping,
	StatusDelivered,
	StatusCancelled,
}

var statusRank = map[RequestStatus]int{
	StatusPendingReview:    0,
	StatusQuoteSent:        1,
	StatusQuoteApproved:    2,
	StatusPaymentPending:   3,
	StatusPaymentCompleted: 4,
	StatusPurchasing:       5,
	StatusShipping:         6,
	StatusDelivered:        7,
}

var validNext = map[RequestStatus]map[RequestStatus]bool{
	StatusPendingReview:    {StatusQuoteSent: true, StatusCancelled: true},
	StatusQuoteSent:        {StatusQuoteApproved: true, StatusCancelled: true},
	StatusQuoteApproved:    {StatusPaymentPending: true, StatusCancelled: true},
	StatusPaymentPending:   {StatusPaymentCompleted: true, StatusCancelled: true},
	StatusPaymentCompleted: {StatusPurchasing: true, StatusCancelled: true},
	StatusPurchasing:       {StatusShipping: true, StatusCancelled: true},
	StatusShipping:         {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered:        {},
	StatusCancelled:        {},
}

// CanTransition reports whether from -> to is a legal single step.
func CanTransition(from, to RequestStatus) bool {
	return validNext[from][to]
}

func (s RequestStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

func (s RequestStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Rank returns the position of s in the forward order, or -1 for cancelled
// and unknown values.
func (s RequestStatus) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether s has reached other along the forward order.
// cancelled never reaches anything.
func (s RequestStatus) AtLeast(other RequestStatus) bool {
	r := s.Rank()
	return r >= 0 && r >= other.Rank()
}
