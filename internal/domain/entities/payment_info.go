package entities

import "time"

// PaymentMethod records how the customer said they paid.
//
// No gateway is involved; the admin confirms receipt and the method is kept
// for bookkeeping only.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodPaypal       PaymentMethod = "paypal"
	PaymentMethodOther        PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodCard, PaymentMethodPaypal, PaymentMethodOther:
		return true
	}
	return false
}

// PaymentInfo is attached to a request when payment is confirmed.
//
// Amount always equals the approved quote total; Reference is whatever the
// customer or bank supplied (transfer memo, receipt number).
type PaymentInfo struct {
	Method      PaymentMethod `json:"method"`
	Amount      int64         `json:"amount"`
	Reference   string        `json:"reference,omitempty"`
	ConfirmedAt time.Time     `json:"confirmed_at"`
}
