package entities

import "time"

// Quote is the admin-authored price breakdown sent to the customer.
//
// Domain notes:
//   - A quote with a nil SentAt is a draft and may be replaced freely.
//   - Once SentAt is set the quote is frozen; revisions create Version+1 and
//     the sent version moves to BuyForMeRequest.QuoteHistory.
//   - TotalAmount is always derived from the inputs by the pricing calculator.
//
// Monetary representation:
//   - All amounts are whole Korean won.
type Quote struct {
	Version             int            `json:"version"`
	ProductCost         int64          `json:"product_cost"`
	ServiceFee          int64          `json:"service_fee"`
	ServiceFeePercent   float64        `json:"service_fee_percent"`
	AdditionalFees      []QuotationFee `json:"additional_fees"`
	AdditionalFeesTotal int64          `json:"additional_fees_total"`
	DomesticShipping    int64          `json:"domestic_shipping"`
	TotalAmount         int64          `json:"total_amount"`
	Notes               string         `json:"notes,omitempty"`
	TemplateID          string         `json:"template_id,omitempty"`
	ValidUntil          time.Time      `json:"valid_until"`
	SentAt              *time.Time     `json:"sent_at,omitempty"`
	QuoteApprovedDate   *time.Time     `json:"quote_approved_date,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
}

func (q Quote) IsSent() bool { return q.SentAt != nil }

func (q Quote) IsExpired(now time.Time) bool {
	return !q.ValidUntil.IsZero() && now.After(q.ValidUntil)
}

func (q Quote) Clone() Quote {
	out := q
	if q.AdditionalFees != nil {
		out.AdditionalFees = make([]QuotationFee, len(q.AdditionalFees))
		copy(out.AdditionalFees, q.AdditionalFees)
	}
	out.SentAt = cloneTime(q.SentAt)
	out.QuoteApprovedDate = cloneTime(q.QuoteApprovedDate)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
