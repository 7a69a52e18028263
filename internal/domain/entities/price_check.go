package entities

import "time"

type Availability string

const (
	AvailabilityAvailable  Availability = "available"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityLimited    Availability = "limited"
	AvailabilityUnknown    Availability = "unknown"
)

// PriceCheckResult is what the price verification service reported for a
// product url. Prices are optional; a failed check carries only Error.
type PriceCheckResult struct {
	Success       bool         `json:"success"`
	CurrentPrice  *int64       `json:"current_price,omitempty"`
	OriginalPrice *int64       `json:"original_price,omitempty"`
	DiscountRate  *float64     `json:"discount_rate,omitempty"`
	Availability  Availability `json:"availability"`
	Source        string       `json:"source,omitempty"`
	Error         string       `json:"error,omitempty"`
	LastChecked   time.Time    `json:"last_checked"`
}

// IsStale reports whether the result is older than after at now.
func (p PriceCheckResult) IsStale(now time.Time, after time.Duration) bool {
	return p.LastChecked.IsZero() || now.Sub(p.LastChecked) > after
}

func (p PriceCheckResult) Clone() PriceCheckResult {
	out := p
	if p.CurrentPrice != nil {
		v := *p.CurrentPrice
		out.CurrentPrice = &v
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	if p.DiscountRate != nil {
		v := *p.DiscountRate
		out.DiscountRate = &v
	}
	return out
}
