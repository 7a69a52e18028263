package entities

import "time"

// ProductInfo is the listing snapshot taken when the request is created.
type ProductInfo struct {
	Title           string  `json:"title"`
	OriginalPrice   int64   `json:"original_price"`
	DiscountedPrice int64   `json:"discounted_price"`
	DiscountRate    float64 `json:"discount_rate"`
	ShippingFee     int64   `json:"shipping_fee"`
	ImageURL        string  `json:"image_url,omitempty"`
	OriginalURL     string  `json:"original_url"`
	SiteName        string  `json:"site_name,omitempty"`
}

// ShippingInfo is the domestic delivery address. Phone is stored in E.164.
type ShippingInfo struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PostalCode    string `json:"postal_code"`
	DetailAddress string `json:"detail_address,omitempty"`
}

type OrderInfo struct {
	ActualOrderID  string    `json:"actual_order_id"`
	OrderDate      time.Time `json:"order_date"`
	TrackingNumber string    `json:"tracking_number,omitempty"`
	TrackingURL    string    `json:"tracking_url,omitempty"`
}

// BuyForMeRequest is the aggregate root of the proxy purchasing flow.
//
// Storage model:
//   - PK: id
//   - secondary lookups: user_id, status
//
// Lifecycle:
//   - created in pending_review, moved only by the lifecycle use case
//   - never deleted; cancelled is the soft terminal state
type BuyForMeRequest struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	HotdealID       string        `json:"hotdeal_id,omitempty"`
	ProductInfo     ProductInfo   `json:"product_info"`
	Quantity        int           `json:"quantity"`
	ProductOptions  string        `json:"product_options,omitempty"`
	ShippingInfo    ShippingInfo  `json:"shipping_info"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	Status          RequestStatus `json:"status"`

	Quote        *Quote            `json:"quote,omitempty"`
	QuoteHistory []Quote           `json:"quote_history,omitempty"`
	OrderInfo    *OrderInfo        `json:"order_info,omitempty"`
	Payment      *PaymentInfo      `json:"payment,omitempty"`
	PriceCheck   *PriceCheckResult `json:"price_check,omitempty"`
	CancelReason string            `json:"cancel_reason,omitempty"`

	EstimatedServiceFee  int64 `json:"estimated_service_fee"`
	EstimatedTotalAmount int64 `json:"estimated_total_amount"`

	RequestDate time.Time `json:"request_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate it without touching r.
func (r BuyForMeRequest) Clone() BuyForMeRequest {
	out := r
	if r.Quote != nil {
		q := r.Quote.Clone()
		out.Quote = &q
	}
	if r.QuoteHistory != nil {
		out.QuoteHistory = make([]Quote, len(r.QuoteHistory))
		for i, q := range r.QuoteHistory {
			out.QuoteHistory[i] = q.Clone()
		}
	}
	if r.OrderInfo != nil {
		o := *r.OrderInfo
		out.OrderInfo = &o
	}
	if r.Payment != nil {
		p := *r.Payment
		out.Payment = &p
	}
	if r.PriceCheck != nil {
		pc := r.PriceCheck.Clone()
		out.PriceCheck = &pc
	}
	return out
}

// ProductSubtotal is the listing price times quantity.
func (r BuyForMeRequest) ProductSubtotal() int64 {
	return r.ProductInfo.DiscountedPrice * int64(r.Quantity)
}
