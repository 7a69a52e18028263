package response

import (
	"time"

	"hiko_buyforme/internal/domain/entities"
)

type FeeResponse struct {
	ID             string  `json:"id,omitempty"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	ResolvedAmount int64   `json:"resolved_amount"`
	IsOptional     bool    `json:"is_optional"`
	Category       string  `json:"category,omitempty"`
}

func FromFee(f entities.QuotationFee, productCost int64) FeeResponse {
	out := FeeResponse{
		ID:             f.ID,
		Name:           f.Name,
		Description:    f.Description,
		Amount:         entities.FeeAmount(f.Kind),
		ResolvedAmount: f.Resolve(productCost),
		IsOptional:     f.IsOptional,
		Category:       string(f.Category),
	}
	if f.Kind != nil {
		out.Type = f.Kind.Type()
	}
	return out
}

type QuoteResponse struct {
	Version             int           `json:"version"`
	ProductCost         int64         `json:"product_cost"`
	ServiceFee          int64         `json:"service_fee"`
	ServiceFeePercent   float64       `json:"service_fee_percent"`
	AdditionalFees      []FeeResponse `json:"additional_fees"`
	AdditionalFeesTotal int64         `json:"additional_fees_total"`
	DomesticShipping    int64         `json:"domestic_shipping"`
	TotalAmount         int64         `json:"total_amount"`
	Notes               string        `json:"notes,omitempty"`
	TemplateID          string        `json:"template_id,omitempty"`
	ValidUntil          time.Time     `json:"valid_until"`
	SentAt              *time.Time    `json:"sent_at,omitempty"`
	QuoteApprovedDate   *time.Time    `json:"quote_approved_date,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	fees := make([]FeeResponse, 0, len(q.AdditionalFees))
	for _, f := range q.AdditionalFees {
		fees = append(fees, FromFee(f, q.ProductCost))
	}
	return QuoteResponse{
		Version:             q.Version,
		ProductCost:         q.ProductCost,
		ServiceFee:          q.ServiceFee,
		ServiceFeePercent:   q.ServiceFeePercent,
		AdditionalFees:      fees,
		AdditionalFeesTotal: q.AdditionalFeesTotal,
		DomesticShipping:    q.DomesticShipping,
		TotalAmount:         q.TotalAmount,
		Notes:               q.Notes,
		TemplateID:          q.TemplateID,
		ValidUntil:          q.ValidUntil,
		SentAt:              q.SentAt,
		QuoteApprovedDate:   q.QuoteApprovedDate,
		CreatedAt:           q.CreatedAt,
	}
}

type PriceCheckResponse struct {
	Success       bool      `json:"success"`
	CurrentPrice  *int64    `json:"current_price,omitempty"`
	OriginalPrice *int64    `json:"original_price,omitempty"`
	DiscountRate  *float64  `json:"discount_rate,omitempty"`
	Availability  string    `json:"availability"`
	Source        string    `json:"source,omitempty"`
	Error         string    `json:"error,omitempty"`
	LastChecked   time.Time `json:"last_checked"`
}

func FromPriceCheck(p entities.PriceCheckResult) PriceCheckResponse {
	return PriceCheckResponse{
		Success:       p.Success,
		CurrentPrice:  p.CurrentPrice,
		OriginalPrice: p.OriginalPrice,
		DiscountRate:  p.DiscountRate,
		Availability:  string(p.Availability),
		Source:        p.Source,
		Error:         p.Error,
		LastChecked:   p.LastChecked,
	}
}

type BuyForMeRequestResponse struct {
	ID                   string                `json:"id"`
	UserID               string                `json:"user_id"`
	HotdealID            string                `json:"hotdeal_id,omitempty"`
	ProductInfo          entities.ProductInfo  `json:"product_info"`
	Quantity             int                   `json:"quantity"`
	ProductOptions       string                `json:"product_options,omitempty"`
	ShippingInfo         entities.ShippingInfo `json:"shipping_info"`
	SpecialRequests      string                `json:"special_requests,omitempty"`
	Status               string                `json:"status"`
	Quote                *QuoteResponse        `json:"quote,omitempty"`
	QuoteHistory         []QuoteResponse       `json:"quote_history,omitempty"`
	OrderInfo            *entities.OrderInfo   `json:"order_info,omitempty"`
	Payment              *entities.PaymentInfo `json:"payment,omitempty"`
	PriceCheck           *PriceCheckResponse   `json:"price_check,omitempty"`
	CancelReason         string                `json:"cancel_reason,omitempty"`
	EstimatedServiceFee  int64                 `json:"estimated_service_fee"`
	EstimatedTotalAmount int64                 `json:"estimated_total_amount"`
	RequestDate          time.Time             `json:"request_date"`
	CreatedAt            time.Time             `json:"created_at"`
	UpdatedAt            time.Time             `json:"updated_at"`
}

func FromRequest(r entities.BuyForMeRequest) BuyForMeRequestResponse {
	out := BuyForMeRequestResponse{
		ID:                   r.ID,
		UserID:               r.UserID,
		HotdealID:            r.HotdealID,
		ProductInfo:          r.ProductInfo,
		Quantity:             r.Quantity,
		ProductOptions:       r.ProductOptions,
		ShippingInfo:         r.ShippingInfo,
		SpecialRequests:      r.SpecialRequests,
		Status:               string(r.Status),
		OrderInfo:            r.OrderInfo,
		Payment:              r.Payment,
		CancelReason:         r.CancelReason,
		EstimatedServiceFee:  r.EstimatedServiceFee,
		EstimatedTotalAmount: r.EstimatedTotalAmount,
		RequestDate:          r.RequestDate,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
	if r.Quote != nil {
		q := FromQuote(*r.Quote)
		out.Quote = &q
	}
	for _, q := range r.QuoteHistory {
		out.QuoteHistory = append(out.QuoteHistory, FromQuote(q))
	}
	if r.PriceCheck != nil {
		pc := FromPriceCheck(*r.PriceCheck)
		out.PriceCheck = &pc
	}
	return out
}

type BuyForMeRequestListResponse struct {
	Items []BuyForMeRequestResponse `json:"items"`
	Count int                       `json:"count"`
}

func FromRequests(rs []entities.BuyForMeRequest) BuyForMeRequestListResponse {
	items := make([]BuyForMeRequestResponse, 0, len(rs))
	for _, r := range rs {
		items = append(items, FromRequest(r))
	}
	return BuyForMeRequestListResponse{Items: items, Count: len(items)}
}

type StatsResponse struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

func FromStats(stats map[entities.RequestStatus]int) StatsResponse {
	out := StatsResponse{ByStatus: make(map[string]int, len(stats))}
	for s, n := range stats {
		out.ByStatus[string(s)] = n
		out.Total += n
	}
	return out
}
