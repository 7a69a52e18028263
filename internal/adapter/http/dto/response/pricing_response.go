package response

import "hiko_buyforme/internal/usecase"

type PricingResponse struct {
	ProductCost         int64         `json:"product_cost"`
	ServiceFee          int64         `json:"service_fee"`
	AdditionalFees      []FeeResponse `json:"additional_fees"`
	AdditionalFeesTotal int64         `json:"additional_fees_total"`
	DomesticShipping    int64         `json:"domestic_shipping"`
	TotalAmount         int64         `json:"total_amount"`
}

func FromPricing(in usecase.PricingInput, res usecase.PricingResult) PricingResponse {
	fees := make([]FeeResponse, 0, len(res.Fees))
	for _, f := range res.Fees {
		fr := FromFee(f.Fee, in.ProductCost)
		fr.ResolvedAmount = f.Amount
		fees = append(fees, fr)
	}
	return PricingResponse{
		ProductCost:         in.ProductCost,
		ServiceFee:          res.ServiceFee,
		AdditionalFees:      fees,
		AdditionalFeesTotal: res.AdditionalFeesTotal,
		DomesticShipping:    in.DomesticShipping,
		TotalAmount:         res.TotalAmount,
	}
}

// PriceAssessmentResponse reports a price check next to the request it was
// run for. Error is set when the verifier could not be reached.
type PriceAssessmentResponse struct {
	Request                BuyForMeRequestResponse `json:"request"`
	Verified               bool                    `json:"verified"`
	FromCache              bool                    `json:"from_cache"`
	ListedUnitPrice        int64                   `json:"listed_unit_price"`
	EffectiveUnitPrice     int64                   `json:"effective_unit_price"`
	DeviationPercent       float64                 `json:"deviation_percent"`
	Warnings               []string                `json:"warnings"`
	RequiresCustomerNotice bool                    `json:"requires_customer_notice"`
	Risk                   string                  `json:"risk"`
	Error                  string                  `json:"error,omitempty"`
}

func FromAssessment(a usecase.PriceAssessment, r BuyForMeRequestResponse) PriceAssessmentResponse {
	out := PriceAssessmentResponse{
		Request:                r,
		Verified:               a.Verified,
		FromCache:              a.FromCache,
		ListedUnitPrice:        a.ListedUnitPrice,
		EffectiveUnitPrice:     a.EffectiveUnitPrice,
		DeviationPercent:       a.DeviationPercent,
		Warnings:               a.Warnings,
		RequiresCustomerNotice: a.RequiresCustomerNotice,
		Risk:                   string(a.Risk),
	}
	if out.Warnings == nil {
		out.Warnings = []string{}
	}
	if a.Err != nil {
		out.Error = a.Err.Error()
	}
	return out
}
