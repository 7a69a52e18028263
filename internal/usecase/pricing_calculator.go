package usecase

import (
	"math"
	"strings"

	"hiko_buyforme/internal/domain/entities"
)

const (
	MaxServiceFeePercent = 50.0
	MaxFeeRate           = 100.0

	// Ceilings keep every total well inside int64.
	MaxAmount         = int64(1_000_000_000_000)
	MaxQuantity       = 1000
	MaxAdditionalFees = 50

	DefaultEstimateServiceFeePercent = 10.0
	DefaultEstimateShippingFee       = int64(3000)
)

// PricingInput is everything a quote total depends on.
type PricingInput struct {
	ProductCost       int64
	ServiceFeePercent float64
	DomesticShipping  int64
	AdditionalFees    []entities.QuotationFee
}

// ResolvedFee pairs a fee with the won amount it resolved to.
type ResolvedFee struct {
	Fee    entities.QuotationFee
	Amount int64
}

type PricingResult struct {
	ServiceFee          int64
	AdditionalFeesTotal int64
	TotalAmount         int64
	Fees                []ResolvedFee
}

// CalculatePricing computes the quote breakdown. It has no side effects and
// always returns the same result for the same input.
func CalculatePricing(in PricingInput) (PricingResult, error) {
	if err := validatePricingInput(in); err != nil {
		return PricingResult{}, err
	}

	serviceFee := roundWon(float64(in.ProductCost) * in.ServiceFeePercent / 100)

	fees := make([]ResolvedFee, 0, len(in.AdditionalFees))
	var feesTotal int64
	for _, f := range in.AdditionalFees {
		amount := f.Resolve(in.ProductCost)
		feesTotal += amount
		fees = append(fees, ResolvedFee{Fee: f, Amount: amount})
	}

	return PricingResult{
		ServiceFee:          serviceFee,
		AdditionalFeesTotal: feesTotal,
		TotalAmount:         in.ProductCost + serviceFee + feesTotal + in.DomesticShipping,
		Fees:                fees,
	}, nil
}

func validatePricingInput(in PricingInput) error {
	if in.ProductCost < 0 || in.ProductCost > MaxAmount {
		return invalid("product_cost", "must be between 0 and 1,000,000,000,000")
	}
	if math.IsNaN(in.ServiceFeePercent) || in.ServiceFeePercent < 0 || in.ServiceFeePercent > MaxServiceFeePercent {
		return invalid("service_fee_percent", "must be between 0 and 50")
	}
	if in.DomesticShipping < 0 || in.DomesticShipping > MaxAmount {
		return invalid("domestic_shipping", "must be between 0 and 1,000,000,000,000")
	}
	if len(in.AdditionalFees) > MaxAdditionalFees {
		return invalid("additional_fees", "at most 50 fees are allowed")
	}
	for _, f := range in.AdditionalFees {
		if strings.TrimSpace(f.Name) == "" {
			return invalid("additional_fees.name", "is required")
		}
		switch k := f.Kind.(type) {
		case entities.FixedFee:
			if k.Amount < 0 || k.Amount > MaxAmount {
				return invalid("additional_fees.amount", "fixed fee must be between 0 and 1,000,000,000,000")
			}
		case entities.PercentageFee:
			if math.IsNaN(k.Rate) || k.Rate < 0 || k.Rate > MaxFeeRate {
				return invalid("additional_fees.amount", "percentage fee must be between 0 and 100")
			}
		default:
			return invalid("additional_fees.type", "must be fixed or percentage")
		}
	}
	return nil
}

// Estimate is the customer-facing figure shown before any quote exists.
type Estimate struct {
	Subtotal    int64
	ServiceFee  int64
	ShippingFee int64
	TotalAmount int64
}

// EstimateForProduct computes the pre-quote estimate for quantity units at
// unitPrice: subtotal, a service fee of feePercent, and a flat shipping fee.
func EstimateForProduct(unitPrice int64, quantity int, feePercent float64, shipping int64) (Estimate, error) {
	subtotal, err := productSubtotal(unitPrice, quantity)
	if err != nil {
		return Estimate{}, err
	}
	res, err := CalculatePricing(PricingInput{
		ProductCost:       subtotal,
		ServiceFeePercent: feePercent,
		DomesticShipping:  shipping,
	})
	if err != nil {
		return Estimate{}, err
	}
	return Estimate{
		Subtotal:    subtotal,
		ServiceFee:  res.ServiceFee,
		ShippingFee: shipping,
		TotalAmount: res.TotalAmount,
	}, nil
}

// productSubtotal multiplies without leaving the MaxAmount range.
func productSubtotal(unitPrice int64, quantity int) (int64, error) {
	if unitPrice < 0 || unitPrice > MaxAmount {
		return 0, invalid("product_info.discounted_price", "must be between 0 and 1,000,000,000,000")
	}
	if quantity <= 0 || quantity > MaxQuantity {
		return 0, invalid("quantity", "must be between 1 and 1000")
	}
	if unitPrice > MaxAmount/int64(quantity) {
		return 0, invalid("quantity", "subtotal exceeds 1,000,000,000,000")
	}
	return unitPrice * int64(quantity), nil
}

func roundWon(v float64) int64 {
	return int64(math.Round(v))
}
