package entities

import (
	"encoding/json"
	"fmt"
	"math"
)

// FeeCategory groups additional quote line items for reporting.
type FeeCategory string

const (
	FeeCategoryService   FeeCategory = "service"
	FeeCategoryShipping  FeeCategory = "shipping"
	FeeCategoryInsurance FeeCategory = "insurance"
	FeeCategoryCustoms   FeeCategory = "customs"
	FeeCategoryOther     FeeCategory = "other"
)

const (
	FeeTypeFixed      = "fixed"
	FeeTypePercentage = "percentage"
)

// FeeKind is a closed set: only FixedFee and PercentageFee implement it.
type FeeKind interface {
	// Resolve returns the won amount this fee adds for the given product cost.
	Resolve(productCost int64) int64
	Type() string
	sealedFeeKind()
}

// FixedFee adds a flat amount in won.
type FixedFee struct {
	Amount int64
}

func (f FixedFee) Resolve(int64) int64 { return f.Amount }
func (FixedFee) Type() string          { return FeeTypeFixed }
func (FixedFee) sealedFeeKind()        {}

// PercentageFee adds Rate percent of the product cost, rounded to the won.
type PercentageFee struct {
	Rate float64
}

func (f PercentageFee) Resolve(productCost int64) int64 {
	return int64(math.Round(float64(productCost) * f.Rate / 100))
}
func (PercentageFee) Type() string   { return FeeTypePercentage }
func (PercentageFee) sealedFeeKind() {}

// QuotationFee is an ad-hoc line item attached to a quote (customs, insurance...).
type QuotationFee struct {
	ID          string
	Name        string
	Description string
	Kind        FeeKind
	IsOptional  bool
	Category    FeeCategory
}

// Resolve returns the fee amount for productCost; a fee without a kind adds nothing.
func (f QuotationFee) Resolve(productCost int64) int64 {
	if f.Kind == nil {
		return 0
	}
	return f.Kind.Resolve(productCost)
}

type quotationFeeJSON struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Type        string      `json:"type"`
	Amount      float64     `json:"amount"`
	IsOptional  bool        `json:"is_optional"`
	Category    FeeCategory `json:"category,omitempty"`
}

func (f QuotationFee) MarshalJSON() ([]byte, error) {
	out := quotationFeeJSON{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		IsOptional:  f.IsOptional,
		Category:    f.Category,
	}
	switch k := f.Kind.(type) {
	case FixedFee:
		out.Type, out.Amount = FeeTypeFixed, float64(k.Amount)
	case PercentageFee:
		out.Type, out.Amount = FeeTypePercentage, k.Rate
	case nil:
		return nil, fmt.Errorf("fee %q has no kind", f.Name)
	}
	return json.Marshal(out)
}

func (f *QuotationFee) UnmarshalJSON(b []byte) error {
	var in quotationFeeJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	kind, err := NewFeeKind(in.Type, in.Amount)
	if err != nil {
		return err
	}
	*f = QuotationFee{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Kind:        kind,
		IsOptional:  in.IsOptional,
		Category:    in.Category,
	}
	return nil
}

// NewFeeKind builds the variant named by feeType. Fixed amounts are rounded to the won.
func NewFeeKind(feeType string, amount float64) (FeeKind, error) {
	switch feeType {
	case FeeTypeFixed:
		return FixedFee{Amount: int64(math.Round(amount))}, nil
	case FeeTypePercentage:
		return PercentageFee{Rate: amount}, nil
	default:
		return nil, fmt.Errorf("unknown fee type %q", feeType)
	}
}

// FeeAmount returns the raw amount carried by kind (won for fixed, rate for percentage).
func FeeAmount(kind FeeKind) float64 {
	switch k := kind.(type) {
	case FixedFee:
		return float64(k.Amount)
	case PercentageFee:
		return k.Rate
	}
	return 0
}
