package request

import (
	"errors"
	"fmt"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/usecase"
)

var ErrInvalidFee = errors.New("invalid additional fee")

type FeeRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Type        string  `json:"type" binding:"required,oneof=fixed percentage"`
	Amount      float64 `json:"amount" binding:"min=0,max=1000000000000"`
	IsOptional  bool    `json:"is_optional"`
	Category    string  `json:"category" binding:"omitempty,oneof=service shipping insurance customs other"`
}

func (f FeeRequest) ToEntity() (entities.QuotationFee, error) {
	kind, err := entities.NewFeeKind(f.Type, f.Amount)
	if err != nil {
		return entities.QuotationFee{}, fmt.Errorf("%w: %v", ErrInvalidFee, err)
	}
	return entities.QuotationFee{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Kind:        kind,
		IsOptional:  f.IsOptional,
		Category:    entities.FeeCategory(f.Category),
	}, nil
}

func toFees(in []FeeRequest) ([]entities.QuotationFee, error) {
	out := make([]entities.QuotationFee, 0, len(in))
	for _, f := range in {
		fee, err := f.ToEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, fee)
	}
	return out, nil
}

// QuoteRequest drafts or revises the admin's quote.
type QuoteRequest struct {
	ProductCost       int64        `json:"product_cost" binding:"min=0,max=1000000000000"`
	ServiceFeePercent float64      `json:"service_fee_percent" binding:"min=0,max=50"`
	DomesticShipping  int64        `json:"domestic_shipping" binding:"min=0,max=1000000000000"`
	AdditionalFees    []FeeRequest `json:"additional_fees" binding:"omitempty,max=50,dive"`
	Notes             string       `json:"notes"`
	ValidDays         int          `json:"valid_days" binding:"required,min=1,max=30"`
}

func (r QuoteRequest) ToInput() (usecase.QuoteInput, error) {
	fees, err := toFees(r.AdditionalFees)
	if err != nil {
		return usecase.QuoteInput{}, err
	}
	return usecase.QuoteInput{
		ProductCost:       r.ProductCost,
		ServiceFeePercent: r.ServiceFeePercent,
		DomesticShipping:  r.DomesticShipping,
		AdditionalFees:    fees,
		Notes:             r.Notes,
		ValidDays:         r.ValidDays,
	}, nil
}

// TemplateQuoteRequest drafts a quote from the category template.
type TemplateQuoteRequest struct {
	Notes string `json:"notes"`
}

// PricingRequest previews a quote breakdown without touching any request.
type PricingRequest struct {
	ProductCost       int64        `json:"product_cost" binding:"min=0,max=1000000000000"`
	ServiceFeePercent float64      `json:"service_fee_percent" binding:"min=0,max=50"`
	DomesticShipping  int64        `json:"domestic_shipping" binding:"min=0,max=1000000000000"`
	AdditionalFees    []FeeRequest `json:"additional_fees" binding:"omitempty,max=50,dive"`
}

func (r PricingRequest) ToInput() (usecase.PricingInput, error) {
	fees, err := toFees(r.AdditionalFees)
	if err != nil {
		return usecase.PricingInput{}, err
	}
	return usecase.PricingInput{
		ProductCost:       r.ProductCost,
		ServiceFeePercent: r.ServiceFeePercent,
		DomesticShipping:  r.DomesticShipping,
		AdditionalFees:    fees,
	}, nil
}
