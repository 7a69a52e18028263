package usecase

import (
	"context"
	"strings"

	"hiko_buyforme/internal/domain/entities"
)

const (
	DefaultQuoteValidDays       = 7
	DefaultTemplateFeePercent   = 8.0
	DefaultTemplateShippingFee  = int64(3000)
	electronicsInspectionFeeWon = int64(5000)
)

var generalQuoteTemplate = entities.QuoteTemplate{
	ID:                "general-standard",
	Name:              "General goods",
	Category:          entities.CategoryOther,
	ServiceFeePercent: DefaultTemplateFeePercent,
	ShippingFee:       DefaultTemplateShippingFee,
	ValidDays:         DefaultQuoteValidDays,
}

// Categories without an entry here use generalQuoteTemplate.
var quoteTemplates = map[entities.ProductCategory]entities.QuoteTemplate{
	entities.CategoryElectronics: {
		ID:                "electronics-standard",
		Name:              "Electronics",
		Category:          entities.CategoryElectronics,
		ServiceFeePercent: DefaultTemplateFeePercent,
		AdditionalFees: []entities.QuotationFee{{
			Name:        "Electronics inspection",
			Description: "Power-on check and packaging inspection",
			Kind:        entities.FixedFee{Amount: electronicsInspectionFeeWon},
			Category:    entities.FeeCategoryService,
		}},
		ShippingFee: DefaultTemplateShippingFee,
		ValidDays:   DefaultQuoteValidDays,
	},
	entities.CategoryFashion: {
		ID:                "fashion-standard",
		Name:              "Fashion",
		Category:          entities.CategoryFashion,
		ServiceFeePercent: DefaultTemplateFeePercent,
		ShippingFee:       DefaultTemplateShippingFee,
		ValidDays:         DefaultQuoteValidDays,
	},
}

// QuoteTemplateFor picks the template for the request's product category.
// The returned template owns its fee slice.
func QuoteTemplateFor(r entities.BuyForMeRequest) entities.QuoteTemplate {
	t, ok := quoteTemplates[entities.DetectProductCategory(r.ProductInfo.Title)]
	if !ok {
		t = generalQuoteTemplate
	}
	t.AdditionalFees = append([]entities.QuotationFee(nil), t.AdditionalFees...)
	return t
}

// TemplateQuoteInput pre-fills a quote for r at unitPrice per item.
func TemplateQuoteInput(r entities.BuyForMeRequest, unitPrice int64) (QuoteInput, entities.QuoteTemplate, error) {
	t := QuoteTemplateFor(r)
	cost, err := productSubtotal(unitPrice, r.Quantity)
	if err != nil {
		return QuoteInput{}, entities.QuoteTemplate{}, err
	}
	return QuoteInput{
		ProductCost:       cost,
		ServiceFeePercent: t.ServiceFeePercent,
		DomesticShipping:  t.ShippingFee,
		AdditionalFees:    t.AdditionalFees,
		ValidDays:         t.ValidDays,
		TemplateID:        t.ID,
	}, t, nil
}

// DraftQuoteFromTemplate drafts a quote from the category template, priced at
// the verified unit price when the check succeeds and the listing price
// otherwise.
func (u *BuyForMeUseCase) DraftQuoteFromTemplate(ctx context.Context, id string, notes string) (entities.BuyForMeRequest, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	if current.Status != entities.StatusPendingReview {
		return entities.BuyForMeRequest{}, invalid("status", "quotes can only be drafted while pending review")
	}

	unitPrice := current.ProductInfo.DiscountedPrice
	if p := u.prices.Assess(ctx, current).VerifiedPrice(); p != nil {
		unitPrice = *p
	}
	in, t, err := TemplateQuoteInput(current, unitPrice)
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	in.Notes = strings.TrimSpace(notes)

	u.log.WithContext(ctx).WithRequestID(current.ID).Info("drafting quote from template", "template_id", t.ID, "unit_price", unitPrice)
	return u.DraftQuote(ctx, id, in)
}
