package usecase

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"hiko_buyforme/internal/domain/entities"
)

func TestCalculatePricing_Scenarios(t *testing.T) {
	t.Run("service fee and shipping", func(t *testing.T) {
		res, err := CalculatePricing(PricingInput{ProductCost: 100000, ServiceFeePercent: 8, DomesticShipping: 3000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ServiceFee != 8000 || res.TotalAmount != 111000 {
			t.Fatalf("expected 8000/111000, got %d/%d", res.ServiceFee, res.TotalAmount)
		}
	})

	t.Run("percentage additional fee", func(t *testing.T) {
		res, err := CalculatePricing(PricingInput{
			ProductCost:       50000,
			ServiceFeePercent: 10,
			AdditionalFees:    []entities.QuotationFee{{Name: "customs", Kind: entities.PercentageFee{Rate: 5}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AdditionalFeesTotal != 2500 || res.ServiceFee != 5000 || res.TotalAmount != 57500 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if len(res.Fees) != 1 || res.Fees[0].Amount != 2500 {
			t.Fatalf("unexpected resolved fees: %+v", res.Fees)
		}
	})

	t.Run("optional fees still count", func(t *testing.T) {
		res, err := CalculatePricing(PricingInput{
			ProductCost: 10000,
			AdditionalFees: []entities.QuotationFee{
				{Name: "insurance", Kind: entities.FixedFee{Amount: 1000}, IsOptional: true},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TotalAmount != 11000 {
			t.Fatalf("expected 11000, got %d", res.TotalAmount)
		}
	})
}

func TestCalculatePricing_Validation(t *testing.T) {
	cases := []struct {
		name  string
		in    PricingInput
		field string
	}{
		{"negative cost", PricingInput{ProductCost: -1}, "product_cost"},
		{"fee percent above 50", PricingInput{ProductCost: 1, ServiceFeePercent: 50.5}, "service_fee_percent"},
		{"negative fee percent", PricingInput{ProductCost: 1, ServiceFeePercent: -1}, "service_fee_percent"},
		{"negative shipping", PricingInput{ProductCost: 1, DomesticShipping: -10}, "domestic_shipping"},
		{"nameless fee", PricingInput{AdditionalFees: []entities.QuotationFee{{Kind: entities.FixedFee{Amount: 1}}}}, "additional_fees.name"},
		{"negative fixed fee", PricingInput{AdditionalFees: []entities.QuotationFee{{Name: "x", Kind: entities.FixedFee{Amount: -1}}}}, "additional_fees.amount"},
		{"rate above 100", PricingInput{AdditionalFees: []entities.QuotationFee{{Name: "x", Kind: entities.PercentageFee{Rate: 101}}}}, "additional_fees.amount"},
		{"fee without kind", PricingInput{AdditionalFees: []entities.QuotationFee{{Name: "x"}}}, "additional_fees.type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculatePricing(tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, ve.Field)
			}
		})
	}

	if _, err := CalculatePricing(PricingInput{ProductCost: 0, ServiceFeePercent: 50}); err != nil {
		t.Fatalf("boundary values must be accepted, got %v", err)
	}
}

func TestCalculatePricing_DeterministicAndDecomposed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		in := PricingInput{
			ProductCost:       rng.Int63n(5_000_000),
			ServiceFeePercent: float64(rng.Intn(5001)) / 100,
			DomesticShipping:  rng.Int63n(50_000),
		}
		for j := 0; j < rng.Intn(4); j++ {
			if rng.Intn(2) == 0 {
				in.AdditionalFees = append(in.AdditionalFees, entities.QuotationFee{Name: "fixed", Kind: entities.FixedFee{Amount: rng.Int63n(20_000)}})
			} else {
				in.AdditionalFees = append(in.AdditionalFees, entities.QuotationFee{Name: "pct", Kind: entities.PercentageFee{Rate: float64(rng.Intn(10001)) / 100}})
			}
		}

		first, err := CalculatePricing(in)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", in, err)
		}
		second, _ := CalculatePricing(in)
		if first.TotalAmount != second.TotalAmount || first.ServiceFee != second.ServiceFee {
			t.Fatalf("non-deterministic result for %+v", in)
		}
		if first.TotalAmount != in.ProductCost+first.ServiceFee+first.AdditionalFeesTotal+in.DomesticShipping {
			t.Fatalf("total does not decompose for %+v: %+v", in, first)
		}
	}
}

func TestEstimateForProduct(t *testing.T) {
	est, err := EstimateForProduct(25000, 2, DefaultEstimateServiceFeePercent, DefaultEstimateShippingFee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Subtotal != 50000 || est.ServiceFee != 5000 || est.TotalAmount != 58000 {
		t.Fatalf("unexpected estimate: %+v", est)
	}

	_, err = EstimateForProduct(25000, 0, 10, 3000)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero quantity, got %v", err)
	}
}

func TestCalculatePricing_RejectsAmountsThatWouldOverflow(t *testing.T) {
	huge := int64(math.MaxInt64 / 2)
	cases := []struct {
		name  string
		in    PricingInput
		field string
	}{
		{"product cost", PricingInput{ProductCost: huge, ServiceFeePercent: 50, DomesticShipping: huge}, "product_cost"},
		{"shipping", PricingInput{ProductCost: 1, DomesticShipping: MaxAmount + 1}, "domestic_shipping"},
		{"fixed fee", PricingInput{AdditionalFees: []entities.QuotationFee{{Name: "x", Kind: entities.FixedFee{Amount: huge}}}}, "additional_fees.amount"},
		{"too many fees", PricingInput{AdditionalFees: make([]entities.QuotationFee, MaxAdditionalFees+1)}, "additional_fees"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := CalculatePricing(tc.in)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected ValidationError on %s, got %+v %v", tc.field, res, err)
			}
		})
	}

	fees := make([]entities.QuotationFee, MaxAdditionalFees)
	for i := range fees {
		fees[i] = entities.QuotationFee{Name: "pct", Kind: entities.PercentageFee{Rate: MaxFeeRate}}
	}
	res, err := CalculatePricing(PricingInput{
		ProductCost:       MaxAmount,
		ServiceFeePercent: MaxServiceFeePercent,
		DomesticShipping:  MaxAmount,
		AdditionalFees:    fees,
	})
	if err != nil {
		t.Fatalf("ceiling values must be accepted, got %v", err)
	}
	if res.TotalAmount <= 0 || res.TotalAmount != MaxAmount*(2+MaxAdditionalFees)+MaxAmount/2 {
		t.Fatalf("unexpected total at the ceiling: %d", res.TotalAmount)
	}
}

func TestEstimateForProduct_RejectsOversizedSubtotal(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice int64
		quantity  int
		field     string
	}{
		{"subtotal above ceiling", math.MaxInt64 / 2, 3, "product_info.discounted_price"},
		{"unit price times quantity", MaxAmount / 2, 3, "quantity"},
		{"quantity above cap", 1000, MaxQuantity + 1, "quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EstimateForProduct(tc.unitPrice, tc.quantity, DefaultEstimateServiceFeePercent, DefaultEstimateShippingFee)
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected ValidationError on %s, got %v", tc.field, err)
			}
		})
	}
}
