package request

import (
	"errors"
	"testing"
	"time"

	"hiko_buyforme/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
)

func validCreate() CreateRequestRequest {
	return CreateRequestRequest{
		UserID: "user-1",
		ProductInfo: ProductInfoRequest{
			Title:           "Air fryer",
			OriginalPrice:   60000,
			DiscountedPrice: 50000,
			OriginalURL:     "https://shop.example.kr/p/1",
			SiteName:        " coupang ",
		},
		Quantity: 2,
		ShippingInfo: ShippingInfoRequest{
			Name:       "Kim Minji",
			Phone:      "010-1234-5678",
			Email:      "minji@example.com",
			Address:    "Seoul",
			PostalCode: "04524",
		},
	}
}

func TestCreateRequestRequest_Binding(t *testing.T) {
	RegisterValidators()
	RegisterValidators()

	if err := binding.Validator.ValidateStruct(validCreate()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := map[string]func(r *CreateRequestRequest){
		"missing user":       func(r *CreateRequestRequest) { r.UserID = "" },
		"zero quantity":      func(r *CreateRequestRequest) { r.Quantity = 0 },
		"bad phone":          func(r *CreateRequestRequest) { r.ShippingInfo.Phone = "12" },
		"bad email":          func(r *CreateRequestRequest) { r.ShippingInfo.Email = "not-an-email" },
		"bad url":            func(r *CreateRequestRequest) { r.ProductInfo.OriginalURL = "shop" },
		"negative price":     func(r *CreateRequestRequest) { r.ProductInfo.DiscountedPrice = -1 },
		"negative estimate":  func(r *CreateRequestRequest) { r.EstimatedTotalAmount = -5 },
		"price above cap":    func(r *CreateRequestRequest) { r.ProductInfo.DiscountedPrice = 1_000_000_000_001 },
		"quantity above cap": func(r *CreateRequestRequest) { r.Quantity = 1001 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validCreate()
			mutate(&r)
			if err := binding.Validator.ValidateStruct(r); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestCreateRequestRequest_ToInput(t *testing.T) {
	in := validCreate().ToInput()
	if in.UserID != "user-1" || in.Quantity != 2 || in.ProductInfo.DiscountedPrice != 50000 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.ProductInfo.SiteName != "coupang" {
		t.Fatalf("expected trimmed site name, got %q", in.ProductInfo.SiteName)
	}
	if in.ShippingInfo.Phone != "010-1234-5678" {
		t.Fatalf("phone normalisation belongs to the use case, got %q", in.ShippingInfo.Phone)
	}
}

func TestQuoteRequest_ToInput(t *testing.T) {
	r := QuoteRequest{
		ProductCost:       100000,
		ServiceFeePercent: 10,
		DomesticShipping:  3000,
		ValidDays:         7,
		AdditionalFees: []FeeRequest{
			{Name: "insurance", Type: "fixed", Amount: 2000, Category: "insurance"},
			{Name: "customs", Type: "percentage", Amount: 2.5},
		},
	}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(in.AdditionalFees) != 2 || in.ValidDays != 7 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if k, ok := in.AdditionalFees[0].Kind.(entities.FixedFee); !ok || k.Amount != 2000 {
		t.Fatalf("expected fixed fee, got %#v", in.AdditionalFees[0].Kind)
	}
	if k, ok := in.AdditionalFees[1].Kind.(entities.PercentageFee); !ok || k.Rate != 2.5 {
		t.Fatalf("expected percentage fee, got %#v", in.AdditionalFees[1].Kind)
	}

	r.AdditionalFees = append(r.AdditionalFees, FeeRequest{Name: "bogus", Type: "ratio"})
	if _, err := r.ToInput(); !errors.Is(err, ErrInvalidFee) {
		t.Fatalf("expected ErrInvalidFee, got %v", err)
	}
}

func TestQuoteRequest_Binding(t *testing.T) {
	ok := QuoteRequest{ProductCost: 1000, ServiceFeePercent: 10, ValidDays: 7}
	if err := binding.Validator.ValidateStruct(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tooLong := ok
	tooLong.ValidDays = 31
	if err := binding.Validator.ValidateStruct(tooLong); err == nil {
		t.Fatalf("expected valid_days error")
	}

	badFee := ok
	badFee.AdditionalFees = []FeeRequest{{Name: "x", Type: "ratio"}}
	if err := binding.Validator.ValidateStruct(badFee); err == nil {
		t.Fatalf("expected fee type error")
	}

	huge := ok
	huge.ProductCost = 4_611_686_018_427_387_903
	if err := binding.Validator.ValidateStruct(huge); err == nil {
		t.Fatalf("expected product_cost ceiling error")
	}

	hugeFee := ok
	hugeFee.AdditionalFees = []FeeRequest{{Name: "x", Type: "fixed", Amount: 2e12}}
	if err := binding.Validator.ValidateStruct(hugeFee); err == nil {
		t.Fatalf("expected fee amount ceiling error")
	}

	hugePricing := PricingRequest{ProductCost: 1, DomesticShipping: 1_000_000_000_001}
	if err := binding.Validator.ValidateStruct(hugePricing); err == nil {
		t.Fatalf("expected domestic_shipping ceiling error")
	}
}

func TestPricingRequest_ToInput(t *testing.T) {
	in, err := PricingRequest{
		ProductCost:       50000,
		ServiceFeePercent: 8,
		AdditionalFees:    []FeeRequest{{Name: "wrap", Type: "fixed", Amount: 1500.4}},
	}.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ProductCost != 50000 || in.AdditionalFees[0].Resolve(in.ProductCost) != 1500 {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestPaymentAndOrderRequests(t *testing.T) {
	p := PaymentRequest{Method: "card", Amount: 115000, Reference: "r-1"}.ToInput()
	if p.Method != entities.PaymentMethodCard || p.Amount != 115000 {
		t.Fatalf("unexpected payment input: %+v", p)
	}
	if err := binding.Validator.ValidateStruct(PaymentRequest{Method: "cash", Amount: 1}); err == nil {
		t.Fatalf("expected method error")
	}

	o := OrderRequest{ActualOrderID: "ord-1"}.ToInput()
	if !o.OrderDate.IsZero() {
		t.Fatalf("expected zero order date, got %v", o.OrderDate)
	}
	when := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	o = OrderRequest{ActualOrderID: "ord-1", OrderDate: &when}.ToInput()
	if !o.OrderDate.Equal(when) {
		t.Fatalf("unexpected order date: %v", o.OrderDate)
	}
}
