package entities

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestQuotationFee_Resolve(t *testing.T) {
	fixed := QuotationFee{Name: "insurance", Kind: FixedFee{Amount: 2000}}
	if got := fixed.Resolve(50000); got != 2000 {
		t.Fatalf("expected 2000, got %d", got)
	}

	pct := QuotationFee{Name: "customs", Kind: PercentageFee{Rate: 5}}
	if got := pct.Resolve(50000); got != 2500 {
		t.Fatalf("expected 2500, got %d", got)
	}

	// 33333 * 1.5% = 499.995
	odd := QuotationFee{Name: "odd", Kind: PercentageFee{Rate: 1.5}}
	if got := odd.Resolve(33333); got != 500 {
		t.Fatalf("expected 500, got %d", got)
	}

	if got := (QuotationFee{Name: "empty"}).Resolve(1000); got != 0 {
		t.Fatalf("expected 0 for fee without kind, got %d", got)
	}
}

func TestQuotationFee_JSON(t *testing.T) {
	t.Run("decodes tagged kind", func(t *testing.T) {
		var f QuotationFee
		if err := json.Unmarshal([]byte(`{"id":"f1","name":"customs","type":"percentage","amount":5,"category":"customs"}`), &f); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		pct, ok := f.Kind.(PercentageFee)
		if !ok || pct.Rate != 5 {
			t.Fatalf("unexpected kind: %#v", f.Kind)
		}
		if f.Category != FeeCategoryCustoms {
			t.Fatalf("unexpected category: %s", f.Category)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		var f QuotationFee
		err := json.Unmarshal([]byte(`{"name":"x","type":"bogus","amount":1}`), &f)
		if err == nil || !strings.Contains(err.Error(), "bogus") {
			t.Fatalf("expected unknown fee type error, got %v", err)
		}
	})

	t.Run("encodes fixed fee", func(t *testing.T) {
		b, err := json.Marshal(QuotationFee{ID: "f2", Name: "packing", Kind: FixedFee{Amount: 1500}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(string(b), `"type":"fixed"`) || !strings.Contains(string(b), `"amount":1500`) {
			t.Fatalf("unexpected json: %s", b)
		}
	})
}

func TestBuyForMeRequest_Clone(t *testing.T) {
	sent := time.Now().UTC()
	price := int64(1000)
	r := BuyForMeRequest{
		ID: "r1",
		Quote: &Quote{
			Version:        1,
			AdditionalFees: []QuotationFee{{Name: "a", Kind: FixedFee{Amount: 1}}},
			SentAt:         &sent,
		},
		QuoteHistory: []Quote{{Version: 0}},
		OrderInfo:    &OrderInfo{ActualOrderID: "o1"},
		PriceCheck:   &PriceCheckResult{CurrentPrice: &price},
	}

	c := r.Clone()
	c.Quote.AdditionalFees[0].Name = "changed"
	*c.Quote.SentAt = sent.Add(time.Hour)
	c.QuoteHistory[0].Version = 9
	c.OrderInfo.ActualOrderID = "o2"
	*c.PriceCheck.CurrentPrice = 1

	if r.Quote.AdditionalFees[0].Name != "a" || !r.Quote.SentAt.Equal(sent) {
		t.Fatalf("quote was shared with clone")
	}
	if r.QuoteHistory[0].Version != 0 || r.OrderInfo.ActualOrderID != "o1" || *r.PriceCheck.CurrentPrice != 1000 {
		t.Fatalf("nested state was shared with clone")
	}
}
