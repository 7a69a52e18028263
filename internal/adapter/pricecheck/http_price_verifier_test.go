package pricecheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hiko_buyforme/internal/domain/entities"
)

func TestHTTPPriceVerifier_Verify(t *testing.T) {
	productURL := "https://shop.example.kr/p/1?opt=a&b=c"

	t.Run("decodes result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/verify" || r.URL.Query().Get("url") != productURL {
				t.Errorf("unexpected request: %s", r.URL.String())
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"current_price":45000,"availability":"limited","source":"crawler","last_checked":"2026-03-01T09:00:00Z"}`))
		}))
		defer srv.Close()

		v := NewHTTPPriceVerifier(srv.URL+"/", time.Second, 0, nil)
		res, err := v.Verify(context.Background(), productURL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Success || res.CurrentPrice == nil || *res.CurrentPrice != 45000 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Availability != entities.AvailabilityLimited || res.LastChecked.IsZero() {
			t.Fatalf("unexpected availability or timestamp: %+v", res)
		}
	})

	t.Run("unknown availability is normalised", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"availability":"maybe","error":"blocked"}`))
		}))
		defer srv.Close()

		res, err := NewHTTPPriceVerifier(srv.URL, time.Second, 0, nil).Verify(context.Background(), productURL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Success || res.Availability != entities.AvailabilityUnknown || res.Error != "blocked" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("upstream error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		if _, err := NewHTTPPriceVerifier(srv.URL, time.Second, 0, nil).Verify(context.Background(), productURL); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		if _, err := NewHTTPPriceVerifier(srv.URL, 20*time.Millisecond, 0, nil).Verify(context.Background(), productURL); err == nil {
			t.Fatalf("expected timeout error")
		}
	})

	t.Run("cancelled context while throttled", func(t *testing.T) {
		v := NewHTTPPriceVerifier("http://127.0.0.1:1", time.Second, 1, nil)
		// Drain the single token.
		v.limiter.Allow()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := v.Verify(ctx, productURL); err == nil {
			t.Fatalf("expected rate limit error")
		}
	})
}
