// Package pricecheck talks to the external price verification service.
package pricecheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase/interfaces"

	"golang.org/x/time/rate"
)

const defaultTimeout = 5 * time.Second

// HTTPPriceVerifier calls GET {baseURL}/verify?url=<product url>.
// Outgoing calls are throttled by a token bucket shared by all callers.
type HTTPPriceVerifier struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
}

var _ interfaces.IPriceVerifier = (*HTTPPriceVerifier)(nil)

// NewHTTPPriceVerifier builds a verifier. perSecond <= 0 disables throttling.
func NewHTTPPriceVerifier(baseURL string, timeout time.Duration, perSecond float64, log *logger.Logger) *HTTPPriceVerifier {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	limit := rate.Inf
	burst := 1
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
		burst = max(int(perSecond), 1)
	}
	return &HTTPPriceVerifier{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, burst),
		log:        log,
	}
}

type verifyResponse struct {
	Success       bool       `json:"success"`
	CurrentPrice  *int64     `json:"current_price"`
	OriginalPrice *int64     `json:"original_price"`
	DiscountRate  *float64   `json:"discount_rate"`
	Availability  string     `json:"availability"`
	Source        string     `json:"source"`
	Error         string     `json:"error"`
	LastChecked   *time.Time `json:"last_checked"`
}

func (v *HTTPPriceVerifier) Verify(ctx context.Context, productURL string) (entities.PriceCheckResult, error) {
	if err := v.limiter.Wait(ctx); err != nil {
		return entities.PriceCheckResult{}, fmt.Errorf("rate limit: %w", err)
	}

	params := url.Values{}
	params.Set("url", productURL)
	reqURL := fmt.Sprintf("%s/verify?%s", v.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entities.PriceCheckResult{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.Warn("price verification request failed", "error", err, "product_url", productURL)
		return entities.PriceCheckResult{}, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.Warn("price verification upstream error", "status", resp.StatusCode, "product_url", productURL)
		return entities.PriceCheckResult{}, fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.PriceCheckResult{}, fmt.Errorf("decode response: %w", err)
	}
	return body.toEntity(), nil
}

func (r verifyResponse) toEntity() entities.PriceCheckResult {
	out := entities.PriceCheckResult{
		Success:       r.Success,
		CurrentPrice:  r.CurrentPrice,
		OriginalPrice: r.OriginalPrice,
		DiscountRate:  r.DiscountRate,
		Availability:  entities.Availability(r.Availability),
		Source:        r.Source,
		Error:         r.Error,
	}
	switch out.Availability {
	case entities.AvailabilityAvailable, entities.AvailabilityOutOfStock, entities.AvailabilityLimited:
	default:
		out.Availability = entities.AvailabilityUnknown
	}
	if r.LastChecked != nil {
		out.LastChecked = r.LastChecked.UTC()
	}
	return out
}
