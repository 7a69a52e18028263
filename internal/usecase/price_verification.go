package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

const (
	DefaultPriceCheckStaleAfter = 2 * time.Minute

	priceDriftWarnPercent   = 10.0
	priceDriftNoticePercent = 20.0
	highValueProductCost    = int64(500000)
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// PriceAssessment is the outcome of checking a request's listing price
// against the verification service.
//
// When Verified is false the unit price falls back to the listing snapshot and
// Err carries an *AdapterUnavailableError.
type PriceAssessment struct {
	ProductURL             string
	Verified               bool
	FromCache              bool
	ListedUnitPrice        int64
	EffectiveUnitPrice     int64
	DeviationPercent       float64
	Warnings               []string
	RequiresCustomerNotice bool
	Risk                   RiskLevel
	Result                 entities.PriceCheckResult
	Err                    error
}

// VerifiedPrice returns the fresher unit price, or nil when unverified.
func (a PriceAssessment) VerifiedPrice() *int64 {
	if !a.Verified {
		return nil
	}
	v := a.EffectiveUnitPrice
	return &v
}

type IPriceVerificationService interface {
	Assess(ctx context.Context, r entities.BuyForMeRequest) PriceAssessment
}

// PriceVerificationService wraps the external verifier with a freshness cache.
// Concurrent lookups of the same url share one upstream call.
type PriceVerificationService struct {
	verifier   interfaces.IPriceVerifier
	cache      interfaces.IPriceCheckCache
	staleAfter time.Duration
	group      singleflight.Group
	now        func() time.Time
	log        *logger.Logger
}

var _ IPriceVerificationService = (*PriceVerificationService)(nil)

// NewPriceVerificationService builds the service. cache may be nil.
func NewPriceVerificationService(verifier interfaces.IPriceVerifier, cache interfaces.IPriceCheckCache, staleAfter time.Duration, log *logger.Logger) *PriceVerificationService {
	if staleAfter <= 0 {
		staleAfter = DefaultPriceCheckStaleAfter
	}
	if log == nil {
		log = logger.Nop()
	}
	return &PriceVerificationService{
		verifier:   verifier,
		cache:      cache,
		staleAfter: staleAfter,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log,
	}
}

func (s *PriceVerificationService) Assess(ctx context.Context, r entities.BuyForMeRequest) PriceAssessment {
	url := strings.TrimSpace(r.ProductInfo.OriginalURL)
	listed := r.ProductInfo.DiscountedPrice

	result, fromCache, err := s.check(ctx, url)
	if err == nil && (!result.Success || result.CurrentPrice == nil) {
		reason := result.Error
		if reason == "" {
			reason = "verification returned no price"
		}
		err = &AdapterUnavailableError{URL: url, Err: fmt.Errorf("%s", reason)}
	}

	a := PriceAssessment{
		ProductURL:         url,
		FromCache:          fromCache,
		ListedUnitPrice:    listed,
		EffectiveUnitPrice: listed,
		Result:             result,
	}
	if err != nil {
		s.log.Warn("price verification degraded",
			"request_id", r.ID,
			"product_url", url,
			"error", err.Error(),
		)
		a.Err = err
		a.Result.Success = false
		if a.Result.LastChecked.IsZero() {
			a.Result.LastChecked = s.now()
		}
		if a.Result.Error == "" {
			a.Result.Error = err.Error()
		}
		a.Warnings = append(a.Warnings, "price could not be verified; using listing price")
		a.Risk = RiskHigh
		return a
	}

	a.Verified = true
	a.EffectiveUnitPrice = *result.CurrentPrice
	if listed > 0 {
		a.DeviationPercent = math.Abs(float64(a.EffectiveUnitPrice-listed)) / float64(listed) * 100
	}
	if a.DeviationPercent > priceDriftWarnPercent {
		a.Warnings = append(a.Warnings, fmt.Sprintf("current price differs from the listing by %.1f%%", a.DeviationPercent))
	}
	if a.DeviationPercent > priceDriftNoticePercent {
		a.RequiresCustomerNotice = true
		a.Warnings = append(a.Warnings, "price drift is too large; customer notice required")
	}
	if result.Availability == entities.AvailabilityOutOfStock {
		a.Warnings = append(a.Warnings, "product is out of stock")
	}
	a.Risk = riskLevel(result, a.EffectiveUnitPrice*int64(max(r.Quantity, 1)))
	return a
}

// check returns a cached result when fresh, otherwise asks the verifier.
func (s *PriceVerificationService) check(ctx context.Context, url string) (entities.PriceCheckResult, bool, error) {
	if url == "" {
		return entities.PriceCheckResult{}, false, &AdapterUnavailableError{URL: url, Err: fmt.Errorf("product has no url")}
	}
	if s.verifier == nil {
		return entities.PriceCheckResult{}, false, &AdapterUnavailableError{URL: url, Err: fmt.Errorf("no price verifier configured")}
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, url)
		if err != nil {
			s.log.Warn("price cache read failed", "product_url", url, "error", err.Error())
		} else if ok && !cached.IsStale(s.now(), s.staleAfter) {
			return cached, true, nil
		}
	}

	v, err, _ := s.group.Do(url, func() (any, error) {
		res, err := s.verifier.Verify(ctx, url)
		if err != nil {
			return entities.PriceCheckResult{}, &AdapterUnavailableError{URL: url, Err: err}
		}
		if res.LastChecked.IsZero() {
			res.LastChecked = s.now()
		}
		if s.cache != nil && res.Success {
			if err := s.cache.Set(ctx, url, res); err != nil {
				s.log.Warn("price cache write failed", "product_url", url, "error", err.Error())
			}
		}
		return res, nil
	})
	if err != nil {
		return entities.PriceCheckResult{}, false, err
	}
	res := v.(entities.PriceCheckResult)
	return res.Clone(), false, nil
}

func riskLevel(res entities.PriceCheckResult, productCost int64) RiskLevel {
	switch {
	case !res.Success, res.Availability == entities.AvailabilityOutOfStock:
		return RiskHigh
	case productCost > highValueProductCost, res.Availability == entities.AvailabilityLimited:
		return RiskMedium
	default:
		return RiskLow
	}
}
