package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"sort"
	"strings"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/infrastructure/logger"
	"hiko_buyforme/internal/usecase/interfaces"
	"hiko_buyforme/pkg/phone"

	"github.com/google/uuid"
)

const (
	MinQuoteValidDays = 1
	MaxQuoteValidDays = 30

	CancelReasonQuoteRejected = "quote_rejected"
)

// errUnchanged lets a mutation report that nothing needs to be written.
var errUnchanged = errors.New("unchanged")

// IBuyForMeUseCase exposes the buy-for-me lifecycle.
//
// Every command loads the aggregate, validates against the current status,
// writes once and only then notifies. A failed write returns *StorageError and
// nothing is reported as committed.
//
//go:generate mockgen -source=buy_for_me_usecase.go -destination=../adapter/http/handlers/mocks/buy_for_me_usecase_mock.go -package=mocks
type IBuyForMeUseCase interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (entities.BuyForMeRequest, error)
	DraftQuote(ctx context.Context, id string, in QuoteInput) (entities.BuyForMeRequest, error)
	DraftQuoteFromTemplate(ctx context.Context, id string, notes string) (entities.BuyForMeRequest, error)
	SendQuote(ctx context.Context, id string) (entities.BuyForMeRequest, error)
	ReviseQuote(ctx context.Context, id string, in QuoteInput) (entities.BuyForMeRequest, error)
	ApproveQuote(ctx context.Context, id string) (entities.BuyForMeRequest, error)
	MarkPaymentPending(ctx context.Context, id string) (entities.BuyForMeRequest, error)
	RejectQuote(ctx context.Context, id string, reason string) (entities.BuyForMeRequest, error)
	ConfirmPayment(ctx context.Context, id string, in PaymentInput) (entities.BuyForMeRequest, error)
	RecordOrderInfo(ctx context.Context, id string, in OrderInput) (entities.BuyForMeRequest, error)
	RecordTracking(ctx context.Context, id string, trackingNumber, trackingURL string) (entities.BuyForMeRequest, error)
	ConfirmDelivery(ctx context.Context, id string) (entities.BuyForMeRequest, error)
	Cancel(ctx context.Context, id string, reason string) (entities.BuyForMeRequest, error)
	RecomputeEstimate(r entities.BuyForMeRequest, verifiedPrice *int64) (entities.BuyForMeRequest, error)
	PreviewRecompute(ctx context.Context, id string) (entities.BuyForMeRequest, PriceAssessment, error)
	RefreshPriceCheck(ctx context.Context, id string) (entities.BuyForMeRequest, PriceAssessment, error)
	GetByID(ctx context.Context, id string) (entities.BuyForMeRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.BuyForMeRequest, error)
	ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.BuyForMeRequest, error)
	ListByHotdealID(ctx context.Context, hotdealID string) ([]entities.BuyForMeRequest, error)
	StatsByStatus(ctx context.Context) (map[entities.RequestStatus]int, error)
}

type CreateRequestInput struct {
	UserID               string
	HotdealID            string
	ProductInfo          entities.ProductInfo
	Quantity             int
	ProductOptions       string
	ShippingInfo         entities.ShippingInfo
	SpecialRequests      string
	EstimatedServiceFee  int64
	EstimatedTotalAmount int64
}

type QuoteInput struct {
	ProductCost       int64
	ServiceFeePercent float64
	DomesticShipping  int64
	AdditionalFees    []entities.QuotationFee
	Notes             string
	ValidDays         int
	TemplateID        string
}

// EstimatePolicy drives the customer-facing estimate computed at creation.
type EstimatePolicy struct {
	ServiceFeePercent float64
	ShippingFee       int64
}

func DefaultEstimatePolicy() EstimatePolicy {
	return EstimatePolicy{
		ServiceFeePercent: DefaultEstimateServiceFeePercent,
		ShippingFee:       DefaultEstimateShippingFee,
	}
}

type BuyForMeUseCase struct {
	repo   interfaces.IBuyForMeRequestRepository
	prices IPriceVerificationService
	sink   interfaces.INotificationSink
	policy EstimatePolicy
	locks  *keyedMutex
	now    func() time.Time
	log    *logger.Logger
}

var _ IBuyForMeUseCase = (*BuyForMeUseCase)(nil)

// NewBuyForMeUseCase wires the lifecycle. prices and sink may be nil: price
// checks then always degrade and notifications are skipped.
func NewBuyForMeUseCase(
	repo interfaces.IBuyForMeRequestRepository,
	prices IPriceVerificationService,
	sink interfaces.INotificationSink,
	policy EstimatePolicy,
	log *logger.Logger,
) *BuyForMeUseCase {
	if log == nil {
		log = logger.Nop()
	}
	if prices == nil {
		prices = NewPriceVerificationService(nil, nil, 0, log)
	}
	return &BuyForMeUseCase{
		repo:   repo,
		prices: prices,
		sink:   sink,
		policy: policy,
		locks:  newKeyedMutex(),
		now:    func() time.Time { return time.Now().UTC() },
		log:    log,
	}
}

func (u *BuyForMeUseCase) CreateRequest(ctx context.Context, in CreateRequestInput) (entities.BuyForMeRequest, error) {
	in = normalizeCreateInput(in)
	if err := validateCreateInput(in); err != nil {
		return entities.BuyForMeRequest{}, err
	}

	est, err := EstimateForProduct(in.ProductInfo.DiscountedPrice, in.Quantity, u.policy.ServiceFeePercent, u.policy.ShippingFee)
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	fee, total := est.ServiceFee, est.TotalAmount
	if in.EstimatedServiceFee > 0 {
		fee = in.EstimatedServiceFee
	}
	if in.EstimatedTotalAmount > 0 {
		total = in.EstimatedTotalAmount
	}

	now := u.now()
	r := entities.BuyForMeRequest{
		ID:                   uuid.NewString(),
		UserID:               in.UserID,
		HotdealID:            in.HotdealID,
		ProductInfo:          in.ProductInfo,
		Quantity:             in.Quantity,
		ProductOptions:       in.ProductOptions,
		ShippingInfo:         in.ShippingInfo,
		SpecialRequests:      in.SpecialRequests,
		Status:               entities.StatusPendingReview,
		EstimatedServiceFee:  fee,
		EstimatedTotalAmount: total,
		RequestDate:          now,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		u.log.WithContext(ctx).StorageError("create", err)
		return entities.BuyForMeRequest{}, &StorageError{Op: "create", Err: err}
	}
	u.log.WithContext(ctx).WithRequestID(created.ID).Info("request created",
		slog.String("user_id", created.UserID),
		slog.Int64("estimated_total", created.EstimatedTotalAmount),
	)
	return created, nil
}

func normalizeCreateInput(in CreateRequestInput) CreateRequestInput {
	in.UserID = strings.TrimSpace(in.UserID)
	in.HotdealID = strings.TrimSpace(in.HotdealID)
	in.ProductInfo.Title = strings.TrimSpace(in.ProductInfo.Title)
	in.ProductInfo.OriginalURL = strings.TrimSpace(in.ProductInfo.OriginalURL)
	in.ProductOptions = strings.TrimSpace(in.ProductOptions)
	in.SpecialRequests = strings.TrimSpace(in.SpecialRequests)
	in.ShippingInfo.Name = strings.TrimSpace(in.ShippingInfo.Name)
	in.ShippingInfo.Email = strings.TrimSpace(in.ShippingInfo.Email)
	in.ShippingInfo.Address = strings.TrimSpace(in.ShippingInfo.Address)
	in.ShippingInfo.PostalCode = strings.TrimSpace(in.ShippingInfo.PostalCode)
	in.ShippingInfo.DetailAddress = strings.TrimSpace(in.ShippingInfo.DetailAddress)
	in.ShippingInfo.Phone = phone.NormalizeE164(in.ShippingInfo.Phone)
	return in
}

func validateCreateInput(in CreateRequestInput) error {
	switch {
	case in.UserID == "":
		return invalid("user_id", "is required")
	case in.ProductInfo.Title == "":
		return invalid("product_info.title", "is required")
	case in.ProductInfo.OriginalURL == "":
		return invalid("product_info.original_url", "is required")
	case !inAmountRange(in.ProductInfo.OriginalPrice):
		return invalid("product_info.original_price", "must be between 0 and 1,000,000,000,000")
	case !inAmountRange(in.ProductInfo.DiscountedPrice):
		return invalid("product_info.discounted_price", "must be between 0 and 1,000,000,000,000")
	case !inAmountRange(in.ProductInfo.ShippingFee):
		return invalid("product_info.shipping_fee", "must be between 0 and 1,000,000,000,000")
	case in.Quantity <= 0 || in.Quantity > MaxQuantity:
		return invalid("quantity", "must be between 1 and 1000")
	case in.ShippingInfo.Name == "":
		return invalid("shipping_info.name", "is required")
	case !phone.IsValid(in.ShippingInfo.Phone):
		return invalid("shipping_info.phone", "is not a valid phone number")
	case in.ShippingInfo.Address == "":
		return invalid("shipping_info.address", "is required")
	case in.ShippingInfo.PostalCode == "":
		return invalid("shipping_info.postal_code", "is required")
	case !inAmountRange(in.EstimatedServiceFee):
		return invalid("estimated_service_fee", "must be between 0 and 1,000,000,000,000")
	case !inAmountRange(in.EstimatedTotalAmount):
		return invalid("estimated_total_amount", "must be between 0 and 1,000,000,000,000")
	}
	if _, err := mail.ParseAddress(in.ShippingInfo.Email); err != nil {
		return invalid("shipping_info.email", "is not a valid email address")
	}
	return nil
}

func inAmountRange(v int64) bool { return v >= 0 && v <= MaxAmount }

// DraftQuote attaches or replaces the unsent quote. Status is unchanged.
func (u *BuyForMeUseCase) DraftQuote(ctx context.Context, id string, in QuoteInput) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "draft_quote", id, "", func(r *entities.BuyForMeRequest, now time.Time) error {
		if r.Status != entities.StatusPendingReview {
			return invalid("status", "quotes can only be drafted while pending review")
		}
		version := 1
		if r.Quote != nil {
			version = r.Quote.Version
		}
		q, err := buildQuote(in, version, now)
		if err != nil {
			return err
		}
		r.Quote = &q
		return nil
	})
}

func (u *BuyForMeUseCase) SendQuote(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "send_quote", id, entities.EventQuoteSent, func(r *entities.BuyForMeRequest, now time.Time) error {
		if err := transition(r, entities.StatusQuoteSent); err != nil {
			return err
		}
		if r.Quote == nil {
			return invalid("quote", "no draft quote to send")
		}
		r.Quote.SentAt = &now
		r.Status = entities.StatusQuoteSent
		return nil
	})
}

// ReviseQuote replaces a sent quote with a new version and sends it. The
// previous version is kept in QuoteHistory.
func (u *BuyForMeUseCase) ReviseQuote(ctx context.Context, id string, in QuoteInput) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "revise_quote", id, entities.EventQuoteSent, func(r *entities.BuyForMeRequest, now time.Time) error {
		if r.Status != entities.StatusQuoteSent {
			return &InvalidTransitionError{From: r.Status, To: entities.StatusQuoteSent}
		}
		if r.Quote == nil {
			return invalid("quote", "no sent quote to revise")
		}
		q, err := buildQuote(in, r.Quote.Version+1, now)
		if err != nil {
			return err
		}
		q.SentAt = &now
		r.QuoteHistory = append(r.QuoteHistory, *r.Quote)
		r.Quote = &q
		return nil
	})
}

// ApproveQuote moves quote_sent to quote_approved. Moving on to
// payment_pending is a separate call.
func (u *BuyForMeUseCase) ApproveQuote(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "approve_quote", id, entities.EventQuoteApproved, func(r *entities.BuyForMeRequest, now time.Time) error {
		if r.Quote == nil {
			return invalid("quote", "no quote attached")
		}
		if err := transition(r, entities.StatusQuoteApproved); err != nil {
			return err
		}
		if r.Quote.IsExpired(now) {
			return invalid("quote.valid_until", "quote has expired")
		}
		r.Quote.QuoteApprovedDate = &now
		r.Status = entities.StatusQuoteApproved
		return nil
	})
}

func (u *BuyForMeUseCase) MarkPaymentPending(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "mark_payment_pending", id, "", func(r *entities.BuyForMeRequest, _ time.Time) error {
		if err := transition(r, entities.StatusPaymentPending); err != nil {
			return err
		}
		r.Status = entities.StatusPaymentPending
		return nil
	})
}

// RejectQuote records the customer's rejection; the request is cancelled.
func (u *BuyForMeUseCase) RejectQuote(ctx context.Context, id string, reason string) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "reject_quote", id, "", func(r *entities.BuyForMeRequest, _ time.Time) error {
		if r.Status != entities.StatusQuoteSent {
			return &InvalidTransitionError{From: r.Status, To: entities.StatusCancelled}
		}
		r.Status = entities.StatusCancelled
		r.CancelReason = CancelReasonQuoteRejected
		if reason = strings.TrimSpace(reason); reason != "" {
			r.CancelReason += ": " + reason
		}
		return nil
	})
}

func buildQuote(in QuoteInput, version int, now time.Time) (entities.Quote, error) {
	if in.ValidDays < MinQuoteValidDays || in.ValidDays > MaxQuoteValidDays {
		return entities.Quote{}, invalid("valid_days", "must be between 1 and 30")
	}
	fees := make([]entities.QuotationFee, len(in.AdditionalFees))
	for i, f := range in.AdditionalFees {
		f.Name = strings.TrimSpace(f.Name)
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		if f.Category == "" {
			f.Category = entities.FeeCategoryOther
		}
		fees[i] = f
	}

	res, err := CalculatePricing(PricingInput{
		ProductCost:       in.ProductCost,
		ServiceFeePercent: in.ServiceFeePercent,
		DomesticShipping:  in.DomesticShipping,
		AdditionalFees:    fees,
	})
	if err != nil {
		return entities.Quote{}, err
	}

	return entities.Quote{
		Version:             version,
		ProductCost:         in.ProductCost,
		ServiceFee:          res.ServiceFee,
		ServiceFeePercent:   in.ServiceFeePercent,
		AdditionalFees:      fees,
		AdditionalFeesTotal: res.AdditionalFeesTotal,
		DomesticShipping:    in.DomesticShipping,
		TotalAmount:         res.TotalAmount,
		Notes:               strings.TrimSpace(in.Notes),
		TemplateID:          in.TemplateID,
		ValidUntil:          now.Add(time.Duration(in.ValidDays) * 24 * time.Hour),
		CreatedAt:           now,
	}, nil
}

func transition(r *entities.BuyForMeRequest, to entities.RequestStatus) error {
	if !entities.CanTransition(r.Status, to) {
		return &InvalidTransitionError{From: r.Status, To: to}
	}
	return nil
}

// mutate runs fn against a clone of the stored request under the per-id lock,
// persists the result and then notifies event (if any).
func (u *BuyForMeUseCase) mutate(
	ctx context.Context,
	op string,
	id string,
	event entities.NotificationEvent,
	fn func(r *entities.BuyForMeRequest, now time.Time) error,
) (entities.BuyForMeRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BuyForMeRequest{}, invalid("id", "is required")
	}

	saved, changed, err := u.commit(ctx, op, id, fn)
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}
	if changed {
		u.log.WithContext(ctx).WithRequestID(id).Info("request updated",
			slog.String("operation", op),
			slog.String("status", string(saved.Status)),
		)
		if event != "" {
			u.notify(ctx, event, saved)
		}
	}
	return saved, nil
}

func (u *BuyForMeUseCase) commit(
	ctx context.Context,
	op string,
	id string,
	fn func(r *entities.BuyForMeRequest, now time.Time) error,
) (entities.BuyForMeRequest, bool, error) {
	unlock := u.locks.Lock(id)
	defer unlock()

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.BuyForMeRequest{}, false, err
	}

	next := current.Clone()
	now := u.now()
	if err := fn(&next, now); err != nil {
		if errors.Is(err, errUnchanged) {
			return current, false, nil
		}
		return entities.BuyForMeRequest{}, false, err
	}
	next.UpdatedAt = now

	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		u.log.WithContext(ctx).WithRequestID(id).StorageError(op, err)
		return entities.BuyForMeRequest{}, false, &StorageError{Op: op, Err: err}
	}
	if saved.ID == "" {
		return entities.BuyForMeRequest{}, false, &NotFoundError{ID: id}
	}
	return saved, true, nil
}

func (u *BuyForMeUseCase) load(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		u.log.WithContext(ctx).WithRequestID(id).StorageError("get", err)
		return entities.BuyForMeRequest{}, &StorageError{Op: "get", Err: err}
	}
	if r.ID == "" {
		return entities.BuyForMeRequest{}, &NotFoundError{ID: id}
	}
	return r, nil
}

func (u *BuyForMeUseCase) notify(ctx context.Context, event entities.NotificationEvent, r entities.BuyForMeRequest) {
	if u.sink == nil {
		return
	}
	if err := u.sink.Notify(ctx, event, r.Clone()); err != nil {
		u.log.WithContext(ctx).WithRequestID(r.ID).NotificationFailed("sink", string(event), err)
	}
}

func (u *BuyForMeUseCase) GetByID(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BuyForMeRequest{}, invalid("id", "is required")
	}
	return u.load(ctx, id)
}

// ListByUserID returns the customer's requests, newest first.
func (u *BuyForMeUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.BuyForMeRequest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, invalid("user_id", "is required")
	}
	out, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		u.log.WithContext(ctx).StorageError("list_by_user", err)
		return nil, &StorageError{Op: "list_by_user", Err: err}
	}
	sortNewestFirst(out)
	return out, nil
}

// ListByStatus returns the admin queue for status, newest first.
func (u *BuyForMeUseCase) ListByStatus(ctx context.Context, status entities.RequestStatus) ([]entities.BuyForMeRequest, error) {
	if !status.Valid() {
		return nil, invalid("status", "unknown status")
	}
	out, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		u.log.WithContext(ctx).StorageError("list_by_status", err)
		return nil, &StorageError{Op: "list_by_status", Err: err}
	}
	sortNewestFirst(out)
	return out, nil
}

// ListByHotdealID returns every request raised against one hot deal, newest first.
func (u *BuyForMeUseCase) ListByHotdealID(ctx context.Context, hotdealID string) ([]entities.BuyForMeRequest, error) {
	hotdealID = strings.TrimSpace(hotdealID)
	if hotdealID == "" {
		return nil, invalid("hotdeal_id", "is required")
	}
	out, err := u.repo.ListByHotdealID(ctx, hotdealID)
	if err != nil {
		u.log.WithContext(ctx).StorageError("list_by_hotdeal", err)
		return nil, &StorageError{Op: "list_by_hotdeal", Err: err}
	}
	sortNewestFirst(out)
	return out, nil
}

// StatsByStatus counts requests per status. Every status is present.
func (u *BuyForMeUseCase) StatsByStatus(ctx context.Context) (map[entities.RequestStatus]int, error) {
	counts, err := u.repo.CountByStatus(ctx)
	if err != nil {
		u.log.WithContext(ctx).StorageError("count_by_status", err)
		return nil, &StorageError{Op: "count_by_status", Err: err}
	}
	out := make(map[entities.RequestStatus]int, len(entities.AllStatuses))
	for _, s := range entities.AllStatuses {
		out[s] = counts[s]
	}
	return out, nil
}

func sortNewestFirst(rs []entities.BuyForMeRequest) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].CreatedAt.Equal(rs[j].CreatedAt) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].CreatedAt.After(rs[j].CreatedAt)
	})
}
