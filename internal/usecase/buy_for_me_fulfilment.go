package usecase

import (
	"context"
	"strings"
	"time"

	"hiko_buyforme/internal/domain/entities"
)

// PaymentInput is the admin's confirmation that the customer paid.
// No gateway is called; the amount must match the approved quote.
type PaymentInput struct {
	Method    entities.PaymentMethod
	Amount    int64
	Reference string
}

type OrderInput struct {
	ActualOrderID string
	OrderDate     time.Time
}

func (u *BuyForMeUseCase) ConfirmPayment(ctx context.Context, id string, in PaymentInput) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "confirm_payment", id, entities.EventPaymentConfirmed, func(r *entities.BuyForMeRequest, now time.Time) error {
		if err := transition(r, entities.StatusPaymentCompleted); err != nil {
			return err
		}
		if r.Quote == nil {
			return invalid("quote", "no quote attached")
		}
		if !in.Method.Valid() {
			return invalid("method", "unknown payment method")
		}
		if in.Amount != r.Quote.TotalAmount {
			return invalid("amount", "must equal the quoted total")
		}
		r.Payment = &entities.PaymentInfo{
			Method:      in.Method,
			Amount:      in.Amount,
			Reference:   strings.TrimSpace(in.Reference),
			ConfirmedAt: now,
		}
		r.Status = entities.StatusPaymentCompleted
		return nil
	})
}

// RecordOrderInfo stores the order placed with the Korean seller.
func (u *BuyForMeUseCase) RecordOrderInfo(ctx context.Context, id string, in OrderInput) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "record_order", id, "", func(r *entities.BuyForMeRequest, now time.Time) error {
		if err := transition(r, entities.StatusPurchasing); err != nil {
			return err
		}
		orderID := strings.TrimSpace(in.ActualOrderID)
		if orderID == "" {
			return invalid("actual_order_id", "is required")
		}
		orderDate := in.OrderDate.UTC()
		if in.OrderDate.IsZero() {
			orderDate = now
		}
		r.OrderInfo = &entities.OrderInfo{ActualOrderID: orderID, OrderDate: orderDate}
		r.Status = entities.StatusPurchasing
		return nil
	})
}

// RecordTracking merges carrier tracking into the order and marks it shipped.
func (u *BuyForMeUseCase) RecordTracking(ctx context.Context, id string, trackingNumber, trackingURL string) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "record_tracking", id, entities.EventOrderShipped, func(r *entities.BuyForMeRequest, _ time.Time) error {
		if err := transition(r, entities.StatusShipping); err != nil {
			return err
		}
		if r.OrderInfo == nil {
			return invalid("order_info", "order must be recorded before tracking")
		}
		trackingNumber = strings.TrimSpace(trackingNumber)
		if trackingNumber == "" {
			return invalid("tracking_number", "is required")
		}
		r.OrderInfo.TrackingNumber = trackingNumber
		if trackingURL = strings.TrimSpace(trackingURL); trackingURL != "" {
			r.OrderInfo.TrackingURL = trackingURL
		}
		r.Status = entities.StatusShipping
		return nil
	})
}

func (u *BuyForMeUseCase) ConfirmDelivery(ctx context.Context, id string) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "confirm_delivery", id, entities.EventOrderDelivered, func(r *entities.BuyForMeRequest, _ time.Time) error {
		if err := transition(r, entities.StatusDelivered); err != nil {
			return err
		}
		r.Status = entities.StatusDelivered
		return nil
	})
}

// Cancel soft-terminates the request. Cancelling a cancelled request returns
// it unchanged; a delivered request cannot be cancelled.
func (u *BuyForMeUseCase) Cancel(ctx context.Context, id string, reason string) (entities.BuyForMeRequest, error) {
	return u.mutate(ctx, "cancel", id, "", func(r *entities.BuyForMeRequest, _ time.Time) error {
		if r.Status == entities.StatusCancelled {
			return errUnchanged
		}
		if err := transition(r, entities.StatusCancelled); err != nil {
			return err
		}
		r.Status = entities.StatusCancelled
		r.CancelReason = strings.TrimSpace(reason)
		return nil
	})
}

// RecomputeEstimate substitutes verifiedPrice for the listing price and
// recomputes the figures that depend on it. It does not persist anything.
//
// Without a quote the customer estimates are recomputed. A draft quote is
// recomputed in place; a sent quote is moved to history and replaced by an
// unsent Version+1. Quotes are locked once approved.
func (u *BuyForMeUseCase) RecomputeEstimate(r entities.BuyForMeRequest, verifiedPrice *int64) (entities.BuyForMeRequest, error) {
	out := r.Clone()
	if out.Status.IsTerminal() || out.Status.AtLeast(entities.StatusQuoteApproved) {
		return entities.BuyForMeRequest{}, invalid("status", "figures are locked once the quote is approved")
	}
	if verifiedPrice != nil {
		if !inAmountRange(*verifiedPrice) {
			return entities.BuyForMeRequest{}, invalid("verified_price", "must be between 0 and 1,000,000,000,000")
		}
		out.ProductInfo.DiscountedPrice = *verifiedPrice
	}

	if out.Quote == nil {
		est, err := EstimateForProduct(out.ProductInfo.DiscountedPrice, out.Quantity, u.policy.ServiceFeePercent, u.policy.ShippingFee)
		if err != nil {
			return entities.BuyForMeRequest{}, err
		}
		out.EstimatedServiceFee = est.ServiceFee
		out.EstimatedTotalAmount = est.TotalAmount
		return out, nil
	}

	prev := *out.Quote
	res, err := CalculatePricing(PricingInput{
		ProductCost:       out.ProductSubtotal(),
		ServiceFeePercent: prev.ServiceFeePercent,
		DomesticShipping:  prev.DomesticShipping,
		AdditionalFees:    prev.AdditionalFees,
	})
	if err != nil {
		return entities.BuyForMeRequest{}, err
	}

	next := prev.Clone()
	next.ProductCost = out.ProductSubtotal()
	next.ServiceFee = res.ServiceFee
	next.AdditionalFeesTotal = res.AdditionalFeesTotal
	next.TotalAmount = res.TotalAmount
	if prev.IsSent() {
		out.QuoteHistory = append(out.QuoteHistory, prev)
		next.Version = prev.Version + 1
		next.SentAt = nil
		next.QuoteApprovedDate = nil
		next.CreatedAt = u.now()
	}
	out.Quote = &next
	return out, nil
}

// PreviewRecompute shows what the request would look like at the current
// verified price without saving it.
func (u *BuyForMeUseCase) PreviewRecompute(ctx context.Context, id string) (entities.BuyForMeRequest, PriceAssessment, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.BuyForMeRequest{}, PriceAssessment{}, err
	}
	assessment := u.prices.Assess(ctx, current)
	preview, err := u.RecomputeEstimate(current, assessment.VerifiedPrice())
	if err != nil {
		return entities.BuyForMeRequest{}, PriceAssessment{}, err
	}
	return preview, assessment, nil
}

// RefreshPriceCheck stores the latest verification result on the request.
// An unavailable verifier degrades the assessment but never fails the call.
func (u *BuyForMeUseCase) RefreshPriceCheck(ctx context.Context, id string) (entities.BuyForMeRequest, PriceAssessment, error) {
	var assessment PriceAssessment
	saved, err := u.mutate(ctx, "refresh_price_check", id, "", func(r *entities.BuyForMeRequest, _ time.Time) error {
		assessment = u.prices.Assess(ctx, *r)
		result := assessment.Result.Clone()
		r.PriceCheck = &result
		return nil
	})
	if err != nil {
		return entities.BuyForMeRequest{}, PriceAssessment{}, err
	}
	return saved, assessment, nil
}
