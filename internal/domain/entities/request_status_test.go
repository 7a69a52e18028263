package entities

import "testing"

func TestCanTransition_ForwardOnly(t *testing.T) {
	forward := []RequestStatus{
		StatusPendingReview,
		StatusQuoteSent,
		StatusQuoteApproved,
		StatusPaymentPending,
		StatusPaymentCompleted,
		StatusPurchasing,
		StatusShipping,
		StatusDelivered,
	}

	for i, from := range forward {
		for j, to := range forward {
			want := j == i+1
			if got := CanTransition(from, to); got != want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransition_Cancelled(t *testing.T) {
	for _, s := range AllStatuses {
		want := !s.IsTerminal()
		if got := CanTransition(s, StatusCancelled); got != want {
			t.Fatalf("CanTransition(%s, cancelled) = %v, want %v", s, got, want)
		}
	}
	for _, s := range AllStatuses {
		if CanTransition(StatusCancelled, s) {
			t.Fatalf("cancelled must be terminal, got transition to %s", s)
		}
	}
}

func TestRequestStatus_AtLeast(t *testing.T) {
	if !StatusShipping.AtLeast(StatusPurchasing) {
		t.Fatalf("shipping should be at least purchasing")
	}
	if StatusQuoteSent.AtLeast(StatusPaymentCompleted) {
		t.Fatalf("quote_sent should not reach payment_completed")
	}
	if StatusCancelled.AtLeast(StatusPendingReview) {
		t.Fatalf("cancelled has no rank")
	}
	if RequestStatus("bogus").Valid() {
		t.Fatalf("unknown status must be invalid")
	}
}
