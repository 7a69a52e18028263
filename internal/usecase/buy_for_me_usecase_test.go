package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hiko_buyforme/internal/adapter/persistence/repository"
	"hiko_buyforme/internal/domain/entities"
	mock_interfaces "hiko_buyforme/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func validCreateInput() CreateRequestInput {
	return CreateRequestInput{
		UserID: " user-1 ",
		ProductInfo: entities.ProductInfo{
			Title:           "Air fryer",
			OriginalPrice:   60000,
			DiscountedPrice: 50000,
			OriginalURL:     testProductURL,
			SiteName:        "11st",
		},
		Quantity: 2,
		ShippingInfo: entities.ShippingInfo{
			Name:       "Kim Minji",
			Phone:      "010-1234-5678",
			Email:      "minji@example.com",
			Address:    "Seoul Gangnam-gu Teheran-ro 1",
			PostalCode: "06236",
		},
	}
}

func validQuoteInput() QuoteInput {
	return QuoteInput{
		ProductCost:       100000,
		ServiceFeePercent: 10,
		DomesticShipping:  3000,
		AdditionalFees: []entities.QuotationFee{
			{Name: "insurance", Kind: entities.FixedFee{Amount: 2000}, Category: entities.FeeCategoryInsurance},
		},
		ValidDays: 7,
	}
}

func newTestUseCase(repo *mock_interfaces.MockIBuyForMeRequestRepository, sink *mock_interfaces.MockINotificationSink) *BuyForMeUseCase {
	var uc *BuyForMeUseCase
	if sink == nil {
		uc = NewBuyForMeUseCase(repo, nil, nil, DefaultEstimatePolicy(), nil)
	} else {
		uc = NewBuyForMeUseCase(repo, nil, sink, DefaultEstimatePolicy(), nil)
	}
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func storedRequest(status entities.RequestStatus) entities.BuyForMeRequest {
	return entities.BuyForMeRequest{
		ID:          "req-1",
		UserID:      "user-1",
		Status:      status,
		Quantity:    1,
		ProductInfo: entities.ProductInfo{Title: "Air fryer", DiscountedPrice: 50000, OriginalURL: testProductURL},
		CreatedAt:   fixedNow.Add(-time.Hour),
		UpdatedAt:   fixedNow.Add(-time.Hour),
	}
}

func sentQuote(total int64) *entities.Quote {
	sent := fixedNow.Add(-time.Hour)
	return &entities.Quote{
		Version:     1,
		ProductCost: 50000,
		TotalAmount: total,
		ValidUntil:  fixedNow.Add(24 * time.Hour),
		SentAt:      &sent,
	}
}

func echoUpdate(_ context.Context, r entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
	return r, nil
}

func TestBuyForMeUseCase_CreateRequest(t *testing.T) {
	t.Run("computes estimate and persists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BuyForMeRequest{})).DoAndReturn(
			func(_ context.Context, r entities.BuyForMeRequest) (entities.BuyForMeRequest, error) {
				if r.ID == "" || r.UserID != "user-1" || r.Status != entities.StatusPendingReview {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.ShippingInfo.Phone != "+821012345678" {
					t.Fatalf("expected normalized phone, got %s", r.ShippingInfo.Phone)
				}
				if !r.CreatedAt.Equal(fixedNow) || !r.RequestDate.Equal(fixedNow) {
					t.Fatalf("expected timestamps at now")
				}
				return r, nil
			},
		)

		res, err := uc.CreateRequest(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 100000 subtotal, 10% service fee, 3000 shipping
		if res.EstimatedServiceFee != 10000 || res.EstimatedTotalAmount != 113000 {
			t.Fatalf("unexpected estimate: fee=%d total=%d", res.EstimatedServiceFee, res.EstimatedTotalAmount)
		}
	})

	t.Run("client estimate wins when given", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BuyForMeRequest) (entities.BuyForMeRequest, error) { return r, nil },
		)

		in := validCreateInput()
		in.EstimatedServiceFee = 7000
		in.EstimatedTotalAmount = 110000
		res, err := uc.CreateRequest(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.EstimatedServiceFee != 7000 || res.EstimatedTotalAmount != 110000 {
			t.Fatalf("expected client estimate, got %+v", res)
		}
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			mod   func(*CreateRequestInput)
			field string
		}{
			{"missing user", func(in *CreateRequestInput) { in.UserID = " " }, "user_id"},
			{"missing title", func(in *CreateRequestInput) { in.ProductInfo.Title = "" }, "product_info.title"},
			{"missing url", func(in *CreateRequestInput) { in.ProductInfo.OriginalURL = "" }, "product_info.original_url"},
			{"negative price", func(in *CreateRequestInput) { in.ProductInfo.DiscountedPrice = -1 }, "product_info.discounted_price"},
			{"zero quantity", func(in *CreateRequestInput) { in.Quantity = 0 }, "quantity"},
			{"bad phone", func(in *CreateRequestInput) { in.ShippingInfo.Phone = "12" }, "shipping_info.phone"},
			{"missing postal code", func(in *CreateRequestInput) { in.ShippingInfo.PostalCode = "" }, "shipping_info.postal_code"},
			{"bad email", func(in *CreateRequestInput) { in.ShippingInfo.Email = "nope" }, "shipping_info.email"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc := newTestUseCase(nil, nil)
				in := validCreateInput()
				tc.mod(&in)
				_, err := uc.CreateRequest(context.Background(), in)
				var ve *ValidationError
				if !errors.As(err, &ve) || ve.Field != tc.field {
					t.Fatalf("expected validation error on %s, got %v", tc.field, err)
				}
			})
		}
	})

	t.Run("repo error is storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BuyForMeRequest{}, errors.New("db"))

		_, err := uc.CreateRequest(context.Background(), validCreateInput())
		var se *StorageError
		if !errors.As(err, &se) || se.Op != "create" || !errors.Is(err, ErrStorage) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}

func TestBuyForMeUseCase_QuoteFlow(t *testing.T) {
	t.Run("draft then send notifies once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		sink := mock_interfaces.NewMockINotificationSink(ctrl)
		uc := newTestUseCase(repo, sink)

		pending := storedRequest(entities.StatusPendingReview)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pending, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		drafted, err := uc.DraftQuote(context.Background(), "req-1", validQuoteInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if drafted.Status != entities.StatusPendingReview || drafted.Quote == nil || drafted.Quote.Version != 1 {
			t.Fatalf("unexpected draft: %+v", drafted)
		}
		// 100000 + 10000 + 2000 + 3000
		if drafted.Quote.TotalAmount != 115000 || drafted.Quote.IsSent() {
			t.Fatalf("unexpected quote: %+v", drafted.Quote)
		}
		if drafted.Quote.AdditionalFees[0].ID == "" {
			t.Fatalf("expected fee id to be assigned")
		}

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(drafted, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
		sink.EXPECT().Notify(gomock.Any(), entities.EventQuoteSent, gomock.Any()).Return(nil)

		sent, err := uc.SendQuote(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent.Status != entities.StatusQuoteSent || sent.Quote.SentAt == nil || !sent.Quote.SentAt.Equal(fixedNow) {
			t.Fatalf("unexpected sent request: %+v", sent)
		}
	})

	t.Run("send without draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedRequest(entities.StatusPendingReview), nil)

		_, err := uc.SendQuote(context.Background(), "req-1")
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "quote" {
			t.Fatalf("expected quote validation error, got %v", err)
		}
	})

	t.Run("draft outside pending review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		r := storedRequest(entities.StatusQuoteSent)
		r.Quote = sentQuote(100000)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.DraftQuote(context.Background(), "req-1", validQuoteInput())
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("invalid valid_days", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedRequest(entities.StatusPendingReview), nil)

		in := validQuoteInput()
		in.ValidDays = 31
		_, err := uc.DraftQuote(context.Background(), "req-1", in)
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "valid_days" {
			t.Fatalf("expected valid_days error, got %v", err)
		}
	})

	t.Run("revise keeps history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		sink := mock_interfaces.NewMockINotificationSink(ctrl)
		uc := newTestUseCase(repo, sink)

		r := storedRequest(entities.StatusQuoteSent)
		r.Quote = sentQuote(100000)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
		sink.EXPECT().Notify(gomock.Any(), entities.EventQuoteSent, gomock.Any()).Return(nil)

		res, err := uc.ReviseQuote(context.Background(), "req-1", validQuoteInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Quote.Version != 2 || len(res.QuoteHistory) != 1 || res.QuoteHistory[0].Version != 1 {
			t.Fatalf("unexpected versions: quote=%d history=%v", res.Quote.Version, res.QuoteHistory)
		}
		if !res.Quote.IsSent() || res.Status != entities.StatusQuoteSent {
			t.Fatalf("expected revised quote to be sent")
		}
	})

	t.Run("revise before send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedRequest(entities.StatusPendingReview), nil)

		_, err := uc.ReviseQuote(context.Background(), "req-1", validQuoteInput())
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})
}

func TestBuyForMeUseCase_ApproveQuote(t *testing.T) {
	t.Run("without quote does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		sink := mock_interfaces.NewMockINotificationSink(ctrl)
		uc := newTestUseCase(repo, sink)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedRequest(entities.StatusQuoteSent), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.ApproveQuote(context.Background(), "req-1")
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "quote" {
			t.Fatalf("expected quote validation error, got %v", err)
		}
	})

	t.Run("expired quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		r := storedRequest(entities.StatusQuoteSent)
		r.Quote = sentQuote(100000)
		r.Quote.ValidUntil = fixedNow.Add(-time.Minute)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.ApproveQuote(context.Background(), "req-1")
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "quote.valid_until" {
			t.Fatalf("expected expiry error, got %v", err)
		}
	})

	t.Run("approves and stamps date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		sink := mock_interfaces.NewMockINotificationSink(ctrl)
		uc := newTestUseCase(repo, sink)

		r := storedRequest(entities.StatusQuoteSent)
		r.Quote = sentQuote(100000)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
		sink.EXPECT().Notify(gomock.Any(), entities.EventQuoteApproved, gomock.Any()).Return(nil)

		res, err := uc.ApproveQuote(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusQuoteApproved || res.Quote.QuoteApprovedDate == nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBuyForMeUseCase_RejectQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
	uc := newTestUseCase(repo, nil)

	r := storedRequest(entities.StatusQuoteSent)
	r.Quote = sentQuote(100000)
	repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	res, err := uc.RejectQuote(context.Background(), "req-1", " too expensive ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.StatusCancelled || res.CancelReason != "quote_rejected: too expensive" {
		t.Fatalf("unexpected result: %s %q", res.Status, res.CancelReason)
	}
}

func TestBuyForMeUseCase_Mutations(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.SendQuote(context.Background(), "  ")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.BuyForMeRequest{}, nil)

		_, err := uc.ConfirmDelivery(context.Background(), "missing")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("update failure skips notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		sink := mock_interfaces.NewMockINotificationSink(ctrl)
		uc := newTestUseCase(repo, sink)

		r := storedRequest(entities.StatusPendingReview)
		r.Quote = &entities.Quote{Version: 1, TotalAmount: 1000, ValidUntil: fixedNow.Add(time.Hour)}
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.BuyForMeRequest{}, errors.New("throttled"))
		sink.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.SendQuote(context.Background(), "req-1")
		var se *StorageError
		if !errors.As(err, &se) || se.Op != "send_quote" {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("update reports missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedRequest(entities.StatusShipping), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.BuyForMeRequest{}, nil)

		_, err := uc.ConfirmDelivery(context.Background(), "req-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("sink failure is not returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		sink := mock_interfaces.NewMockINotificationSink(ctrl)
		uc := newTestUseCase(repo, sink)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(storedRequest(entities.StatusShipping), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
		sink.EXPECT().Notify(gomock.Any(), entities.EventOrderDelivered, gomock.Any()).Return(errors.New("broker down"))

		res, err := uc.ConfirmDelivery(context.Background(), "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StatusDelivered || !res.UpdatedAt.Equal(fixedNow) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestBuyForMeUseCase_Queries(t *testing.T) {
	t.Run("list by user newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.BuyForMeRequest{
			{ID: "b", CreatedAt: fixedNow.Add(-2 * time.Hour)},
			{ID: "c", CreatedAt: fixedNow},
			{ID: "a", CreatedAt: fixedNow.Add(-2 * time.Hour)},
		}, nil)

		res, err := uc.ListByUserID(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 || res[0].ID != "c" || res[1].ID != "a" || res[2].ID != "b" {
			t.Fatalf("unexpected order: %v", res)
		}
	})

	t.Run("list by unknown status", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.ListByStatus(context.Background(), entities.RequestStatus("lost"))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("list by status storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.StatusShipping).Return(nil, errors.New("db"))

		_, err := uc.ListByStatus(context.Background(), entities.StatusShipping)
		if !errors.Is(err, ErrStorage) {
			t.Fatalf("expected storage error, got %v", err)
		}
	})

	t.Run("stats are zero filled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBuyForMeRequestRepository(ctrl)
		uc := newTestUseCase(repo, nil)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(map[entities.RequestStatus]int{
			entities.StatusShipping: 2,
		}, nil)

		res, err := uc.StatsByStatus(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != len(entities.AllStatuses) || res[entities.StatusShipping] != 2 || res[entities.StatusPendingReview] != 0 {
			t.Fatalf("unexpected stats: %v", res)
		}
	})
}

// Walks one request through the whole lifecycle against the in-memory store.
func TestBuyForMeUseCase_FullLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRequestMemoryRepository()
	uc := NewBuyForMeUseCase(repo, nil, nil, DefaultEstimatePolicy(), nil)
	uc.now = func() time.Time { return fixedNow }

	created, err := uc.CreateRequest(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	id := created.ID

	steps := []struct {
		name string
		run  func() (entities.BuyForMeRequest, error)
	}{
		{"draft", func() (entities.BuyForMeRequest, error) { return uc.DraftQuote(ctx, id, validQuoteInput()) }},
		{"send", func() (entities.BuyForMeRequest, error) { return uc.SendQuote(ctx, id) }},
		{"approve", func() (entities.BuyForMeRequest, error) { return uc.ApproveQuote(ctx, id) }},
		{"payment pending", func() (entities.BuyForMeRequest, error) { return uc.MarkPaymentPending(ctx, id) }},
		{"payment", func() (entities.BuyForMeRequest, error) {
			return uc.ConfirmPayment(ctx, id, PaymentInput{Method: entities.PaymentMethodBankTransfer, Amount: 115000})
		}},
		{"order", func() (entities.BuyForMeRequest, error) {
			return uc.RecordOrderInfo(ctx, id, OrderInput{ActualOrderID: "ORD-1"})
		}},
		{"tracking", func() (entities.BuyForMeRequest, error) {
			return uc.RecordTracking(ctx, id, "CJ123", "https://track.example/CJ123")
		}},
		{"delivery", func() (entities.BuyForMeRequest, error) { return uc.ConfirmDelivery(ctx, id) }},
	}

	prev := created.Status
	for _, s := range steps {
		res, err := s.run()
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if res.Status.Rank() < prev.Rank() {
			t.Fatalf("%s: status went backwards from %s to %s", s.name, prev, res.Status)
		}
		prev = res.Status
	}
	if prev != entities.StatusDelivered {
		t.Fatalf("expected delivered, got %s", prev)
	}

	if _, err := uc.Cancel(ctx, id, "changed mind"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected delivered request to refuse cancel, got %v", err)
	}

	stored, err := uc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.OrderInfo == nil || stored.OrderInfo.TrackingNumber != "CJ123" || stored.Payment == nil {
		t.Fatalf("unexpected stored request: %+v", stored)
	}
}

// Tracking cannot be recorded before the order moves past quote_sent.
func TestBuyForMeUseCase_TrackingBeforePurchase(t *testing.T) {
	ctx := context.Background()
	uc := NewBuyForMeUseCase(repository.NewRequestMemoryRepository(), nil, nil, DefaultEstimatePolicy(), nil)

	created, err := uc.CreateRequest(ctx, validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := uc.DraftQuote(ctx, created.ID, validQuoteInput()); err != nil {
		t.Fatalf("draft: %v", err)
	}
	if _, err := uc.SendQuote(ctx, created.ID); err != nil {
		t.Fatalf("send: %v", err)
	}

	_, err = uc.RecordTracking(ctx, created.ID, "CJ123", "")
	var te *InvalidTransitionError
	if !errors.As(err, &te) || te.From != entities.StatusQuoteSent || te.To != entities.StatusShipping {
		t.Fatalf("expected quote_sent -> shipping transition error, got %v", err)
	}

	stored, _ := uc.GetByID(ctx, created.ID)
	if stored.Status != entities.StatusQuoteSent {
		t.Fatalf("request was modified: %s", stored.Status)
	}
}

// Sending and cancelling the same request from many goroutines must leave it
// cancelled with at most one quote actually sent.
func TestBuyForMeUseCase_ConcurrentSendAndCancel(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	sink := mock_interfaces.NewMockINotificationSink(ctrl)

	var notified atomic.Int32
	sink.EXPECT().Notify(gomock.Any(), entities.EventQuoteSent, gomock.Any()).
		DoAndReturn(func(context.Context, entities.NotificationEvent, entities.BuyForMeRequest) error {
			notified.Add(1)
			return nil
		}).AnyTimes()

	uc := NewBuyForMeUseCase(repository.NewRequestMemoryRepository(), nil, sink, DefaultEstimatePolicy(), nil)
	uc.now = func() time.Time { return fixedNow }

	const rounds, senders = 25, 8
	var totalSent int32
	for round := 0; round < rounds; round++ {
		created, err := uc.CreateRequest(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := uc.DraftQuote(ctx, created.ID, validQuoteInput()); err != nil {
			t.Fatalf("draft: %v", err)
		}

		var (
			wg        sync.WaitGroup
			sent      atomic.Int32
			cancelErr error
			sendErrs  = make([]error, senders)
			start     = make(chan struct{})
		)
		for i := 0; i < senders; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				if _, err := uc.SendQuote(ctx, created.ID); err != nil {
					sendErrs[i] = err
					return
				}
				sent.Add(1)
			}(i)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, cancelErr = uc.Cancel(ctx, created.ID, "customer changed mind")
		}()
		close(start)
		wg.Wait()

		if cancelErr != nil {
			t.Fatalf("round %d: cancel failed: %v", round, cancelErr)
		}
		if n := sent.Load(); n > 1 {
			t.Fatalf("round %d: quote sent %d times", round, n)
		}
		for _, err := range sendErrs {
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("round %d: unexpected send error: %v", round, err)
			}
		}

		stored, err := uc.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if stored.Status != entities.StatusCancelled {
			t.Fatalf("round %d: expected cancelled, got %s", round, stored.Status)
		}
		if wasSent := stored.Quote != nil && stored.Quote.SentAt != nil; wasSent != (sent.Load() == 1) {
			t.Fatalf("round %d: stored quote disagrees with %d successful sends", round, sent.Load())
		}
		totalSent += sent.Load()
	}

	if notified.Load() != totalSent {
		t.Fatalf("expected %d quote_sent notifications, got %d", totalSent, notified.Load())
	}
}
