package request

import (
	"strings"
	"time"

	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/usecase"
)

type ProductInfoRequest struct {
	Title           string  `json:"title" binding:"required"`
	OriginalPrice   int64   `json:"original_price" binding:"min=0,max=1000000000000"`
	DiscountedPrice int64   `json:"discounted_price" binding:"min=0,max=1000000000000"`
	DiscountRate    float64 `json:"discount_rate" binding:"min=0,max=100"`
	ShippingFee     int64   `json:"shipping_fee" binding:"min=0,max=1000000000000"`
	ImageURL        string  `json:"image_url" binding:"omitempty,url"`
	OriginalURL     string  `json:"original_url" binding:"required,url"`
	SiteName        string  `json:"site_name"`
}

type ShippingInfoRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required,kr_phone"`
	Email         string `json:"email" binding:"required,email"`
	Address       string `json:"address" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
	DetailAddress string `json:"detail_address"`
}

// CreateRequestRequest is the customer's buy-for-me submission.
type CreateRequestRequest struct {
	UserID               string              `json:"user_id" binding:"required"`
	HotdealID            string              `json:"hotdeal_id"`
	ProductInfo          ProductInfoRequest  `json:"product_info" binding:"required"`
	Quantity             int                 `json:"quantity" binding:"required,min=1,max=1000"`
	ProductOptions       string              `json:"product_options"`
	ShippingInfo         ShippingInfoRequest `json:"shipping_info" binding:"required"`
	SpecialRequests      string              `json:"special_requests"`
	EstimatedServiceFee  int64               `json:"estimated_service_fee" binding:"min=0,max=1000000000000"`
	EstimatedTotalAmount int64               `json:"estimated_total_amount" binding:"min=0,max=1000000000000"`
}

func (r CreateRequestRequest) ToInput() usecase.CreateRequestInput {
	return usecase.CreateRequestInput{
		UserID:    r.UserID,
		HotdealID: r.HotdealID,
		ProductInfo: entities.ProductInfo{
			Title:           r.ProductInfo.Title,
			OriginalPrice:   r.ProductInfo.OriginalPrice,
			DiscountedPrice: r.ProductInfo.DiscountedPrice,
			DiscountRate:    r.ProductInfo.DiscountRate,
			ShippingFee:     r.ProductInfo.ShippingFee,
			ImageURL:        strings.TrimSpace(r.ProductInfo.ImageURL),
			OriginalURL:     r.ProductInfo.OriginalURL,
			SiteName:        strings.TrimSpace(r.ProductInfo.SiteName),
		},
		Quantity:       r.Quantity,
		ProductOptions: r.ProductOptions,
		ShippingInfo: entities.ShippingInfo{
			Name:          r.ShippingInfo.Name,
			Phone:         r.ShippingInfo.Phone,
			Email:         r.ShippingInfo.Email,
			Address:       r.ShippingInfo.Address,
			PostalCode:    r.ShippingInfo.PostalCode,
			DetailAddress: r.ShippingInfo.DetailAddress,
		},
		SpecialRequests:      r.SpecialRequests,
		EstimatedServiceFee:  r.EstimatedServiceFee,
		EstimatedTotalAmount: r.EstimatedTotalAmount,
	}
}

type RejectQuoteRequest struct {
	Reason string `json:"reason"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type PaymentRequest struct {
	Method    string `json:"method" binding:"required,oneof=bank_transfer card paypal other"`
	Amount    int64  `json:"amount" binding:"required,min=1"`
	Reference string `json:"reference"`
}

func (r PaymentRequest) ToInput() usecase.PaymentInput {
	return usecase.PaymentInput{
		Method:    entities.PaymentMethod(r.Method),
		Amount:    r.Amount,
		Reference: r.Reference,
	}
}

type OrderRequest struct {
	ActualOrderID string     `json:"actual_order_id" binding:"required"`
	OrderDate     *time.Time `json:"order_date"`
}

func (r OrderRequest) ToInput() usecase.OrderInput {
	in := usecase.OrderInput{ActualOrderID: r.ActualOrderID}
	if r.OrderDate != nil {
		in.OrderDate = *r.OrderDate
	}
	return in
}

type TrackingRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	TrackingURL    string `json:"tracking_url" binding:"omitempty,url"`
}
