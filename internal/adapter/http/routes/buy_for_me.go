package routes

import (
	"hiko_buyforme/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
	PathPricing  = "/pricing"
)

func addBuyForMeRoutes(rg *gin.RouterGroup, h *handlers.BuyForMeHandler) {
	requests := rg.Group(PathRequests)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListRequests)
		requests.GET("/stats", h.Stats)
		requests.GET("/:id", h.GetRequest)

		// Quote
		requests.POST("/:id/quote", h.DraftQuote)
		requests.POST("/:id/quote/template", h.DraftTemplateQuote)
		requests.PATCH("/:id/quote/send", h.SendQuote)
		requests.POST("/:id/quote/revise", h.ReviseQuote)
		requests.PATCH("/:id/quote/approve", h.ApproveQuote)
		requests.PATCH("/:id/quote/reject", h.RejectQuote)
		requests.GET("/:id/quote/preview", h.PreviewQuote)

		// Fulfilment
		requests.PATCH("/:id/payment", h.ConfirmPayment)
		requests.PATCH("/:id/order", h.RecordOrder)
		requests.PATCH("/:id/tracking", h.RecordTracking)
		requests.PATCH("/:id/delivery", h.ConfirmDelivery)
		requests.PATCH("/:id/cancel", h.Cancel)

		requests.POST("/:id/price-check", h.RefreshPriceCheck)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.POST("/calculate", h.Calculate)
	}
}
