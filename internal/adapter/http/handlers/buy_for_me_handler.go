package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	request "hiko_buyforme/internal/adapter/http/dto/request"
	response "hiko_buyforme/internal/adapter/http/dto/response"
	"hiko_buyforme/internal/domain/entities"
	"hiko_buyforme/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BuyForMeHandler exposes the request lifecycle over HTTP. Customer and admin
// actions share the handler; authorisation happens in front of the service.
type BuyForMeHandler struct {
	usecase usecase.IBuyForMeUseCase
}

func NewBuyForMeHandler(uc usecase.IBuyForMeUseCase) *BuyForMeHandler {
	return &BuyForMeHandler{usecase: uc}
}

// CreateRequest godoc
// @Summary      Submit a buy-for-me request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateRequestRequest  true  "Request"
// @Success      201      {object}  response.BuyForMeRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /requests [post]
func (h *BuyForMeHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, err)
		return
	}

	created, err := h.usecase.CreateRequest(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromRequest(created))
}

// GetRequest godoc
// @Summary      Get a request
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.BuyForMeRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /requests/{id} [get]
func (h *BuyForMeHandler) GetRequest(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// ListRequests godoc
// @Summary      List requests by customer, status or hot deal
// @Tags         requests
// @Produce      json
// @Param        user_id     query     string  false  "Customer ID"
// @Param        status      query     string  false  "Status"
// @Param        hotdeal_id  query     string  false  "Hot deal ID"
// @Success      200         {object}  response.BuyForMeRequestListResponse
// @Failure      400         {object}  pkg.HTTPError
// @Router       /requests [get]
func (h *BuyForMeHandler) ListRequests(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	status := strings.TrimSpace(c.Query("status"))
	hotdealID := strings.TrimSpace(c.Query("hotdeal_id"))

	var (
		rs  []entities.BuyForMeRequest
		err error
	)
	switch {
	case userID != "":
		rs, err = h.usecase.ListByUserID(c.Request.Context(), userID)
	case status != "":
		rs, err = h.usecase.ListByStatus(c.Request.Context(), entities.RequestStatus(status))
	case hotdealID != "":
		rs, err = h.usecase.ListByHotdealID(c.Request.Context(), hotdealID)
	default:
		c.JSON(errMissingFilter.HTTPStatus, errMissingFilter.ToHTTPError())
		return
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequests(rs))
}

// Stats godoc
// @Summary      Count requests per status
// @Tags         requests
// @Produce      json
// @Success      200  {object}  response.StatsResponse
// @Router       /requests/stats [get]
func (h *BuyForMeHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.StatsByStatus(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromStats(stats))
}

// DraftQuote godoc
// @Summary      Draft a quote (admin)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Request ID"
// @Param        request  body      request.QuoteRequest  true  "Quote"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /requests/{id}/quote [post]
func (h *BuyForMeHandler) DraftQuote(c *gin.Context) {
	h.withQuote(c, h.usecase.DraftQuote)
}

// DraftTemplateQuote godoc
// @Summary      Draft a quote from the product category template (admin)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                         true   "Request ID"
// @Param        request  body      request.TemplateQuoteRequest  false  "Notes"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /requests/{id}/quote/template [post]
func (h *BuyForMeHandler) DraftTemplateQuote(c *gin.Context) {
	var payload request.TemplateQuoteRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	r, err := h.usecase.DraftQuoteFromTemplate(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// ReviseQuote godoc
// @Summary      Revise a sent quote (admin)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Request ID"
// @Param        request  body      request.QuoteRequest  true  "Quote"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /requests/{id}/quote/revise [post]
func (h *BuyForMeHandler) ReviseQuote(c *gin.Context) {
	h.withQuote(c, h.usecase.ReviseQuote)
}

func (h *BuyForMeHandler) withQuote(
	c *gin.Context,
	apply func(ctx context.Context, id string, in usecase.QuoteInput) (entities.BuyForMeRequest, error),
) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortInvalidPayload(c, err)
		return
	}

	r, err := apply(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// SendQuote godoc
// @Summary      Send the drafted quote to the customer (admin)
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.BuyForMeRequestResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /requests/{id}/quote/send [patch]
func (h *BuyForMeHandler) SendQuote(c *gin.Context) {
	h.withID(c, h.usecase.SendQuote)
}

// ApproveQuote godoc
// @Summary      Approve the quote (customer)
// @Description  Approves the sent quote and moves the request on to payment_pending.
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.BuyForMeRequestResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /requests/{id}/quote/approve [patch]
func (h *BuyForMeHandler) ApproveQuote(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if _, err := h.usecase.ApproveQuote(ctx, id); err != nil {
		abortWithError(c, err)
		return
	}
	r, err := h.usecase.MarkPaymentPending(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// RejectQuote godoc
// @Summary      Reject the quote (customer)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true   "Request ID"
// @Param        request  body      request.RejectQuoteRequest  false  "Reason"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Router       /requests/{id}/quote/reject [patch]
func (h *BuyForMeHandler) RejectQuote(c *gin.Context) {
	var payload request.RejectQuoteRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	r, err := h.usecase.RejectQuote(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// PreviewQuote godoc
// @Summary      Preview the quote against a fresh price check (admin)
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.PriceAssessmentResponse
// @Router       /requests/{id}/quote/preview [get]
func (h *BuyForMeHandler) PreviewQuote(c *gin.Context) {
	r, assessment, err := h.usecase.PreviewRecompute(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssessment(assessment, response.FromRequest(r)))
}

// ConfirmPayment godoc
// @Summary      Confirm the customer's payment (admin)
// @Tags         fulfilment
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Request ID"
// @Param        request  body      request.PaymentRequest  true  "Payment"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Router       /requests/{id}/payment [patch]
func (h *BuyForMeHandler) ConfirmPayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, err)
		return
	}
	r, err := h.usecase.ConfirmPayment(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// RecordOrder godoc
// @Summary      Record the order placed with the seller (admin)
// @Tags         fulfilment
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Request ID"
// @Param        request  body      request.OrderRequest  true  "Order"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Router       /requests/{id}/order [patch]
func (h *BuyForMeHandler) RecordOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, err)
		return
	}
	r, err := h.usecase.RecordOrderInfo(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// RecordTracking godoc
// @Summary      Record the courier tracking number (admin)
// @Tags         fulfilment
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Request ID"
// @Param        request  body      request.TrackingRequest  true  "Tracking"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Router       /requests/{id}/tracking [patch]
func (h *BuyForMeHandler) RecordTracking(c *gin.Context) {
	var payload request.TrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, err)
		return
	}
	r, err := h.usecase.RecordTracking(c.Request.Context(), c.Param("id"), payload.TrackingNumber, payload.TrackingURL)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// ConfirmDelivery godoc
// @Summary      Mark the request delivered
// @Tags         fulfilment
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.BuyForMeRequestResponse
// @Router       /requests/{id}/delivery [patch]
func (h *BuyForMeHandler) ConfirmDelivery(c *gin.Context) {
	h.withID(c, h.usecase.ConfirmDelivery)
}

// Cancel godoc
// @Summary      Cancel a request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true   "Request ID"
// @Param        request  body      request.CancelRequest  false  "Reason"
// @Success      200      {object}  response.BuyForMeRequestResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /requests/{id}/cancel [patch]
func (h *BuyForMeHandler) Cancel(c *gin.Context) {
	var payload request.CancelRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	r, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// RefreshPriceCheck godoc
// @Summary      Re-check the listing price now (admin)
// @Tags         requests
// @Produce      json
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.PriceAssessmentResponse
// @Router       /requests/{id}/price-check [post]
func (h *BuyForMeHandler) RefreshPriceCheck(c *gin.Context) {
	r, assessment, err := h.usecase.RefreshPriceCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAssessment(assessment, response.FromRequest(r)))
}

func (h *BuyForMeHandler) withID(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.BuyForMeRequest, error),
) {
	r, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRequest(r))
}

// bindOptionalJSON binds the body when there is one. Reasons are optional, so
// an empty body is fine.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		abortInvalidPayload(c, err)
		return false
	}
	return true
}
