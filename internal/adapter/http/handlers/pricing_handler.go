package handlers

import (
	"net/http"

	request "hiko_buyforme/internal/adapter/http/dto/request"
	response "hiko_buyforme/internal/adapter/http/dto/response"
	"hiko_buyforme/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves the stateless quote calculator used by the admin
// console while a quote is being edited.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Calculate godoc
// @Summary      Calculate a quote breakdown
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        request  body      request.PricingRequest  true  "Pricing input"
// @Success      200      {object}  response.PricingResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /pricing/calculate [post]
func (h *PricingHandler) Calculate(c *gin.Context) {
	var payload request.PricingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortInvalidPayload(c, err)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortInvalidPayload(c, err)
		return
	}

	res, err := usecase.CalculatePricing(in)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricing(in, res))
}
