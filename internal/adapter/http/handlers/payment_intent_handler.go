package handlers

import (
	"errors"
	"net/http"

	request "monhajj/internal/adapter/http/dto/request"
	response "monhajj/internal/adapter/http/dto/response"
	"monhajj/internal/domain/wizard"
	"monhajj/internal/infrastructure/logger"
	"monhajj/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentIntentHandler serves the card form's create-payment-intent call.
// Its error body is {"error": "..."} rather than pkg.HTTPError because
// that is what the form displays.
type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
	logger  *zap.Logger
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase, log *zap.Logger) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc, logger: logger.OrNop(log)}
}

// CreatePaymentIntent godoc
// @Summary      Create a payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        intent  body      request.PaymentIntentRequest  true  "Amount in euros and currency"
// @Success      200     {object}  response.PaymentIntentResponse
// @Failure      400     {object}  response.PaymentIntentErrorResponse
// @Failure      402     {object}  response.PaymentIntentErrorResponse
// @Failure      500     {object}  response.PaymentIntentErrorResponse
// @Router       /payment-intents [post]
func (h *PaymentIntentHandler) CreatePaymentIntent(c *gin.Context) {
	var payload request.PaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.PaymentIntentErrorResponse{Error: "invalid request body"})
		return
	}

	pi, err := h.usecase.Create(c.Request.Context(), payload.Amount, payload.NormalizedCurrency())
	if err != nil {
		status, msg := mapPaymentIntentError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("payment intent failed", zap.Error(err))
		}
		c.JSON(status, response.PaymentIntentErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, response.PaymentIntentResponse{ClientSecret: pi.ClientSecret})
}

func mapPaymentIntentError(err error) (int, string) {
	var pe wizard.PublicError
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidCurrency):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &pe) && pe.PublicMessage() != "":
		return http.StatusPaymentRequired, pe.PublicMessage()
	default:
		return http.StatusInternalServerError, "payment intent could not be created"
	}
}
