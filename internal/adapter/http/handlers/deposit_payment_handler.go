package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "monhajj/internal/adapter/http/dto/response"
	"monhajj/internal/infrastructure/logger"
	"monhajj/internal/usecase"
	"monhajj/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DepositPaymentHandler captures booking deposits with Mercado Pago.
type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
	logger  *zap.Logger
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, log *zap.Logger) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc, logger: logger.OrNop(log)}
}

// CreateDepositPayment godoc
// @Summary      Pay the deposit of a booking
// @Description  Accepts a Mercado Pago payment payload, either bare or wrapped in {"mp_payload": ...}. The amount is always the booking deposit.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        booking_id  path      string                                true  "Booking ID"
// @Param        payment     body      request.DepositPaymentCreateRequest  true  "Mercado Pago payload"
// @Success      200         {object}  response.DepositPaymentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Failure      409         {object}  pkg.HTTPError
// @Router       /payments/{booking_id} [post]
func (h *DepositPaymentHandler) CreateDepositPayment(c *gin.Context) {
	bookingID := c.Param("booking_id")
	log := h.logger.With(zap.String("booking_id", bookingID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		// The use case decides whether an unreadable payload is fatal.
		log.Warn("unreadable payment payload", zap.Error(err))
		mpPayload = nil
	}

	created, err := h.usecase.CreateForBooking(c.Request.Context(), bookingID, mpPayload)
	if err != nil {
		log.Warn("deposit payment failed", zap.Error(err))
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("deposit payment created", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromDepositPayment(created))
}

// GetDepositPayment godoc
// @Summary      Latest deposit payment of a booking
// @Tags         payments
// @Produce      json
// @Param        booking_id  path      string  true  "Booking ID"
// @Success      200         {object}  response.DepositPaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{booking_id} [get]
func (h *DepositPaymentHandler) GetDepositPayment(c *gin.Context) {
	latest, err := h.usecase.LatestByBookingID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDepositPayment(latest))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotAwaitingPayment):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_AWAITING_PAYMENT", "Booking is not awaiting its deposit", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentConflict):
		return pkg.NewDomainErrorSimple("PAYMENT_ID_CONFLICT", "Payment already recorded for another booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
