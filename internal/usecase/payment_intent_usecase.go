package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"monhajj/internal/domain/entities"
	"monhajj/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidPaymentAmount = errors.New("amount must be greater than zero")
	ErrInvalidCurrency      = errors.New("currency must be a three-letter ISO code")
)

var currencyPattern = regexp.MustCompile(`^[a-z]{3}$`)

// IPaymentIntentUseCase opens a standalone payment intent for the hosted card
// form. Amounts are in major units (euros) and converted to cents here.
type IPaymentIntentUseCase interface {
	Create(ctx context.Context, amount float64, currency string) (entities.PaymentIntent, error)
}

type PaymentIntentUseCase struct {
	gateway         interfaces.IPaymentIntentGateway
	defaultCurrency string
	logger          *zap.Logger
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(gateway interfaces.IPaymentIntentGateway, defaultCurrency string, logger *zap.Logger) *PaymentIntentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentIntentUseCase{gateway: gateway, defaultCurrency: defaultCurrency, logger: logger}
}

func (u *PaymentIntentUseCase) Create(ctx context.Context, amount float64, currency string) (entities.PaymentIntent, error) {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = u.defaultCurrency
	}
	if !currencyPattern.MatchString(currency) {
		return entities.PaymentIntent{}, ErrInvalidCurrency
	}
	cents := toCents(amount)
	if cents <= 0 {
		return entities.PaymentIntent{}, ErrInvalidPaymentAmount
	}
	if u.gateway == nil {
		return entities.PaymentIntent{}, errors.New("payment intent gateway not configured")
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, interfaces.PaymentIntentRequest{
		AmountCents: cents,
		Currency:    currency,
	})
	if err != nil {
		u.logger.Error("payment intent creation failed", zap.Int64("amount_cents", cents), zap.String("currency", currency), zap.Error(err))
		return entities.PaymentIntent{}, err
	}
	u.logger.Info("payment intent created", zap.String("payment_intent_id", intent.ID), zap.Int64("amount_cents", cents))
	return intent, nil
}
