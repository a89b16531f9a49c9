package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appconfig "monhajj/internal/config"
	"monhajj/internal/domain/entities"
	"monhajj/internal/infrastructure/logger"
	"monhajj/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// ProviderError carries the message Stripe wants shown to the payer, for
// instance "Your card was declined.".
type ProviderError struct {
	Code string
	Msg  string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("stripe: %s: %s", e.Code, e.Msg)
	}
	return "stripe: " + e.Msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

func (e *ProviderError) PublicMessage() string { return e.Msg }

type paymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway creates payment intents whose client secret is confirmed by
// the browser's card element.
type StripeGateway struct {
	intents  paymentIntentCreator
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IPaymentIntentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg appconfig.PaymentsConfig, log *zap.Logger) (*StripeGateway, error) {
	log = logger.OrNop(log).With(zap.String("gateway", "stripe"))

	if cfg.Mock {
		log.Info("mock mode enabled")
		return &StripeGateway{mockMode: true, logger: log}, nil
	}

	if cfg.StripeSecretKey == "" {
		log.Error("missing secret key")
		return nil, ErrMissingStripeSecretKey
	}

	sc := client.New(cfg.StripeSecretKey, nil)
	log.Info("client initialized")
	return &StripeGateway{intents: sc.PaymentIntents, logger: log}, nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req interfaces.PaymentIntentRequest) (entities.PaymentIntent, error) {
	currency := strings.ToLower(req.Currency)

	if g != nil && g.mockMode {
		id := "pi_mock_" + mockSuffix(req.IdempotencyKey)
		g.logger.Info("mock intent created",
			zap.String("payment_intent_id", id),
			zap.Int64("amount_cents", req.AmountCents),
		)
		return entities.PaymentIntent{
			ID:           id,
			ClientSecret: id + "_secret_mock",
			Status:       string(stripe.PaymentIntentStatusRequiresPaymentMethod),
			Amount:       float64(req.AmountCents) / 100,
			Currency:     currency,
		}, nil
	}

	if g == nil || g.intents == nil {
		return entities.PaymentIntent{}, ErrStripeGatewayNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(req.ReceiptEmail)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	g.logger.Info("create intent start",
		zap.Int64("amount_cents", req.AmountCents),
		zap.String("currency", currency),
	)
	pi, err := g.intents.New(params)
	if err != nil {
		var se *stripe.Error
		if errors.As(err, &se) {
			g.logger.Warn("create intent rejected",
				zap.String("code", string(se.Code)),
				zap.String("type", string(se.Type)),
			)
			return entities.PaymentIntent{}, &ProviderError{Code: string(se.Code), Msg: se.Msg, Err: err}
		}
		g.logger.Error("create intent failed", zap.Error(err))
		return entities.PaymentIntent{}, err
	}

	g.logger.Info("create intent success", zap.String("payment_intent_id", pi.ID))
	return entities.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       float64(pi.Amount) / 100,
		Currency:     string(pi.Currency),
	}, nil
}

func mockSuffix(key string) string {
	key = strings.TrimPrefix(key, "booking-")
	if key == "" {
		return "anonymous"
	}
	return strings.ReplaceAll(key, "-", "")
}
