package interfaces

import (
	"context"
	"encoding/json"

	"monhajj/internal/domain/entities"
)

// IPaymentGateway captures a card-token payment with Mercado Pago.
//
// The provider response payload is returned untouched so it can be stored
// for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}

// PaymentIntentRequest is expressed in the smallest currency unit.
type PaymentIntentRequest struct {
	AmountCents    int64
	Currency       string
	Description    string
	ReceiptEmail   string
	IdempotencyKey string
	Metadata       map[string]string
}

// IPaymentIntentGateway creates Stripe payment intents whose client secret is
// confirmed by the browser.
type IPaymentIntentGateway interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (entities.PaymentIntent, error)
}
