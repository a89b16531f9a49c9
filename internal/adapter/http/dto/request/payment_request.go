package request

import (
	"encoding/json"
	"strings"
)

// DepositPaymentCreateRequest is the payload of the deposit capture route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.
type DepositPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}

// PaymentIntentRequest is the body the card form posts. Amount is in major
// units (euros).
type PaymentIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (r PaymentIntentRequest) NormalizedCurrency() string {
	return strings.ToLower(strings.TrimSpace(r.Currency))
}
