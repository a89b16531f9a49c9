package response

import (
	"time"

	"monhajj/internal/domain/entities"
)

type DepositPaymentResponse struct {
	PaymentID   string    `json:"payment_id"`
	ID          string    `json:"id"`
	BookingID   string    `json:"booking_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		BookingID:    p.BookingID,
		Amount:       p.Amount,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

// PaymentIntentResponse is the success body of the create-payment-intent
// route. The key name is what the card form reads.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type PaymentIntentErrorResponse struct {
	Error string `json:"error"`
}
