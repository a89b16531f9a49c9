package entities

import "time"

// BookingStatus represents the lifecycle of a submitted booking.
//
// A booking is created once the wizard is submitted and waits for the deposit.
// The remaining amount is collected later by an external process.
type BookingStatus string

const (
	BookingStatusAwaitingPayment BookingStatus = "awaiting_payment"
	BookingStatusDepositPaid     BookingStatus = "deposit_paid"
	BookingStatusCancelled       BookingStatus = "cancelled"
)

// Booking is the submitted booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email of the first traveler
//
// Monetary representation:
//   - TotalPrice, PaymentAmount and RemainingAmount are copied from the wizard
//     at submission time and are never recomputed afterwards.
type Booking struct {
	ID              string         `json:"id"`
	WizardID        string         `json:"wizard_id"`
	Flow            string         `json:"flow"`
	OfferingID      string         `json:"offering_id"`
	TravelType      TravelType     `json:"travel_type"`
	Category        Category       `json:"category"`
	RoomType        RoomType       `json:"room_type,omitempty"`
	NumberOfPeople  int            `json:"number_of_people"`
	Clients         []ClientRecord `json:"clients"`
	TotalPrice      float64        `json:"total_price"`
	PaymentFraction float64        `json:"payment_fraction"`
	PaymentAmount   float64        `json:"payment_amount"`
	RemainingAmount float64        `json:"remaining_amount"`
	Currency        string         `json:"currency"`
	PaymentIntentID string         `json:"payment_intent_id,omitempty"`
	// PaymentClientSecret lets a resubmission hand back the same intent.
	PaymentClientSecret string        `json:"-"`
	Status              BookingStatus `json:"status"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// ContactEmail is the email of the lead traveler.
func (b Booking) ContactEmail() string {
	if len(b.Clients) == 0 {
		return ""
	}
	return b.Clients[0].Email
}
