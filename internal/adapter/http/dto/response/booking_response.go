package response

import (
	"time"

	"monhajj/internal/domain/entities"
)

type BookingResponse struct {
	ID              string                  `json:"id"`
	BookingID       string                  `json:"booking_id"`
	WizardID        string                  `json:"wizard_id"`
	Flow            string                  `json:"flow"`
	OfferingID      string                  `json:"offering_id"`
	TravelType      string                  `json:"travel_type"`
	Category        string                  `json:"category"`
	RoomType        string                  `json:"room_type,omitempty"`
	NumberOfPeople  int                     `json:"number_of_people"`
	Clients         []entities.ClientRecord `json:"clients"`
	TotalPrice      float64                 `json:"total_price"`
	PaymentFraction float64                 `json:"payment_fraction"`
	PaymentAmount   float64                 `json:"payment_amount"`
	RemainingAmount float64                 `json:"remaining_amount"`
	Currency        string                  `json:"currency"`
	PaymentIntentID string                  `json:"payment_intent_id,omitempty"`
	Status          string                  `json:"status"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		BookingID:       b.ID,
		WizardID:        b.WizardID,
		Flow:            b.Flow,
		OfferingID:      b.OfferingID,
		TravelType:      string(b.TravelType),
		Category:        string(b.Category),
		RoomType:        string(b.RoomType),
		NumberOfPeople:  b.NumberOfPeople,
		Clients:         b.Clients,
		TotalPrice:      b.TotalPrice,
		PaymentFraction: b.PaymentFraction,
		PaymentAmount:   b.PaymentAmount,
		RemainingAmount: b.RemainingAmount,
		Currency:        b.Currency,
		PaymentIntentID: b.PaymentIntentID,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBookings(items []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBooking(b))
	}
	return out
}
