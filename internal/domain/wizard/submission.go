package wizard

import (
	"context"
	"errors"
	"time"

	"monhajj/internal/domain/entities"
)

const genericSubmissionMessage = "your booking could not be submitted, please try again"

// Payload is the booking handed to the submission collaborator.
type Payload struct {
	WizardID        string
	Flow            Flow
	Clients         []entities.ClientRecord
	NumberOfPeople  int
	Offering        entities.Offering
	RoomType        entities.RoomType
	TotalPrice      float64
	PaymentFraction float64
	PaymentAmount   float64
	RemainingAmount float64
}

// Receipt is what the collaborator returns once the booking is accepted.
type Receipt struct {
	BookingID       string    `json:"booking_id"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	ClientSecret    string    `json:"client_secret,omitempty"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type Submitter interface {
	Submit(ctx context.Context, p Payload) (Receipt, error)
}

type SubmitterFunc func(ctx context.Context, p Payload) (Receipt, error)

func (f SubmitterFunc) Submit(ctx context.Context, p Payload) (Receipt, error) {
	return f(ctx, p)
}

// PublicError is implemented by collaborator errors whose message can be
// shown to the traveler as is, typically a payment provider decline.
type PublicError interface {
	error
	PublicMessage() string
}

// SubmissionError is returned by Advance when the hand-off fails. The wizard
// stays on its payment step.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func publicMessage(err error) string {
	var pe PublicError
	if errors.As(err, &pe) && pe.PublicMessage() != "" {
		return pe.PublicMessage()
	}
	return genericSubmissionMessage
}
