package wizard

import (
	"fmt"
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"
)

// State is the persisted form of a wizard. Prices are not stored; they are
// derived again by Restore.
type State struct {
	ID              string                  `json:"id"`
	Flow            Flow                    `json:"flow"`
	Step            Step                    `json:"step"`
	Clients         []entities.ClientRecord `json:"clients"`
	NumberOfPeople  int                     `json:"number_of_people"`
	Offering        *entities.Offering      `json:"offering,omitempty"`
	RoomType        entities.RoomType       `json:"room_type,omitempty"`
	PaymentFraction float64                 `json:"payment_fraction,omitempty"`
	Receipt         *Receipt                `json:"receipt,omitempty"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func (w *Wizard) State() State {
	d := w.Draft()
	return State{
		ID:              w.id,
		Flow:            w.rules.Flow,
		Step:            w.Step(),
		Clients:         d.Clients,
		NumberOfPeople:  d.NumberOfPeople,
		Offering:        d.Offering,
		RoomType:        d.RoomType,
		PaymentFraction: d.PaymentFraction,
		Receipt:         w.Receipt(),
		CreatedAt:       w.createdAt,
		UpdatedAt:       w.updatedAt,
	}
}

// Restore rebuilds a wizard from a stored state, rejecting states that break
// the draft invariants.
func Restore(s State) (*Wizard, error) {
	rules, err := RulesFor(s.Flow)
	if err != nil {
		return nil, err
	}
	idx := rules.indexOf(s.Step)
	if idx < 0 {
		return nil, fmt.Errorf("%w: step %q not in flow %q", ErrInvalidWizardState, s.Step, s.Flow)
	}
	if s.NumberOfPeople < 1 || s.NumberOfPeople > rules.MaxTravelers || len(s.Clients) != s.NumberOfPeople {
		return nil, fmt.Errorf("%w: %d client records for %d people", ErrInvalidWizardState, len(s.Clients), s.NumberOfPeople)
	}
	if s.Offering != nil {
		if _, err := pricing.PriceForOffering(s.Offering.TravelType, s.Offering.Category); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWizardState, err)
		}
	}
	if s.RoomType != "" {
		if rules.Flow != FlowRoom {
			return nil, fmt.Errorf("%w: room type in flow %q", ErrInvalidWizardState, s.Flow)
		}
		if _, err := pricing.RoomMultiplier(s.RoomType); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWizardState, err)
		}
	}
	if s.PaymentFraction != 0 && !rules.allowsFraction(s.PaymentFraction) {
		return nil, fmt.Errorf("%w: payment fraction %v", ErrInvalidWizardState, s.PaymentFraction)
	}
	if (s.Step == StepSubmitted) != (s.Receipt != nil) {
		return nil, fmt.Errorf("%w: receipt does not match step %q", ErrInvalidWizardState, s.Step)
	}

	w := &Wizard{
		id:        s.ID,
		rules:     rules,
		stepIndex: idx,
		draft: Draft{
			Clients:         append([]entities.ClientRecord(nil), s.Clients...),
			NumberOfPeople:  s.NumberOfPeople,
			Offering:        s.Offering,
			RoomType:        s.RoomType,
			PaymentFraction: s.PaymentFraction,
		},
		receipt:   s.Receipt,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
	w.recompute()
	return w, nil
}
