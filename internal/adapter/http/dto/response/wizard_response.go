package response

import (
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/wizard"
	"monhajj/pkg"
)

type DraftResponse struct {
	Clients         []entities.ClientRecord `json:"clients"`
	NumberOfPeople  int                     `json:"number_of_people"`
	Offering        *OfferingResponse       `json:"offering,omitempty"`
	RoomType        string                  `json:"room_type,omitempty"`
	UnitPrice       float64                 `json:"unit_price"`
	TotalPrice      float64                 `json:"total_price"`
	PaymentFraction float64                 `json:"payment_fraction"`
	PaymentAmount   float64                 `json:"payment_amount"`
	RemainingAmount float64                 `json:"remaining_amount"`
}

// WizardResponse is the whole screen state of a booking wizard. Error is set
// when the last command was rejected; the rest still describes the wizard as
// it stands.
type WizardResponse struct {
	ID             string                 `json:"id"`
	Flow           string                 `json:"flow"`
	Step           string                 `json:"step"`
	StepIndex      int                    `json:"step_index"`
	Steps          []string               `json:"steps"`
	CanRetreat     bool                   `json:"can_retreat"`
	Submitted      bool                   `json:"submitted"`
	Draft          DraftResponse          `json:"draft"`
	PaymentOptions []wizard.PaymentOption `json:"payment_options"`
	Receipt        *wizard.Receipt        `json:"receipt,omitempty"`
	Error          *pkg.HTTPError         `json:"error,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromWizard(w *wizard.Wizard) WizardResponse {
	d := w.Draft()
	steps := make([]string, 0, len(w.Rules().Steps))
	for _, s := range w.Rules().Steps {
		steps = append(steps, string(s))
	}

	res := WizardResponse{
		ID:         w.ID(),
		Flow:       string(w.Flow()),
		Step:       string(w.Step()),
		StepIndex:  w.StepIndex(),
		Steps:      steps,
		CanRetreat: w.CanRetreat(),
		Submitted:  w.Submitted(),
		Draft: DraftResponse{
			Clients:         d.Clients,
			NumberOfPeople:  d.NumberOfPeople,
			RoomType:        string(d.RoomType),
			UnitPrice:       d.UnitPrice,
			TotalPrice:      d.TotalPrice,
			PaymentFraction: d.PaymentFraction,
			PaymentAmount:   d.PaymentAmount,
			RemainingAmount: d.RemainingAmount,
		},
		PaymentOptions: w.PaymentOptions(),
		Receipt:        w.Receipt(),
		CreatedAt:      w.CreatedAt(),
		UpdatedAt:      w.UpdatedAt(),
	}
	if d.Offering != nil {
		o := FromOffering(*d.Offering)
		res.Draft.Offering = &o
	}
	return res
}

func (r WizardResponse) WithError(e pkg.HTTPError) WizardResponse {
	r.Error = &e
	return r
}
