// Package wizard implements the multi-step booking state machine.
//
// A Wizard owns one booking draft. Every mutation goes through a method that
// re-derives the prices, so the draft can never hold a total or a deposit that
// disagrees with its offering, room type, traveler count and payment option.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"
	"monhajj/pkg"
)

var (
	ErrUnknownFlow           = errors.New("unknown booking flow")
	ErrStepLocked            = errors.New("this value cannot be changed at the current step")
	ErrAtFirstStep           = errors.New("already at the first step")
	ErrAlreadySubmitted      = errors.New("booking already submitted")
	ErrClientIndexOutOfRange = errors.New("client index out of range")
	ErrRoomTypeNotSupported  = errors.New("room type is not part of this flow")
	ErrNoSubmitter           = errors.New("no submitter configured")
	ErrInvalidWizardState    = errors.New("invalid wizard state")
)

var now = func() time.Time { return time.Now().UTC() }

// Draft is a read-only view of the booking under construction.
type Draft struct {
	Clients         []entities.ClientRecord `json:"clients"`
	NumberOfPeople  int                     `json:"number_of_people"`
	Offering        *entities.Offering      `json:"offering,omitempty"`
	RoomType        entities.RoomType       `json:"room_type,omitempty"`
	UnitPrice       float64                 `json:"unit_price"`
	TotalPrice      float64                 `json:"total_price"`
	PaymentFraction float64                 `json:"payment_fraction"`
	PaymentAmount   float64                 `json:"payment_amount"`
	RemainingAmount float64                 `json:"remaining_amount"`
}

type Wizard struct {
	id        string
	rules     Rules
	stepIndex int
	draft     Draft
	receipt   *Receipt
	createdAt time.Time
	updatedAt time.Time
}

// New starts a wizard on the first step of flow with a single blank traveler.
func New(id string, flow Flow) (*Wizard, error) {
	rules, err := RulesFor(flow)
	if err != nil {
		return nil, err
	}
	ts := now()
	w := &Wizard{
		id:    id,
		rules: rules,
		draft: Draft{
			Clients:        []entities.ClientRecord{entities.BlankClientRecord()},
			NumberOfPeople: 1,
		},
		createdAt: ts,
		updatedAt: ts,
	}
	w.recompute()
	return w, nil
}

func (w *Wizard) ID() string           { return w.id }
func (w *Wizard) Flow() Flow           { return w.rules.Flow }
func (w *Wizard) Rules() Rules         { return w.rules }
func (w *Wizard) Step() Step           { return w.rules.Steps[w.stepIndex] }
func (w *Wizard) StepIndex() int       { return w.stepIndex }
func (w *Wizard) CreatedAt() time.Time { return w.createdAt }
func (w *Wizard) UpdatedAt() time.Time { return w.updatedAt }

func (w *Wizard) Submitted() bool {
	return w.Step() == StepSubmitted
}

func (w *Wizard) CanRetreat() bool {
	return w.stepIndex > 0 && !w.Submitted()
}

// Receipt is nil until the booking has been handed off.
func (w *Wizard) Receipt() *Receipt {
	if w.receipt == nil {
		return nil
	}
	r := *w.receipt
	return &r
}

// Draft returns a copy of the draft.
func (w *Wizard) Draft() Draft {
	d := w.draft
	d.Clients = append([]entities.ClientRecord(nil), w.draft.Clients...)
	if w.draft.Offering != nil {
		o := *w.draft.Offering
		d.Offering = &o
	}
	return d
}

// PaymentOptions lists the selectable deposits for the current total.
func (w *Wizard) PaymentOptions() []PaymentOption {
	out := make([]PaymentOption, 0, len(w.rules.PaymentFractions))
	for _, f := range w.rules.PaymentFractions {
		out = append(out, PaymentOption{Fraction: f, Amount: pricing.DepositAmount(w.draft.TotalPrice, f)})
	}
	return out
}

// SelectOffering sets the offering the booking is priced from.
func (w *Wizard) SelectOffering(o entities.Offering) error {
	if err := w.requireFirstStep(); err != nil {
		return err
	}
	if _, err := pricing.PriceForOffering(o.TravelType, o.Category); err != nil {
		return err
	}
	w.draft.Offering = &o
	w.changed()
	return nil
}

// SelectRoomType sets the hotel occupancy of a room flow booking.
func (w *Wizard) SelectRoomType(rt entities.RoomType) error {
	if w.rules.Flow != FlowRoom {
		return ErrRoomTypeNotSupported
	}
	if err := w.requireFirstStep(); err != nil {
		return err
	}
	if _, err := pricing.RoomMultiplier(rt); err != nil {
		return err
	}
	w.draft.RoomType = rt
	w.changed()
	return nil
}

// SetNumberOfPeople resizes the traveler list. Existing records keep their
// index, new ones are blank and removed ones are dropped from the tail.
func (w *Wizard) SetNumberOfPeople(n int) error {
	if err := w.requireFirstStep(); err != nil {
		return err
	}
	if n < 1 || n > w.rules.MaxTravelers {
		msg := fmt.Sprintf("number of people must be between 1 and %d", w.rules.MaxTravelers)
		return pkg.NewValidationError(msg, pkg.ValidationDetail{Field: "number_of_people", Message: msg})
	}
	w.draft.Clients = resizeClients(w.draft.Clients, n)
	w.draft.NumberOfPeople = n
	w.changed()
	return nil
}

// UpdateClient replaces the record of traveler i.
func (w *Wizard) UpdateClient(i int, rec entities.ClientRecord) error {
	if w.Submitted() {
		return ErrAlreadySubmitted
	}
	if i < 0 || i >= len(w.draft.Clients) {
		return fmt.Errorf("%w: %d", ErrClientIndexOutOfRange, i)
	}
	w.draft.Clients[i] = rec
	w.changed()
	return nil
}

// SelectPaymentOption picks the deposit fraction. Selecting the same fraction
// twice leaves the draft unchanged.
func (w *Wizard) SelectPaymentOption(fraction float64) error {
	if w.Submitted() {
		return ErrAlreadySubmitted
	}
	if s := w.Step(); s != StepPricingAndPayment && s != StepPayment {
		return ErrStepLocked
	}
	if !w.rules.allowsFraction(fraction) {
		msg := "payment option is not offered for this booking"
		return pkg.NewValidationError(msg, pkg.ValidationDetail{Field: "payment_fraction", Message: msg})
	}
	w.draft.PaymentFraction = fraction
	w.changed()
	return nil
}

// Advance validates the current step and moves to the next one. Leaving the
// last step before submission hands the booking to sub; on success the
// wizard becomes terminal and the receipt is returned.
func (w *Wizard) Advance(ctx context.Context, sub Submitter) (*Receipt, error) {
	if w.Submitted() {
		return nil, ErrAlreadySubmitted
	}
	if err := w.validateStep(w.Step()); err != nil {
		return nil, err
	}
	if w.rules.Steps[w.stepIndex+1] != StepSubmitted {
		w.stepIndex++
		w.touch()
		return nil, nil
	}
	return w.submit(ctx, sub)
}

// Retreat moves back one step without validation. Entered data is kept.
func (w *Wizard) Retreat() error {
	if w.Submitted() {
		return ErrAlreadySubmitted
	}
	if w.stepIndex == 0 {
		return ErrAtFirstStep
	}
	w.stepIndex--
	w.touch()
	return nil
}

// Payload assembles what is handed to the submitter.
func (w *Wizard) Payload() Payload {
	d := w.Draft()
	p := Payload{
		WizardID:        w.id,
		Flow:            w.rules.Flow,
		Clients:         d.Clients,
		NumberOfPeople:  d.NumberOfPeople,
		RoomType:        d.RoomType,
		TotalPrice:      d.TotalPrice,
		PaymentFraction: d.PaymentFraction,
		PaymentAmount:   d.PaymentAmount,
		RemainingAmount: d.RemainingAmount,
	}
	if d.Offering != nil {
		p.Offering = *d.Offering
	}
	return p
}

func (w *Wizard) submit(ctx context.Context, sub Submitter) (*Receipt, error) {
	if sub == nil {
		return nil, &SubmissionError{Message: genericSubmissionMessage, Err: ErrNoSubmitter}
	}
	receipt, err := sub.Submit(ctx, w.Payload())
	if err != nil {
		return nil, &SubmissionError{Message: publicMessage(err), Err: err}
	}
	if receipt.SubmittedAt.IsZero() {
		receipt.SubmittedAt = now()
	}
	w.receipt = &receipt
	w.stepIndex++
	w.touch()
	return w.Receipt(), nil
}

func (w *Wizard) requireFirstStep() error {
	if w.Submitted() {
		return ErrAlreadySubmitted
	}
	if w.stepIndex != 0 {
		return ErrStepLocked
	}
	return nil
}

func (w *Wizard) changed() {
	w.recompute()
	w.touch()
}

func (w *Wizard) touch() {
	w.updatedAt = now()
}

// recompute derives every price field from the current selections.
func (w *Wizard) recompute() {
	d := &w.draft
	d.UnitPrice, d.TotalPrice = 0, 0
	if d.Offering != nil {
		d.UnitPrice = pricing.MustPriceForOffering(d.Offering.TravelType, d.Offering.Category)
		switch w.rules.Flow {
		case FlowRoom:
			if d.RoomType != "" {
				m, err := pricing.RoomMultiplier(d.RoomType)
				if err != nil {
					panic(err)
				}
				d.TotalPrice = pricing.PriceForRoomBooking(d.UnitPrice, m, d.NumberOfPeople)
			}
		default:
			d.TotalPrice = d.UnitPrice * float64(d.NumberOfPeople)
		}
	}
	d.PaymentAmount = pricing.DepositAmount(d.TotalPrice, d.PaymentFraction)
	d.RemainingAmount = pricing.RemainingAmount(d.TotalPrice, d.PaymentAmount)

	if len(d.Clients) != d.NumberOfPeople {
		panic(fmt.Sprintf("wizard %s: %d client records for %d people", w.id, len(d.Clients), d.NumberOfPeople))
	}
}

func resizeClients(clients []entities.ClientRecord, n int) []entities.ClientRecord {
	if n <= len(clients) {
		return clients[:n:n]
	}
	out := make([]entities.ClientRecord, n)
	copy(out, clients)
	for i := len(clients); i < n; i++ {
		out[i] = entities.BlankClientRecord()
	}
	return out
}
