package wizard

import (
	"fmt"
	"math"
	"regexp"
)

// Flow selects which sequence of steps and which validators a wizard uses.
type Flow string

const (
	// FlowPackage is the full booking wizard of the package pages.
	FlowPackage Flow = "package"
	// FlowRoom is the short registration form with a room choice.
	FlowRoom Flow = "room"
)

type Step string

const (
	StepSelectOffering    Step = "select_offering"
	StepPrimaryInfo       Step = "primary_info"
	StepSupplementaryInfo Step = "supplementary_info"
	StepEmergencyContact  Step = "emergency_contact"
	StepPricingAndPayment Step = "pricing_and_payment"
	StepForm              Step = "form"
	StepPayment           Step = "payment"
	StepSubmitted         Step = "submitted"
)

// Rules is the validator configuration of a flow. The two flows disagree on
// phone numbers and deposit options and are kept apart on purpose.
type Rules struct {
	Flow             Flow
	Steps            []Step
	PhonePattern     *regexp.Regexp
	PhoneMessage     string
	PaymentFractions []float64
	MaxTravelers     int
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	packageRules = Rules{
		Flow: FlowPackage,
		Steps: []Step{
			StepSelectOffering,
			StepPrimaryInfo,
			StepSupplementaryInfo,
			StepEmergencyContact,
			StepPricingAndPayment,
			StepSubmitted,
		},
		PhonePattern:     regexp.MustCompile(`^[0-9+\s-]{8,}$`),
		PhoneMessage:     "phone must have at least 8 characters among digits, spaces, + and -",
		PaymentFractions: []float64{0.25, 0.5, 0.75, 1.0},
		MaxTravelers:     10,
	}

	roomRules = Rules{
		Flow:             FlowRoom,
		Steps:            []Step{StepForm, StepPayment, StepSubmitted},
		PhonePattern:     regexp.MustCompile(`^[0-9]{10}$`),
		PhoneMessage:     "phone must have exactly 10 digits",
		PaymentFractions: []float64{0.2, 0.3},
		MaxTravelers:     10,
	}
)

// RulesFor returns the configuration of a flow.
func RulesFor(f Flow) (Rules, error) {
	switch f {
	case FlowPackage:
		return packageRules, nil
	case FlowRoom:
		return roomRules, nil
	}
	return Rules{}, fmt.Errorf("%w: %q", ErrUnknownFlow, f)
}

func (r Rules) indexOf(s Step) int {
	for i, st := range r.Steps {
		if st == s {
			return i
		}
	}
	return -1
}

func (r Rules) allowsFraction(f float64) bool {
	for _, allowed := range r.PaymentFractions {
		if math.Abs(allowed-f) < 1e-9 {
			return true
		}
	}
	return false
}

// PaymentOption is one selectable deposit for the current total.
type PaymentOption struct {
	Fraction float64 `json:"fraction"`
	Amount   float64 `json:"amount"`
}
