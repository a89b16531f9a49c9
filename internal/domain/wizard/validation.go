package wizard

import (
	"fmt"
	"strings"

	"monhajj/internal/domain/entities"
	"monhajj/pkg"
)

const (
	msgFixFields           = "please correct the highlighted fields"
	msgSelectOffering      = "select an offering"
	msgSelectRoomType      = "select a room type"
	msgSelectPaymentOption = "select a payment option"
)

// validateStep runs the predicate guarding the exit of step s.
func (w *Wizard) validateStep(s Step) error {
	switch s {
	case StepSelectOffering:
		if w.draft.Offering == nil {
			return pkg.NewValidationError(msgSelectOffering, pkg.ValidationDetail{Field: "offering", Message: msgSelectOffering})
		}
	case StepPrimaryInfo:
		if details := w.rules.validateClients(w.draft.Clients); len(details) > 0 {
			return pkg.NewValidationError(msgFixFields, details...)
		}
	case StepForm:
		var details []pkg.ValidationDetail
		if w.draft.Offering == nil {
			details = append(details, pkg.ValidationDetail{Field: "offering", Message: msgSelectOffering})
		}
		if w.draft.RoomType == "" {
			details = append(details, pkg.ValidationDetail{Field: "room_type", Message: msgSelectRoomType})
		}
		details = append(details, w.rules.validateClients(w.draft.Clients)...)
		if len(details) > 0 {
			return pkg.NewValidationError(msgFixFields, details...)
		}
	case StepPricingAndPayment, StepPayment:
		if w.draft.PaymentAmount <= 0 {
			return pkg.NewValidationError(msgSelectPaymentOption)
		}
		// Travelers stay editable after the identity step.
		if details := w.rules.validateClients(w.draft.Clients); len(details) > 0 {
			return pkg.NewValidationError(msgFixFields, details...)
		}
	}
	return nil
}

// validateClients checks the required identity fields of every traveler.
func (r Rules) validateClients(clients []entities.ClientRecord) []pkg.ValidationDetail {
	var details []pkg.ValidationDetail
	add := func(i int, field, msg string) {
		details = append(details, pkg.ValidationDetail{Field: fmt.Sprintf("clients[%d].%s", i, field), Message: msg})
	}

	for i, c := range clients {
		switch {
		case c.Title == "":
			add(i, "title", "title is required")
		case !c.Title.Valid():
			add(i, "title", "title must be Mr or Mme")
		}
		if strings.TrimSpace(c.FirstName) == "" {
			add(i, "first_name", "first name is required")
		}
		if strings.TrimSpace(c.LastName) == "" {
			add(i, "last_name", "last name is required")
		}

		email := strings.TrimSpace(c.Email)
		switch {
		case email == "":
			add(i, "email", "email is required")
		case !emailPattern.MatchString(email):
			add(i, "email", "email is invalid")
		}

		phone := strings.TrimSpace(c.Phone)
		switch {
		case phone == "":
			add(i, "phone", "phone is required")
		case !r.PhonePattern.MatchString(phone):
			add(i, "phone", r.PhoneMessage)
		}
	}
	return details
}
