package request

import (
	"strings"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/wizard"
)

type CreateWizardRequest struct {
	Flow string `json:"flow"`
}

// ResolveFlow defaults to the package flow when no flow is given.
func (r CreateWizardRequest) ResolveFlow() wizard.Flow {
	if v := normalize(r.Flow); v != "" {
		return wizard.Flow(v)
	}
	return wizard.FlowPackage
}

type SelectOfferingRequest struct {
	OfferingID string `json:"offering_id" binding:"required"`
}

type SelectRoomTypeRequest struct {
	RoomType string `json:"room_type" binding:"required"`
}

func (r SelectRoomTypeRequest) ResolveRoomType() entities.RoomType {
	return entities.RoomType(normalize(r.RoomType))
}

type SetTravelersRequest struct {
	NumberOfPeople int `json:"number_of_people"`
}

type PaymentOptionRequest struct {
	Fraction float64 `json:"fraction"`
}

type EmergencyContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// ClientRecordRequest is one traveler as typed in the form. Values are
// trimmed but otherwise kept as typed; validation happens when the wizard
// advances.
type ClientRecordRequest struct {
	Title            string                  `json:"title"`
	FirstName        string                  `json:"first_name"`
	LastName         string                  `json:"last_name"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	DateOfBirth      string                  `json:"date_of_birth"`
	Nationality      string                  `json:"nationality"`
	PassportNumber   string                  `json:"passport_number"`
	PassportExpiry   string                  `json:"passport_expiry"`
	Address          string                  `json:"address"`
	City             string                  `json:"city"`
	PostalCode       string                  `json:"postal_code"`
	Country          string                  `json:"country"`
	EmergencyContact EmergencyContactRequest `json:"emergency_contact"`
}

func (r ClientRecordRequest) ToEntity() entities.ClientRecord {
	t := strings.TrimSpace
	return entities.ClientRecord{
		Title:          entities.ClientTitle(t(r.Title)),
		FirstName:      t(r.FirstName),
		LastName:       t(r.LastName),
		Email:          t(r.Email),
		Phone:          t(r.Phone),
		DateOfBirth:    t(r.DateOfBirth),
		Nationality:    t(r.Nationality),
		PassportNumber: t(r.PassportNumber),
		PassportExpiry: t(r.PassportExpiry),
		Address:        t(r.Address),
		City:           t(r.City),
		PostalCode:     t(r.PostalCode),
		Country:        t(r.Country),
		EmergencyContact: entities.EmergencyContact{
			Name:         t(r.EmergencyContact.Name),
			Phone:        t(r.EmergencyContact.Phone),
			Relationship: t(r.EmergencyContact.Relationship),
		},
	}
}
