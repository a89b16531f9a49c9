package entities

// ClientTitle is the civility of a traveler.
type ClientTitle string

const (
	ClientTitleMr  ClientTitle = "Mr"
	ClientTitleMme ClientTitle = "Mme"
)

func (t ClientTitle) Valid() bool {
	return t == ClientTitleMr || t == ClientTitleMme
}

type EmergencyContact struct {
	Name         string `json:"name" dynamodbav:"name"`
	Phone        string `json:"phone" dynamodbav:"phone"`
	Relationship string `json:"relationship" dynamodbav:"relationship"`
}

// ClientRecord holds the details collected for one traveler.
//
// Title, FirstName, LastName, Email and Phone are required before the booking
// can move past the identity step. Everything else is optional free text.
type ClientRecord struct {
	Title     ClientTitle `json:"title" dynamodbav:"title"`
	FirstName string      `json:"first_name" dynamodbav:"first_name"`
	LastName  string      `json:"last_name" dynamodbav:"last_name"`
	Email     string      `json:"email" dynamodbav:"email"`
	Phone     string      `json:"phone" dynamodbav:"phone"`

	DateOfBirth      string           `json:"date_of_birth,omitempty" dynamodbav:"date_of_birth,omitempty"`
	Nationality      string           `json:"nationality,omitempty" dynamodbav:"nationality,omitempty"`
	PassportNumber   string           `json:"passport_number,omitempty" dynamodbav:"passport_number,omitempty"`
	PassportExpiry   string           `json:"passport_expiry,omitempty" dynamodbav:"passport_expiry,omitempty"`
	Address          string           `json:"address,omitempty" dynamodbav:"address,omitempty"`
	City             string           `json:"city,omitempty" dynamodbav:"city,omitempty"`
	PostalCode       string           `json:"postal_code,omitempty" dynamodbav:"postal_code,omitempty"`
	Country          string           `json:"country,omitempty" dynamodbav:"country,omitempty"`
	EmergencyContact EmergencyContact `json:"emergency_contact" dynamodbav:"emergency_contact"`
}

// BlankClientRecord is the record appended when the traveler count grows.
func BlankClientRecord() ClientRecord {
	return ClientRecord{}
}
