package entities

import "time"

// TravelType is the kind of pilgrimage an offering sells.
type TravelType string

const (
	TravelTypeHajj TravelType = "hajj"
	TravelTypeOmra TravelType = "omra"
)

func (t TravelType) Valid() bool {
	switch t {
	case TravelTypeHajj, TravelTypeOmra:
		return true
	}
	return false
}

// Category is the price/service tier of an offering.
type Category string

const (
	CategoryStandard Category = "standard"
	CategoryComfort  Category = "comfort"
	CategoryPremium  Category = "premium"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStandard, CategoryComfort, CategoryPremium:
		return true
	}
	return false
}

// RoomType is the hotel occupancy chosen in the room-based flow.
type RoomType string

const (
	RoomTypeDouble    RoomType = "double"
	RoomTypeTriple    RoomType = "triple"
	RoomTypeQuadruple RoomType = "quadruple"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomTypeDouble, RoomTypeTriple, RoomTypeQuadruple:
		return true
	}
	return false
}

// Offering is one sellable pilgrimage package of the catalog.
//
// Offerings are defined at process start and never mutated.
type Offering struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	TravelType    TravelType `json:"travel_type"`
	Category      Category   `json:"category"`
	BasePrice     float64    `json:"base_price"`
	DepartureDate time.Time  `json:"departure_date"`
}

// RoomOption couples a room type with the factor applied to the per-person price.
type RoomOption struct {
	Type                RoomType `json:"type"`
	Label               string   `json:"label"`
	OccupancyMultiplier float64  `json:"occupancy_multiplier"`
}
