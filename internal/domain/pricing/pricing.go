// Package pricing resolves package prices from the closed catalog of travel
// types, categories and room types. Every function is pure.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"monhajj/internal/domain/entities"
)

// HajjBasePrice is the per-person Standard price of a Hajj package, in EUR.
const HajjBasePrice = 6500.0

var (
	ErrUnknownTravelType = errors.New("unknown travel type")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrUnknownRoomType   = errors.New("unknown room type")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
)

var omraPrices = map[entities.Category]float64{
	entities.CategoryStandard: 1500,
	entities.CategoryComfort:  2000,
	entities.CategoryPremium:  2500,
}

var hajjSurcharges = map[entities.Category]float64{
	entities.CategoryStandard: 0,
	entities.CategoryComfort:  0.30,
	entities.CategoryPremium:  0.50,
}

var roomOptions = []entities.RoomOption{
	{Type: entities.RoomTypeDouble, Label: "Chambre double", OccupancyMultiplier: 1.3},
	{Type: entities.RoomTypeTriple, Label: "Chambre triple", OccupancyMultiplier: 1.15},
	{Type: entities.RoomTypeQuadruple, Label: "Chambre quadruple", OccupancyMultiplier: 1.0},
}

// RoomOptions returns the room types of the room-based flow, cheapest last.
func RoomOptions() []entities.RoomOption {
	out := make([]entities.RoomOption, len(roomOptions))
	copy(out, roomOptions)
	return out
}

// RoomMultiplier returns the occupancy factor of a room type.
func RoomMultiplier(rt entities.RoomType) (float64, error) {
	for _, o := range roomOptions {
		if o.Type == rt {
			return o.OccupancyMultiplier, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRoomType, rt)
}

// PriceForOffering returns the per-person price of a travel type and category.
//
// An empty category is priced as Standard. Any other value outside the closed
// set is a contract violation.
func PriceForOffering(tt entities.TravelType, c entities.Category) (float64, error) {
	if c == "" {
		c = entities.CategoryStandard
	}
	switch tt {
	case entities.TravelTypeOmra:
		p, ok := omraPrices[c]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		return p, nil
	case entities.TravelTypeHajj:
		s, ok := hajjSurcharges[c]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		return RoundCents(HajjBasePrice * (1 + s)), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTravelType, tt)
	}
}

// MustPriceForOffering is PriceForOffering for catalog entries known at
// compile time. It panics on an unknown combination.
func MustPriceForOffering(tt entities.TravelType, c entities.Category) float64 {
	p, err := PriceForOffering(tt, c)
	if err != nil {
		panic(err)
	}
	return p
}

// PriceForRoomBooking is packagePrice x roomMultiplier x numberOfPersons.
// No rounding happens here; only deposits are rounded.
func PriceForRoomBooking(packagePrice, roomMultiplier float64, numberOfPersons int) float64 {
	return packagePrice * roomMultiplier * float64(numberOfPersons)
}

// DepositAmount returns total x fraction rounded to cents. Non-positive totals
// yield a zero deposit.
func DepositAmount(total, fraction float64) float64 {
	if total <= 0 || fraction <= 0 {
		return 0
	}
	return RoundCents(total * fraction)
}

// RemainingAmount returns what is left to pay once the deposit is collected.
func RemainingAmount(total, deposit float64) float64 {
	r := RoundCents(total - deposit)
	if r < 0 {
		return 0
	}
	return r
}

// RoundCents rounds half away from zero to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
