package pricing

import (
	"fmt"

	"monhajj/internal/domain/entities"
)

// Request is the tuple the resolver prices. RoomType is optional: when empty
// the package price is simply multiplied by Quantity.
type Request struct {
	TravelType entities.TravelType
	Category   entities.Category
	RoomType   entities.RoomType
	Quantity   int
}

type Quote struct {
	TravelType     entities.TravelType `json:"travel_type"`
	Category       entities.Category   `json:"category"`
	RoomType       entities.RoomType   `json:"room_type,omitempty"`
	Quantity       int                 `json:"quantity"`
	UnitPrice      float64             `json:"unit_price"`
	RoomMultiplier float64             `json:"room_multiplier"`
	Total          float64             `json:"total"`
}

// Resolve prices a request.
func Resolve(req Request) (Quote, error) {
	if req.Quantity < 1 {
		return Quote{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, req.Quantity)
	}
	category := req.Category
	if category == "" {
		category = entities.CategoryStandard
	}
	unit, err := PriceForOffering(req.TravelType, category)
	if err != nil {
		return Quote{}, err
	}

	q := Quote{
		TravelType:     req.TravelType,
		Category:       category,
		RoomType:       req.RoomType,
		Quantity:       req.Quantity,
		UnitPrice:      unit,
		RoomMultiplier: 1,
	}
	if req.RoomType == "" {
		q.Total = unit * float64(req.Quantity)
		return q, nil
	}

	m, err := RoomMultiplier(req.RoomType)
	if err != nil {
		return Quote{}, err
	}
	q.RoomMultiplier = m
	q.Total = PriceForRoomBooking(unit, m, req.Quantity)
	return q, nil
}
