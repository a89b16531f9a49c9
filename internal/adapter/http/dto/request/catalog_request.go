package request

import (
	"strings"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"
)

type QuoteRequest struct {
	TravelType string `json:"travel_type" binding:"required"`
	Category   string `json:"category"`
	RoomType   string `json:"room_type"`
	Quantity   int    `json:"quantity" binding:"required"`
}

func (r QuoteRequest) ToPricingRequest() pricing.Request {
	return pricing.Request{
		TravelType: entities.TravelType(normalize(r.TravelType)),
		Category:   entities.Category(normalize(r.Category)),
		RoomType:   entities.RoomType(normalize(r.RoomType)),
		Quantity:   r.Quantity,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
