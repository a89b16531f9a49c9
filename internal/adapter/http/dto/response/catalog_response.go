package response

import (
	"monhajj/internal/domain/catalog"
	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"
)

// OfferingResponse carries both the base price and the per-person price the
// booking is charged, plus the departure date as an ISO date and a label.
type OfferingResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	TravelType     string  `json:"travel_type"`
	Category       string  `json:"category"`
	BasePrice      float64 `json:"base_price"`
	Price          float64 `json:"price"`
	DepartureDate  string  `json:"departure_date"`
	DepartureLabel string  `json:"departure_label"`
}

func FromOffering(o entities.Offering) OfferingResponse {
	price, _ := pricing.PriceForOffering(o.TravelType, o.Category)
	res := OfferingResponse{
		ID:             o.ID,
		Title:          o.Title,
		TravelType:     string(o.TravelType),
		Category:       string(o.Category),
		BasePrice:      o.BasePrice,
		Price:          price,
		DepartureLabel: catalog.LongDate(o.DepartureDate),
	}
	if !o.DepartureDate.IsZero() {
		res.DepartureDate = o.DepartureDate.Format("2006-01-02")
	}
	return res
}

func FromOfferings(items []entities.Offering) []OfferingResponse {
	out := make([]OfferingResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromOffering(o))
	}
	return out
}

type RoomTypeResponse struct {
	ID                  string  `json:"id"`
	Label               string  `json:"label"`
	OccupancyMultiplier float64 `json:"occupancy_multiplier"`
}

func FromRoomOptions(items []entities.RoomOption) []RoomTypeResponse {
	out := make([]RoomTypeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, RoomTypeResponse{ID: string(r.Type), Label: r.Label, OccupancyMultiplier: r.OccupancyMultiplier})
	}
	return out
}

type QuoteResponse struct {
	TravelType     string  `json:"travel_type"`
	Category       string  `json:"category"`
	RoomType       string  `json:"room_type,omitempty"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	RoomMultiplier float64 `json:"room_multiplier"`
	Total          float64 `json:"total"`
}

func FromQuote(q pricing.Quote) QuoteResponse {
	return QuoteResponse{
		TravelType:     string(q.TravelType),
		Category:       string(q.Category),
		RoomType:       string(q.RoomType),
		Quantity:       q.Quantity,
		UnitPrice:      q.UnitPrice,
		RoomMultiplier: q.RoomMultiplier,
		Total:          q.Total,
	}
}
