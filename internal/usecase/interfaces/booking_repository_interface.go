package interfaces

import (
	"context"
	"errors"

	"monhajj/internal/domain/entities"
)

// ErrBookingExists is returned by Create when the id is already taken.
var ErrBookingExists = errors.New("booking already exists")

// IBookingRepository abstracts DynamoDB persistence for submitted bookings.
//
// Lookups return a zero Booking (empty ID) when nothing matches.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Booking, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
