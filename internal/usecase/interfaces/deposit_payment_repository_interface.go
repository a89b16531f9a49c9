package interfaces

import (
	"context"
	"errors"

	"monhajj/internal/domain/entities"
)

// ErrDepositPaymentExists is returned by Create when the provider payment id
// was already recorded.
var ErrDepositPaymentExists = errors.New("deposit payment already recorded")

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.
type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error)
}
