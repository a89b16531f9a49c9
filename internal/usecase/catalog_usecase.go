package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"monhajj/internal/domain/catalog"
	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"
)

var (
	ErrOfferingNotFound    = errors.New("offering not found")
	ErrInvalidOfferingID   = errors.New("invalid offering id")
	ErrInvalidTravelType   = errors.New("invalid travel type")
	ErrInvalidQuoteRequest = errors.New("invalid quote request")
)

// ICatalogUseCase exposes the offering catalog and the price resolver.
type ICatalogUseCase interface {
	ListOfferings(ctx context.Context, travelType string) ([]entities.Offering, error)
	GetOffering(ctx context.Context, id string) (entities.Offering, error)
	RoomTypes(ctx context.Context) []entities.RoomOption
	Quote(ctx context.Context, req pricing.Request) (pricing.Quote, error)
}

type CatalogUseCase struct {
	catalog *catalog.Catalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(c *catalog.Catalog) *CatalogUseCase {
	return &CatalogUseCase{catalog: c}
}

func (u *CatalogUseCase) ListOfferings(_ context.Context, travelType string) ([]entities.Offering, error) {
	tt := entities.TravelType(strings.ToLower(strings.TrimSpace(travelType)))
	if tt != "" && !tt.Valid() {
		return nil, ErrInvalidTravelType
	}
	return u.catalog.List(tt), nil
}

func (u *CatalogUseCase) GetOffering(_ context.Context, id string) (entities.Offering, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offering{}, ErrInvalidOfferingID
	}
	o, err := u.catalog.Get(id)
	if errors.Is(err, catalog.ErrOfferingNotFound) {
		return entities.Offering{}, ErrOfferingNotFound
	}
	return o, err
}

func (u *CatalogUseCase) RoomTypes(_ context.Context) []entities.RoomOption {
	return pricing.RoomOptions()
}

func (u *CatalogUseCase) Quote(_ context.Context, req pricing.Request) (pricing.Quote, error) {
	q, err := pricing.Resolve(req)
	if err != nil {
		return pricing.Quote{}, fmt.Errorf("%w: %v", ErrInvalidQuoteRequest, err)
	}
	return q, nil
}
