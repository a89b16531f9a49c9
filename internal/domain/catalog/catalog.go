// Package catalog holds the fixed list of offerings sold on the site.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"
)

var ErrOfferingNotFound = errors.New("offering not found")

// Catalog is an immutable, ordered set of offerings.
type Catalog struct {
	offerings []entities.Offering
	byID      map[string]int
}

// New builds a catalog and rejects entries outside the closed set of travel
// types and categories, as well as duplicate ids.
func New(offerings []entities.Offering) (*Catalog, error) {
	c := &Catalog{
		offerings: make([]entities.Offering, 0, len(offerings)),
		byID:      make(map[string]int, len(offerings)),
	}
	for _, o := range offerings {
		if o.ID == "" {
			return nil, errors.New("offering id is required")
		}
		if _, dup := c.byID[o.ID]; dup {
			return nil, fmt.Errorf("duplicate offering id %q", o.ID)
		}
		if _, err := pricing.PriceForOffering(o.TravelType, o.Category); err != nil {
			return nil, fmt.Errorf("offering %q: %w", o.ID, err)
		}
		c.byID[o.ID] = len(c.offerings)
		c.offerings = append(c.offerings, o)
	}
	return c, nil
}

// MustNew is New for the built-in catalog.
func MustNew(offerings []entities.Offering) *Catalog {
	c, err := New(offerings)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the catalog of the current season.
func Default() *Catalog {
	return MustNew(defaultOfferings())
}

// List returns the offerings sorted by departure date, optionally filtered by
// travel type. An empty travel type returns everything.
func (c *Catalog) List(tt entities.TravelType) []entities.Offering {
	out := make([]entities.Offering, 0, len(c.offerings))
	for _, o := range c.offerings {
		if tt == "" || o.TravelType == tt {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DepartureDate.Before(out[j].DepartureDate)
	})
	return out
}

func (c *Catalog) Get(id string) (entities.Offering, error) {
	i, ok := c.byID[id]
	if !ok {
		return entities.Offering{}, fmt.Errorf("%w: %q", ErrOfferingNotFound, id)
	}
	return c.offerings[i], nil
}

func defaultOfferings() []entities.Offering {
	hajj := date(2027, time.May, 10)
	omraRamadan := date(2027, time.February, 8)
	omraSpring := date(2027, time.April, 12)

	offerings := []entities.Offering{
		{ID: "hajj-2027-standard", Title: "Hajj 2027 Standard", TravelType: entities.TravelTypeHajj, Category: entities.CategoryStandard, DepartureDate: hajj},
		{ID: "hajj-2027-comfort", Title: "Hajj 2027 Confort", TravelType: entities.TravelTypeHajj, Category: entities.CategoryComfort, DepartureDate: hajj},
		{ID: "hajj-2027-premium", Title: "Hajj 2027 Premium", TravelType: entities.TravelTypeHajj, Category: entities.CategoryPremium, DepartureDate: hajj},
		{ID: "omra-ramadan-2027-standard", Title: "Omra Ramadan 2027 Standard", TravelType: entities.TravelTypeOmra, Category: entities.CategoryStandard, DepartureDate: omraRamadan},
		{ID: "omra-ramadan-2027-comfort", Title: "Omra Ramadan 2027 Confort", TravelType: entities.TravelTypeOmra, Category: entities.CategoryComfort, DepartureDate: omraRamadan},
		{ID: "omra-ramadan-2027-premium", Title: "Omra Ramadan 2027 Premium", TravelType: entities.TravelTypeOmra, Category: entities.CategoryPremium, DepartureDate: omraRamadan},
		{ID: "omra-printemps-2027-standard", Title: "Omra Printemps 2027 Standard", TravelType: entities.TravelTypeOmra, Category: entities.CategoryStandard, DepartureDate: omraSpring},
		{ID: "omra-printemps-2027-comfort", Title: "Omra Printemps 2027 Confort", TravelType: entities.TravelTypeOmra, Category: entities.CategoryComfort, DepartureDate: omraSpring},
		{ID: "omra-printemps-2027-premium", Title: "Omra Printemps 2027 Premium", TravelType: entities.TravelTypeOmra, Category: entities.CategoryPremium, DepartureDate: omraSpring},
	}
	for i := range offerings {
		if offerings[i].TravelType == entities.TravelTypeHajj {
			offerings[i].BasePrice = pricing.HajjBasePrice
		} else {
			offerings[i].BasePrice = pricing.MustPriceForOffering(offerings[i].TravelType, offerings[i].Category)
		}
	}
	return offerings
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
