package catalog

import (
	"errors"
	"testing"
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	all := c.List("")
	require.Len(t, all, 9)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].DepartureDate.Before(all[i-1].DepartureDate), "list must be sorted by departure")
	}

	hajj := c.List(entities.TravelTypeHajj)
	require.Len(t, hajj, 3)
	for _, o := range hajj {
		assert.Equal(t, pricing.HajjBasePrice, o.BasePrice)
	}

	premium, err := c.Get("hajj-2027-premium")
	require.NoError(t, err)
	price, err := pricing.PriceForOffering(premium.TravelType, premium.Category)
	require.NoError(t, err)
	assert.Equal(t, 9750.0, price)

	omra, err := c.Get("omra-ramadan-2027-comfort")
	require.NoError(t, err)
	price, err = pricing.PriceForOffering(omra.TravelType, omra.Category)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, price)
	assert.Equal(t, 2000.0, omra.BasePrice)
}

func TestGet_NotFound(t *testing.T) {
	_, err := Default().Get("nope")
	assert.True(t, errors.Is(err, ErrOfferingNotFound))
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	d := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := New([]entities.Offering{{ID: "x", TravelType: "cruise", Category: entities.CategoryStandard, DepartureDate: d}})
	assert.True(t, errors.Is(err, pricing.ErrUnknownTravelType))

	_, err = New([]entities.Offering{{ID: "x", TravelType: entities.TravelTypeOmra, Category: "gold", DepartureDate: d}})
	assert.True(t, errors.Is(err, pricing.ErrUnknownCategory))

	_, err = New([]entities.Offering{
		{ID: "x", TravelType: entities.TravelTypeOmra, Category: entities.CategoryStandard},
		{ID: "x", TravelType: entities.TravelTypeOmra, Category: entities.CategoryComfort},
	})
	assert.Error(t, err)

	_, err = New([]entities.Offering{{TravelType: entities.TravelTypeOmra}})
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew([]entities.Offering{{ID: "x", TravelType: "cruise"}}) })
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "10 mai 2027", LongDate(time.Date(2027, time.May, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 août 2026", LongDate(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", LongDate(time.Time{}))
}
