package services_test

import (
	"testing"

	"shipmate/internal/core/domain/model/kernel"
	"shipmate/internal/core/domain/model/order"
	"shipmate/internal/core/domain/services"
	"shipmate/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return loc
}

func newCalculator(t *testing.T) services.PriceCalculator {
	t.Helper()
	calc, err := services.NewPriceCalculator(services.DefaultTariff())
	require.NoError(t, err)
	return calc
}

func TestPriceCalculator_Quote(t *testing.T) {
	calc := newCalculator(t)
	mumbai := mustLocation(t, 19.0760, 72.8777)
	delhi := mustLocation(t, 28.7041, 77.1025)
	thane := mustLocation(t, 19.2183, 72.9781)

	tests := []struct {
		name     string
		src, dst kernel.Location
		weight   float64
		itemType order.ItemType
		want     int64
	}{
		{"mumbai delhi documents", mumbai, delhi, 5, order.Documents, 324},
		{"mumbai delhi food applies multiplier then surcharge", mumbai, delhi, 5, order.Food, 506},
		{"mumbai delhi clothes", mumbai, delhi, 0.5, order.Clothes, 289},
		{"short trip is raised to the minimum", mumbai, thane, 1, order.Documents, 199},
		{"heavy other", mumbai, delhi, 25, order.Other, 724},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := calc.Quote(tt.src, tt.dst, tt.weight, tt.itemType)

			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.Price)
		})
	}

	t.Run("returns the distance", func(t *testing.T) {
		quote, err := calc.Quote(mumbai, delhi, 5, order.Documents)

		require.NoError(t, err)
		assert.InDelta(t, 1153.24, quote.DistanceKm, 0.001)
	})
}

func TestPriceCalculator_QuoteErrors(t *testing.T) {
	calc := newCalculator(t)
	mumbai := mustLocation(t, 19.0760, 72.8777)

	_, err := calc.Quote(mumbai, mumbai, 0, order.Documents)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "weight_kg")

	_, err = calc.Quote(mumbai, mumbai, 1, order.ItemType("fragile"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = calc.Quote(mumbai, kernel.Location{}, 1, order.Documents)
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestPriceCalculator_IsSymmetric(t *testing.T) {
	calc := newCalculator(t)
	points := []kernel.Location{
		mustLocation(t, 19.0760, 72.8777),
		mustLocation(t, 28.7041, 77.1025),
		mustLocation(t, 12.9716, 77.5946),
		mustLocation(t, -33.8688, 151.2093),
		mustLocation(t, 51.5074, -0.1278),
		mustLocation(t, 0, 179.9),
		mustLocation(t, 0, -179.9),
	}

	for _, a := range points {
		for _, b := range points {
			for _, itemType := range order.ItemTypes() {
				ab, err := calc.Quote(a, b, 3, itemType)
				require.NoError(t, err)
				ba, err := calc.Quote(b, a, 3, itemType)
				require.NoError(t, err)

				assert.Equal(t, ab, ba, "%s -> %s (%s)", a, b, itemType)
			}
		}
	}
}

func TestPriceCalculator_IsMonotonicInWeight(t *testing.T) {
	calc := newCalculator(t)
	src := mustLocation(t, 19.0760, 72.8777)
	destinations := []kernel.Location{
		mustLocation(t, 19.2183, 72.9781),
		mustLocation(t, 18.5204, 73.8567),
		mustLocation(t, 28.7041, 77.1025),
	}

	for _, dst := range destinations {
		for _, itemType := range order.ItemTypes() {
			prev := int64(0)
			for w := 0.25; w <= 30; w += 0.25 {
				quote, err := calc.Quote(src, dst, w, itemType)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, quote.Price, prev, "weight %v, %s", w, itemType)
				prev = quote.Price
			}
		}
	}
}

func TestPriceCalculator_QuoteRoute(t *testing.T) {
	calc := newCalculator(t)
	route, err := order.NewRoute("Mumbai", "Delhi", mustLocation(t, 19.0760, 72.8777), mustLocation(t, 28.7041, 77.1025))
	require.NoError(t, err)
	parcel, err := order.NewParcel(5, order.Documents)
	require.NoError(t, err)

	quote, err := calc.QuoteRoute(route, parcel)

	require.NoError(t, err)
	assert.Equal(t, int64(324), quote.Price)

	_, err = calc.QuoteRoute(order.Route{}, parcel)
	require.ErrorIs(t, err, order.ErrRouteIsNotConstructed)
}

func TestPriceCalculator_ClampsToMaximum(t *testing.T) {
	tariff := services.DefaultTariff()
	tariff.MaxPrice = 300
	calc, err := services.NewPriceCalculator(tariff)
	require.NoError(t, err)

	quote, err := calc.Quote(mustLocation(t, 19.0760, 72.8777), mustLocation(t, 28.7041, 77.1025), 12, order.Food)

	require.NoError(t, err)
	assert.Equal(t, int64(300), quote.Price)
}
