package geo_test

import (
	"testing"

	"github.com/nearstore/find-store/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnit(t *testing.T) {
	t.Run("miles", func(t *testing.T) {
		unit, err := geo.ParseUnit("mi")

		require.NoError(t, err)
		assert.Equal(t, geo.Miles, unit)
	})

	t.Run("kilometers", func(t *testing.T) {
		unit, err := geo.ParseUnit("km")

		require.NoError(t, err)
		assert.Equal(t, geo.Kilometers, unit)
	})

	t.Run("unknown value", func(t *testing.T) {
		_, err := geo.ParseUnit("leagues")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be 'mi' or 'km'")
	})
}

func TestFromMiles(t *testing.T) {
	t.Run("miles pass through unchanged", func(t *testing.T) {
		assert.InEpsilon(t, 1.9614025, geo.FromMiles(1.9614025, geo.Miles), 1e-12)
	})

	t.Run("kilometers scale proportionally", func(t *testing.T) {
		assert.InEpsilon(t, 1.609344, geo.FromMiles(1, geo.Kilometers), 1e-12)
		assert.InEpsilon(t, 3.1565713, geo.FromMiles(1.9614025, geo.Kilometers), 1e-6)
	})
}
