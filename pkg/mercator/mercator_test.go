package mercator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdudkov/tilegen/pkg/mercator"
)

const delta = 1e-6

func TestPixelsToMeters(t *testing.T) {
	// top-left pixel of the world maps to min x, max y
	p := mercator.PixelsToMeters(0, 0, 0)
	assert.InDelta(t, -mercator.OriginShift, p.X, delta)
	assert.InDelta(t, mercator.OriginShift, p.Y, delta)

	// bottom-right pixel of the zoom 0 tile
	p = mercator.PixelsToMeters(0, 256, 256)
	assert.InDelta(t, mercator.OriginShift, p.X, delta)
	assert.InDelta(t, -mercator.OriginShift, p.Y, delta)

	// center of the world at zoom 1
	p = mercator.PixelsToMeters(1, 256, 256)
	assert.InDelta(t, 0, p.X, delta)
	assert.InDelta(t, 0, p.Y, delta)
}

func TestMetersToLonLat(t *testing.T) {
	lon, lat := mercator.MetersToLonLat(mercator.Point{X: 0, Y: 0})
	assert.InDelta(t, 0, lon, delta)
	assert.InDelta(t, 0, lat, delta)

	lon, lat = mercator.MetersToLonLat(mercator.Point{X: mercator.OriginShift, Y: 0})
	assert.InDelta(t, 180, lon, delta)
	assert.InDelta(t, 0, lat, delta)

	// projection latitude limit
	_, lat = mercator.MetersToLonLat(mercator.Point{X: 0, Y: mercator.OriginShift})
	assert.InDelta(t, 85.05112878, lat, 1e-6)
}

func TestTileValid(t *testing.T) {
	assert.True(t, mercator.Tile{Z: 0, X: 0, Y: 0}.Valid())
	assert.True(t, mercator.Tile{Z: 2, X: 3, Y: 3}.Valid())
	assert.False(t, mercator.Tile{Z: 2, X: 4, Y: 0}.Valid())
	assert.False(t, mercator.Tile{Z: 2, X: 0, Y: 4}.Valid())
	assert.False(t, mercator.Tile{Z: 2, X: -1, Y: 0}.Valid())
	assert.False(t, mercator.Tile{Z: 2, X: 0, Y: -1}.Valid())
	assert.False(t, mercator.Tile{Z: -1, X: 0, Y: 0}.Valid())
}

func TestTileBounds(t *testing.T) {
	// north-west quadrant at zoom 1
	b, err := mercator.Tile{Z: 1, X: 0, Y: 0}.Bounds()
	require.NoError(t, err)

	assert.InDelta(t, -180, b.MinLon, delta)
	assert.InDelta(t, 0, b.MinLat, delta)
	assert.InDelta(t, 0, b.MaxLon, delta)
	assert.InDelta(t, 85.05112878, b.MaxLat, 1e-6)

	// south-east quadrant at zoom 1
	b, err = mercator.Tile{Z: 1, X: 1, Y: 1}.Bounds()
	require.NoError(t, err)

	assert.InDelta(t, 0, b.MinLon, delta)
	assert.InDelta(t, -85.05112878, b.MinLat, 1e-6)
	assert.InDelta(t, 180, b.MaxLon, delta)
	assert.InDelta(t, 0, b.MaxLat, delta)
}

func TestTileBoundsOrdered(t *testing.T) {
	for _, tile := range []mercator.Tile{
		{Z: 1, X: 0, Y: 1},
		{Z: 3, X: 7, Y: 0},
		{Z: 5, X: 12, Y: 20},
		{Z: 10, X: 618, Y: 335},
	} {
		b, err := tile.Bounds()
		require.NoError(t, err)

		assert.Less(t, b.MinLon, b.MaxLon, "tile %v", tile)
		assert.Less(t, b.MinLat, b.MaxLat, "tile %v", tile)
	}
}

func TestTileBoundsInvalid(t *testing.T) {
	_, _, err := mercator.Tile{Z: 2, X: 4, Y: 0}.MeterBounds()
	assert.ErrorIs(t, err, mercator.ErrInvalidTile)

	_, err = mercator.Tile{Z: 3, X: 0, Y: -1}.Bounds()
	assert.ErrorIs(t, err, mercator.ErrInvalidTile)

	_, err = mercator.Tile{Z: -1, X: 0, Y: 0}.Bounds()
	assert.ErrorIs(t, err, mercator.ErrInvalidTile)
}

func TestParseBounds(t *testing.T) {
	b, err := mercator.ParseBounds([]float64{-180, -90, 180, 90})
	require.NoError(t, err)
	assert.True(t, b.IsWorld())

	b, err = mercator.ParseBounds([]float64{-10, -10, 10, 10})
	require.NoError(t, err)
	assert.False(t, b.IsWorld())
	assert.Equal(t, mercator.Bounds{MinLon: -10, MinLat: -10, MaxLon: 10, MaxLat: 10}, b)

	for _, bad := range [][]float64{
		{-180, -90, 180},
		{-180, -90, 180, 90, 0},
		{-181, -90, 180, 90},
		{-180, -91, 180, 90},
		{-180, -90, 181, 90},
		{-180, -90, 180, 91},
		{10, -90, -10, 90},
		{-180, 50, 180, -50},
	} {
		_, err := mercator.ParseBounds(bad)
		assert.Error(t, err, "bounds %v", bad)
	}
}
