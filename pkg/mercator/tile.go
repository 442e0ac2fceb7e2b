package mercator

import "errors"

var ErrInvalidTile = errors.New("invalid tile")

// Tile is one slippy-map tile, origin at the top-left of the world.
type Tile struct {
	Z int
	X int
	Y int
}

// Valid reports whether x and y are inside the 2^z grid. A negative zoom
// has no grid at all.
func (t Tile) Valid() bool {
	if t.Z < 0 {
		return false
	}

	size := 1 << t.Z

	return t.X >= 0 && t.X < size && t.Y >= 0 && t.Y < size
}

// MeterBounds returns the min and max corners of the tile in projected
// meters. Tile row y grows downward while projected y grows upward, so the
// min corner comes from the bottom pixel row.
func (t Tile) MeterBounds() (Point, Point, error) {
	if !t.Valid() {
		return Point{}, Point{}, ErrInvalidTile
	}

	mins := PixelsToMeters(t.Z, float64(t.X)*TileSize, float64(t.Y+1)*TileSize)
	maxs := PixelsToMeters(t.Z, float64(t.X+1)*TileSize, float64(t.Y)*TileSize)

	return mins, maxs, nil
}

// Bounds returns the geographic bounding box of the tile.
func (t Tile) Bounds() (Bounds, error) {
	mins, maxs, err := t.MeterBounds()

	if err != nil {
		return Bounds{}, err
	}

	minLon, minLat := MetersToLonLat(mins)
	maxLon, maxLat := MetersToLonLat(maxs)

	return Bounds{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}, nil
}
