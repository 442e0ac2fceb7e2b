// Package mercator implements the spherical Web Mercator (EPSG:3857) math
// for the standard 256px slippy-map tiling scheme.
package mercator

import "math"

const (
	// EarthRadius is the spherical Web Mercator earth radius in meters.
	EarthRadius = 6378137.0
	// OriginShift is half the projected world extent.
	OriginShift = math.Pi * EarthRadius
	// TileSize is the tile dimension in pixels.
	TileSize = 256
)

// Point is a position in projected meters.
type Point struct {
	X float64
	Y float64
}

// Resolution returns meters per pixel at the given zoom level.
func Resolution(zoom int) float64 {
	return (2 * OriginShift / TileSize) / float64(int(1)<<zoom)
}

// PixelsToMeters converts pixel coordinates at a zoom level to projected
// meters. Pixel origin is top-left, meter origin is the projection center.
func PixelsToMeters(zoom int, px, py float64) Point {
	res := Resolution(zoom)

	return Point{
		X: px*res - OriginShift,
		Y: -(py*res - OriginShift),
	}
}

// MetersToLonLat converts projected meters to geographic degrees.
func MetersToLonLat(p Point) (float64, float64) {
	lon := p.X / OriginShift * 180

	lat := p.Y / OriginShift * 180
	lat = 180 / math.Pi * (2*math.Atan(math.Exp(lat*math.Pi/180)) - math.Pi/2)

	return lon, lat
}
