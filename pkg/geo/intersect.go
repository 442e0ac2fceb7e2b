// Package geo holds the polygon overlap test used to filter tiles.
package geo

import (
	"github.com/twpayne/go-geom"

	"github.com/kdudkov/tilegen/pkg/mercator"
)

// BoxPolygon builds a closed rectangular ring for a bounding box. The first
// and last vertex are identical, geojson style.
func BoxPolygon(b mercator.Bounds) *geom.Polygon {
	ring := []geom.Coord{
		{b.MinLon, b.MinLat},
		{b.MaxLon, b.MinLat},
		{b.MaxLon, b.MaxLat},
		{b.MinLon, b.MaxLat},
		{b.MinLon, b.MinLat},
	}

	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring})
}

// Intersects reports whether two axis-aligned rectangular polygons overlap.
// The rings live in planar lon/lat space, so the coordinate extents decide
// overlap on both axes. A lon/lat box can span more than 180 degrees of
// longitude, which rules out any great-circle interval representation. The
// test is boundary-inclusive: rings that only touch at an edge or corner
// count as intersecting, and a degenerate point ring intersects anything
// that contains it.
func Intersects(a, b *geom.Polygon) bool {
	ab := a.Bounds()
	bb := b.Bounds()

	return ab.Min(0) <= bb.Max(0) && bb.Min(0) <= ab.Max(0) &&
		ab.Min(1) <= bb.Max(1) && bb.Min(1) <= ab.Max(1)
}

// BoundsIntersect wraps both boxes as polygons and tests overlap.
func BoundsIntersect(a, b mercator.Bounds) bool {
	return Intersects(BoxPolygon(a), BoxPolygon(b))
}
