package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kdudkov/tilegen/pkg/geo"
	"github.com/kdudkov/tilegen/pkg/mercator"
)

func box(minLon, minLat, maxLon, maxLat float64) mercator.Bounds {
	return mercator.Bounds{MinLon: minLon, MinLat: minLat, MaxLon: maxLon, MaxLat: maxLat}
}

func TestBoundsIntersect(t *testing.T) {
	data := []struct {
		name string
		a, b mercator.Bounds
		want bool
	}{
		{"overlap", box(0, 0, 10, 10), box(5, 5, 15, 15), true},
		{"contained", box(-20, -20, 20, 20), box(-1, -1, 1, 1), true},
		{"disjoint", box(0, 0, 10, 10), box(20, 20, 30, 30), false},
		{"disjoint_lon_only", box(0, 0, 10, 10), box(20, 0, 30, 10), false},
		{"edge_touch", box(0, 0, 10, 10), box(10, 0, 20, 10), true},
		{"corner_touch", box(0, 0, 10, 10), box(10, 10, 20, 20), true},
		{"point_inside", box(-10, -10, 10, 10), box(0, 0, 0, 0), true},
		{"point_on_edge", box(0, -10, 10, 10), box(0, 0, 0, 0), true},
		{"point_outside", box(1, 1, 10, 10), box(0, 0, 0, 0), false},
		{"world", mercator.World, box(35, 54, 40, 57), true},
		{"world_center", mercator.World, box(-5, -5, 5, 5), true},
		{"wide_lon_overlap", box(-170, -20, 170, 20), box(-5, -5, 5, 5), true},
		{"wide_lon_lat_disjoint", box(-170, -20, 170, 20), box(-5, 30, 5, 40), false},
		{"wide_both", box(-170, -80, 170, 80), box(-150, -70, 150, 70), true},
	}

	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			assert.Equal(t, d.want, geo.BoundsIntersect(d.a, d.b))
			assert.Equal(t, d.want, geo.BoundsIntersect(d.b, d.a))
		})
	}
}

func TestBoxPolygon(t *testing.T) {
	p := geo.BoxPolygon(box(-10, -20, 30, 40))
	r := p.LinearRing(0)

	assert.Equal(t, 5, r.NumCoords())
	assert.Equal(t, r.Coord(0), r.Coord(4))
	assert.Equal(t, -10.0, r.Coord(0).X())
	assert.Equal(t, -20.0, r.Coord(0).Y())
	assert.Equal(t, 30.0, r.Coord(2).X())
	assert.Equal(t, 40.0, r.Coord(2).Y())
}
