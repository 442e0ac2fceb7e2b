package mercator

import (
	"errors"
	"fmt"
)

// Bounds is a geographic bounding box in degrees.
type Bounds struct {
	MinLon float64 `yaml:"minLon" json:"min_lon"`
	MinLat float64 `yaml:"minLat" json:"min_lat"`
	MaxLon float64 `yaml:"maxLon" json:"max_lon"`
	MaxLat float64 `yaml:"maxLat" json:"max_lat"`
}

// World is the full geographic extent.
var World = Bounds{MinLon: -180, MinLat: -90, MaxLon: 180, MaxLat: 90}

func (b Bounds) IsWorld() bool {
	return b == World
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g %g %g %g]", b.MinLon, b.MinLat, b.MaxLon, b.MaxLat)
}

// ParseBounds validates a minLon, minLat, maxLon, maxLat quadruple.
func ParseBounds(v []float64) (Bounds, error) {
	if len(v) != 4 {
		return Bounds{}, errors.New("incorrect length for bounds, ex. [-180 -90 180 90]")
	}

	if v[0] < -180 {
		return Bounds{}, errors.New("minimum x bounds must be greater than or equal to -180")
	}

	if v[1] < -90 {
		return Bounds{}, errors.New("minimum y bounds must be greater than or equal to -90")
	}

	if v[2] > 180 {
		return Bounds{}, errors.New("maximum x bounds must be less than or equal to 180")
	}

	if v[3] > 90 {
		return Bounds{}, errors.New("maximum y bounds must be less than or equal to 90")
	}

	if v[0] > v[2] {
		return Bounds{}, errors.New("minimum x bounds must be less than maximum x bounds")
	}

	if v[1] > v[3] {
		return Bounds{}, errors.New("minimum y bounds must be less than maximum y bounds")
	}

	return Bounds{MinLon: v[0], MinLat: v[1], MaxLon: v[2], MaxLat: v[3]}, nil
}
