// Package pyramid enumerates the slippy-map tiles covering a bounding box
// over a zoom range.
package pyramid

import (
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/kdudkov/tilegen/pkg/geo"
	"github.com/kdudkov/tilegen/pkg/mercator"
)

// Strategy selects how a zoom level's tile grid is filtered.
type Strategy int

const (
	Sequential Strategy = iota
	Parallel
)

// ConfigError is returned by New for an invalid zoom range or bounds.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

type Config struct {
	MinZoom  int
	MaxZoom  int
	Bounds   []float64 // minLon, minLat, maxLon, maxLat; nil means the whole world
	Strategy Strategy
	Workers  int // parallel strategy pool size, defaults to the CPU count
}

type Generator struct {
	logger   *slog.Logger
	minZoom  int
	maxZoom  int
	bounds   mercator.Bounds
	strategy Strategy
	workers  int
}

// New validates the configuration and builds a generator. The first violated
// rule is reported.
func New(cfg Config) (*Generator, error) {
	if cfg.MinZoom > 20 {
		return nil, &ConfigError{Reason: "minZoom must be less than or equal to 20"}
	}

	if cfg.MinZoom < 1 {
		return nil, &ConfigError{Reason: "minZoom must be greater than or equal to 1"}
	}

	if cfg.MaxZoom < 1 {
		return nil, &ConfigError{Reason: "maxZoom must be greater than or equal to 1"}
	}

	if cfg.MaxZoom > 20 {
		return nil, &ConfigError{Reason: "maxZoom must be less than or equal to 20"}
	}

	if cfg.MinZoom > cfg.MaxZoom {
		return nil, &ConfigError{Reason: "minZoom must be less than or equal to maxZoom"}
	}

	bounds := mercator.World

	if cfg.Bounds != nil {
		b, err := mercator.ParseBounds(cfg.Bounds)

		if err != nil {
			return nil, &ConfigError{Reason: err.Error()}
		}

		bounds = b
	}

	workers := cfg.Workers

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &Generator{
		logger:   slog.Default().With("logger", "pyramid"),
		minZoom:  cfg.MinZoom,
		maxZoom:  cfg.MaxZoom,
		bounds:   bounds,
		strategy: cfg.Strategy,
		workers:  workers,
	}, nil
}

func (g *Generator) GetMinZoom() int {
	return g.minZoom
}

func (g *Generator) GetMaxZoom() int {
	return g.maxZoom
}

func (g *Generator) GetBounds() mercator.Bounds {
	return g.bounds
}

// Generate returns the surviving tiles for every zoom level in the range,
// keyed by zoom. Tiles keep the x-major, y-ascending enumeration order
// regardless of strategy. The whole world needs no filtering, every tile of
// the grid is kept.
func (g *Generator) Generate() map[int][]mercator.Tile {
	res := make(map[int][]mercator.Tile, g.maxZoom-g.minZoom+1)

	for z := g.minZoom; z <= g.maxZoom; z++ {
		tiles := ZoomTiles(z)

		if g.bounds.IsWorld() {
			res[z] = tiles
			continue
		}

		if g.strategy == Parallel {
			res[z] = g.filterParallel(tiles)
		} else {
			res[z] = g.filterSequential(tiles)
		}

		g.logger.Debug("zoom level done", "zoom", z, "tiles", len(res[z]))
	}

	return res
}

func (g *Generator) filterSequential(tiles []mercator.Tile) []mercator.Tile {
	res := make([]mercator.Tile, 0, len(tiles))

	for _, t := range tiles {
		if tileWithin(t, g.bounds) {
			res = append(res, t)
		}
	}

	return res
}

// filterParallel evaluates tiles on a worker pool. Workers write only their
// own slot of the keep buffer, so the compacted result keeps the enumeration
// order no matter how the workers are scheduled.
func (g *Generator) filterParallel(tiles []mercator.Tile) []mercator.Tile {
	keep := make([]bool, len(tiles))
	jobs := make(chan int, g.workers*2)

	var wg sync.WaitGroup

	for w := 0; w < g.workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range jobs {
				keep[i] = tileWithin(tiles[i], g.bounds)
			}
		}()
	}

	for i := range tiles {
		jobs <- i
	}

	close(jobs)
	wg.Wait()

	res := make([]mercator.Tile, 0, len(tiles))

	for i, ok := range keep {
		if ok {
			res = append(res, tiles[i])
		}
	}

	return res
}

// tileWithin reports whether the tile footprint overlaps bounds. Touching at
// an edge counts.
func tileWithin(t mercator.Tile, bounds mercator.Bounds) bool {
	tb, err := t.Bounds()

	if err != nil {
		// ZoomTiles only produces valid indices
		panic(err)
	}

	return geo.BoundsIntersect(tb, bounds)
}

// ParseBoundsArg parses a "minLon,minLat,maxLon,maxLat" flag value.
func ParseBoundsArg(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	res := make([]float64, 0, len(parts))

	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)

		if err != nil {
			return nil, err
		}

		res = append(res, v)
	}

	return res, nil
}
