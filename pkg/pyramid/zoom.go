package pyramid

import "github.com/kdudkov/tilegen/pkg/mercator"

// ZoomTiles returns the full 2^z x 2^z grid for a zoom level in x-major,
// y-ascending order. Downstream filtering must preserve this order.
func ZoomTiles(z int) []mercator.Tile {
	size := 1 << z
	tiles := make([]mercator.Tile, 0, size*size)

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			tiles = append(tiles, mercator.Tile{Z: z, X: x, Y: y})
		}
	}

	return tiles
}
