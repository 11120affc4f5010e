package world

import (
	"math"

	"github.com/vovakirdan/zxrescue/internal/core"
)

// gridCoord maps a world coordinate to the nearest grid index.
// The generator's cellToWorld is its exact inverse on cell centers.
func gridCoord(v, size float64, n int) int {
	f := (v/size + 0.5) * float64(n-1)
	return core.Clamp(int(math.Round(f)), 0, n-1)
}

// CellIndex returns the grid cell nearest to (x, z), clamped to the grid.
func (w *World) CellIndex(x, z float64) int {
	return gridCoord(z, w.Size, w.N)*w.N + gridCoord(x, w.Size, w.N)
}

// CellToWorld returns the world position of a cell center.
func (w *World) CellToWorld(cell int) core.Vec2 {
	return cellToWorld(cell, w.N, w.Size)
}

func cellToWorld(cell, n int, size float64) core.Vec2 {
	cx := cell % n
	cz := cell / n
	return core.Vec2{
		X: (float64(cx)/float64(n-1) - 0.5) * size,
		Z: (float64(cz)/float64(n-1) - 0.5) * size,
	}
}

// CellSize is the world distance between neighboring cell centers.
func (w *World) CellSize() float64 {
	return w.Size / float64(w.N-1)
}

// cellHeight converts a raw height to world Y. The sea surface is Y=0.
func (w *World) cellHeight(cell int) float64 {
	return math.Max(0, (w.H[cell]-w.SeaLevel)*w.HeightScale)
}

// SampleGroundHeight returns the world Y of the ground at (x, z) using the
// nearest cell, without interpolation.
func (w *World) SampleGroundHeight(x, z float64) float64 {
	return w.cellHeight(w.CellIndex(x, z))
}

// IsLand reports whether (x, z) falls on a land cell.
func (w *World) IsLand(x, z float64) bool {
	return w.Mask[w.CellIndex(x, z)] == 1
}

// IslandAt returns the island index at (x, z), or -1 over sea.
func (w *World) IslandAt(x, z float64) int {
	return w.IslandOf[w.CellIndex(x, z)]
}
