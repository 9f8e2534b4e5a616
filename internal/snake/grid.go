package snake

// Point is a cell coordinate on the grid, 0 <= X, Y < TileCount.
type Point struct {
	X, Y int
}

// Add returns p moved by one step in direction d, without wrapping.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Grid is the square, wall-less play field. Leaving one edge re-enters from
// the opposite edge.
type Grid struct {
	TileCount int
}

// NewGrid creates a grid of tileCount x tileCount cells.
func NewGrid(tileCount int) Grid {
	return Grid{TileCount: tileCount}
}

// Wrap maps any integer into [0, size).
func Wrap(v, size int) int {
	if size <= 0 {
		return 0
	}
	return ((v % size) + size) % size
}

// Wrap maps p onto the torus.
func (g Grid) Wrap(p Point) Point {
	return Point{X: Wrap(p.X, g.TileCount), Y: Wrap(p.Y, g.TileCount)}
}

// Step returns the wrapped neighbour of p in direction d.
func (g Grid) Step(p Point, d Direction) Point {
	return g.Wrap(p.Add(d))
}

// Contains reports whether p lies on the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.TileCount && p.Y >= 0 && p.Y < g.TileCount
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.TileCount * g.TileCount
}

// CellSize returns the size of one tile on a canvas of canvasSize units.
// Only renderers use it; the simulation works in whole cells.
func CellSize(canvasSize, tileCount int) float64 {
	if tileCount <= 0 {
		return 0
	}
	return float64(canvasSize) / float64(tileCount)
}
