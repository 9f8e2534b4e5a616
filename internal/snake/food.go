package snake

import "math/rand"

// Occupancy is the set of cells food must avoid.
type Occupancy interface {
	Occupies(p Point) bool
	Len() int
}

// FoodSpawner places food on a random free cell.
type FoodSpawner struct {
	rng           *rand.Rand
	scanThreshold float64
}

// NewFoodSpawner creates a spawner. While the occupied fraction of the board
// is below scanThreshold it samples random cells; at or above it, it picks
// from an explicit list of free cells.
func NewFoodSpawner(rng *rand.Rand, scanThreshold float64) *FoodSpawner {
	return &FoodSpawner{rng: rng, scanThreshold: scanThreshold}
}

// Spawn returns a uniformly random unoccupied cell. It returns false when
// the board is full.
func (s *FoodSpawner) Spawn(occupied Occupancy, grid Grid) (Point, bool) {
	cells := grid.Cells()
	taken := occupied.Len()
	if taken >= cells {
		return Point{}, false
	}

	if float64(taken) < s.scanThreshold*float64(cells) {
		// Expected attempts stay below 1/(1-threshold); the budget only
		// guards against a pathological RNG.
		for range 4 * cells {
			p := Point{X: s.rng.Intn(grid.TileCount), Y: s.rng.Intn(grid.TileCount)}
			if !occupied.Occupies(p) {
				return p, true
			}
		}
	}

	return s.scan(occupied, grid)
}

func (s *FoodSpawner) scan(occupied Occupancy, grid Grid) (Point, bool) {
	free := make([]Point, 0, grid.Cells()-occupied.Len())
	for y := range grid.TileCount {
		for x := range grid.TileCount {
			p := Point{X: x, Y: y}
			if !occupied.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[s.rng.Intn(len(free))], true
}
