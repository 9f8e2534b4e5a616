package snake

import (
	"math/rand"
	"testing"
)

func TestBodyMoveAndShrink(t *testing.T) {
	b := NewBody(Point{5, 5})
	b.Move(Point{6, 5})
	b.Shrink()

	if b.Len() != 1 || b.Head() != (Point{6, 5}) {
		t.Fatalf("after move: %v", b.Segments())
	}
	if b.Occupies(Point{5, 5}) {
		t.Error("old tail should be vacated")
	}
}

func TestBodyGrowKeepsTail(t *testing.T) {
	b := NewBody(Point{5, 5})
	b.Move(Point{6, 5})
	b.Grow()
	b.Shrink()

	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
	if b.Tail() != (Point{5, 5}) {
		t.Errorf("Tail = %v, want (5,5)", b.Tail())
	}

	// Growth applies once.
	b.Move(Point{7, 5})
	b.Shrink()
	if b.Len() != 2 {
		t.Errorf("Len = %d after plain move, want 2", b.Len())
	}
}

func TestBodyShrinkNeverEmpties(t *testing.T) {
	b := NewBody(Point{1, 1})
	b.Shrink()
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestBodySegmentsIsCopy(t *testing.T) {
	b := NewBody(Point{1, 1})
	segs := b.Segments()
	segs[0] = Point{9, 9}
	if b.Head() != (Point{1, 1}) {
		t.Error("Segments must not alias the body")
	}
}

func TestSelfCollisionCountsTailCell(t *testing.T) {
	b := NewBody(Point{0, 0})
	b.segments = []Point{{1, 0}, {1, 1}, {0, 1}, {0, 0}}
	b.cells = map[Point]int{{1, 0}: 1, {1, 1}: 1, {0, 1}: 1, {0, 0}: 1}

	// (0,0) is the tail and would be vacated this tick, but still collides.
	if !SelfCollision(b, Point{0, 0}) {
		t.Error("moving into the tail should collide")
	}
	if SelfCollision(b, Point{2, 0}) {
		t.Error("free cell should not collide")
	}
}

func TestFoodSpawnAvoidsSnake(t *testing.T) {
	grid := NewGrid(4)
	b := NewBody(Point{0, 0})
	b.segments = []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}, {2, 1}, {1, 1}, {0, 1}, {0, 2}}
	b.cells = make(map[Point]int)
	for _, p := range b.segments {
		b.cells[p] = 1
	}

	s := NewFoodSpawner(rand.New(rand.NewSource(7)), 0.5)
	for range 200 {
		p, ok := s.Spawn(b, grid)
		if !ok {
			t.Fatal("board is not full")
		}
		if b.Occupies(p) || !grid.Contains(p) {
			t.Fatalf("spawned on %v", p)
		}
	}
}

func TestFoodSpawnFullBoard(t *testing.T) {
	grid := NewGrid(2)
	b := NewBody(Point{0, 0})
	b.segments = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	b.cells = map[Point]int{{0, 0}: 1, {1, 0}: 1, {1, 1}: 1, {0, 1}: 1}

	s := NewFoodSpawner(rand.New(rand.NewSource(1)), 0.5)
	if _, ok := s.Spawn(b, grid); ok {
		t.Error("Spawn on a full board should fail")
	}
}

func TestFoodSpawnSamplingCoversFreeCells(t *testing.T) {
	grid := NewGrid(3)
	b := NewBody(Point{1, 1})
	s := NewFoodSpawner(rand.New(rand.NewSource(3)), 0.5)

	seen := make(map[Point]bool)
	for range 500 {
		p, _ := s.Spawn(b, grid)
		seen[p] = true
	}
	if len(seen) != 8 {
		t.Errorf("saw %d distinct cells, want 8", len(seen))
	}
}
