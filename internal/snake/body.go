package snake

// Body is the ordered list of snake segments, head first.
// Segments are unique; the game ends before a duplicate could be committed.
type Body struct {
	segments []Point
	cells    map[Point]int
	growing  bool
}

// NewBody creates a single-segment snake at start.
func NewBody(start Point) *Body {
	b := &Body{}
	b.Reset(start)
	return b
}

// Reset collapses the snake to a single segment at start.
func (b *Body) Reset(start Point) {
	b.segments = []Point{start}
	b.cells = map[Point]int{start: 1}
	b.growing = false
}

// Head returns the first segment.
func (b *Body) Head() Point {
	return b.segments[0]
}

// Tail returns the last segment.
func (b *Body) Tail() Point {
	return b.segments[len(b.segments)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segments)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []Point {
	out := make([]Point, len(b.segments))
	copy(out, b.segments)
	return out
}

// Occupies reports whether any segment is at p, tail included.
func (b *Body) Occupies(p Point) bool {
	return b.cells[p] > 0
}

// Next returns where the head would go one step in direction d.
func (b *Body) Next(grid Grid, d Direction) Point {
	return grid.Step(b.Head(), d)
}

// Move prepends a new head. The tail is untouched until Shrink.
func (b *Body) Move(head Point) {
	b.segments = append(b.segments, Point{})
	copy(b.segments[1:], b.segments)
	b.segments[0] = head
	b.cells[head]++
}

// Grow keeps the tail on the next Shrink, so the snake ends the tick one
// segment longer.
func (b *Body) Grow() {
	b.growing = true
}

// Shrink removes the tail, unless Grow was called since the last Shrink.
// A single-segment snake is never emptied.
func (b *Body) Shrink() {
	if b.growing {
		b.growing = false
		return
	}
	if len(b.segments) <= 1 {
		return
	}

	tail := b.segments[len(b.segments)-1]
	b.segments = b.segments[:len(b.segments)-1]
	if b.cells[tail]--; b.cells[tail] <= 0 {
		delete(b.cells, tail)
	}
}
