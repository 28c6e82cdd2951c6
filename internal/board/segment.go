package board

// Segment is one grid-aligned square cell, used for both snake body parts and food.
type Segment struct {
	X, Y int
	Size int
}

// NewSegment returns a cell at (x, y) with the given side length.
func NewSegment(x, y, size int) Segment {
	return Segment{X: x, Y: y, Size: size}
}

// SamePos reports whether both cells sit at the same position. Size is ignored.
func (s Segment) SamePos(o Segment) bool {
	return s.X == o.X && s.Y == o.Y
}

// Offset returns a copy moved by (dx, dy) cells of its own size.
func (s Segment) Offset(dx, dy int) Segment {
	s.X += dx * s.Size
	s.Y += dy * s.Size
	return s
}
