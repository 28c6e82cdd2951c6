package board

import "golang.org/x/exp/rand"

// Grid is the set of cell-aligned positions composing the play field.
type Grid struct {
	Width, Height int
	Unit          int
	cells         []Segment
}

// NewGrid enumerates every cell of a width x height field split into unit-sized squares.
func NewGrid(width, height, unit int) Grid {
	g := Grid{Width: width, Height: height, Unit: unit}
	if unit <= 0 {
		return g
	}
	for i := 0; i <= width-unit; i += unit {
		for j := 0; j <= height-unit; j += unit {
			g.cells = append(g.cells, NewSegment(i, j, unit))
		}
	}
	return g
}

func (g Grid) Len() int { return len(g.cells) }

// Cells returns a copy of all cells, column by column.
func (g Grid) Cells() []Segment {
	out := make([]Segment, len(g.cells))
	copy(out, g.cells)
	return out
}

// At returns the i-th cell in enumeration order.
func (g Grid) At(i int) Segment { return g.cells[i] }

// Random draws a cell uniformly. The grid must not be empty.
func (g Grid) Random(r *rand.Rand) Segment {
	return g.cells[r.Intn(len(g.cells))]
}

// Contains reports whether s lies on a cell of the grid.
func (g Grid) Contains(s Segment) bool {
	if g.Unit <= 0 || s.X < 0 || s.Y < 0 {
		return false
	}
	return s.X%g.Unit == 0 && s.Y%g.Unit == 0 &&
		s.X <= g.Width-g.Unit && s.Y <= g.Height-g.Unit
}
