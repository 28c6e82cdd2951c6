package snake

import (
	"errors"
	"fmt"

	"classicsnake/internal/board"
)

// InitialGrowth is how many segments Reset adds behind the head.
const InitialGrowth = 3

var ErrOutOfRange = errors.New("segment index out of range")

// Snake is an ordered body, head first, moving one unit per step.
type Snake struct {
	segments []board.Segment
	unit     int

	Heading Direction
}

func New(unit int) *Snake {
	return &Snake{unit: unit}
}

func (s *Snake) Unit() int { return s.unit }

func (s *Snake) Len() int { return len(s.segments) }

// Reset clears the body and rebuilds it at start with length 1+InitialGrowth.
// Heading is left untouched.
func (s *Snake) Reset(x, y int) {
	s.segments = s.segments[:0]
	s.segments = append(s.segments, board.NewSegment(x, y, s.unit))
	s.Grow(InitialGrowth)
}

// Grow appends n copies of the current tail. The duplicates fan out on later moves.
func (s *Snake) Grow(n int) {
	if len(s.segments) == 0 {
		return
	}
	for ; n > 0; n-- {
		s.segments = append(s.segments, s.segments[len(s.segments)-1])
	}
}

// Move shifts the body one step: each segment takes its predecessor's place,
// then the head advances along Heading. DirNone leaves the head in place.
func (s *Snake) Move() {
	// tail first, so no position is overwritten before it is read
	for i := len(s.segments) - 1; i >= 1; i-- {
		s.segments[i] = s.segments[i-1]
	}
	if len(s.segments) == 0 {
		return
	}
	dx, dy := s.Heading.Delta()
	s.segments[0] = s.segments[0].Offset(dx, dy)
}

// HeadSector returns the head, or false when the body is empty.
func (s *Snake) HeadSector() (board.Segment, bool) {
	if len(s.segments) == 0 {
		return board.Segment{}, false
	}
	return s.segments[0], true
}

func (s *Snake) SectorAt(i int) (board.Segment, error) {
	if i < 0 || i >= len(s.segments) {
		return board.Segment{}, fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, i, len(s.segments))
	}
	return s.segments[i], nil
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []board.Segment {
	out := make([]board.Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c board.Segment) bool {
	for _, seg := range s.segments {
		if seg.SamePos(c) {
			return true
		}
	}
	return false
}

// BitesItself reports whether the head shares a cell with any later segment.
func (s *Snake) BitesItself() bool {
	if len(s.segments) < 2 {
		return false
	}
	head := s.segments[0]
	for _, seg := range s.segments[1:] {
		if head.SamePos(seg) {
			return true
		}
	}
	return false
}
