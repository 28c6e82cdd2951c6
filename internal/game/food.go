package game

import "classicsnake/internal/board"

// foodAttemptsPerCell bounds the random draws before falling back to a scan.
const foodAttemptsPerCell = 4

// placeFood moves the food to a random cell the snake does not cover.
// Random draws are tried first; a full scan settles crowded boards, and a board
// with no free cell leaves the food where it is and sets boardFull.
func (s *State) placeFood() {
	s.boardFull = false
	attempts := foodAttemptsPerCell * s.grid.Len()
	for i := 0; i < attempts; i++ {
		c := s.grid.Random(s.rng)
		if !s.snake.Occupies(c) {
			s.food = c
			return
		}
	}
	if c, ok := s.firstFreeCell(); ok {
		s.food = c
		return
	}
	s.boardFull = true
}

func (s *State) firstFreeCell() (board.Segment, bool) {
	for i := 0; i < s.grid.Len(); i++ {
		c := s.grid.At(i)
		if !s.snake.Occupies(c) {
			return c, true
		}
	}
	return board.Segment{}, false
}
