package game

import "fmt"

// StatusLine is the score/speed line drawn at the top of the field.
func (s *State) StatusLine() string {
	return fmt.Sprintf("Score: %d    Speed: %d    Pause: press P", s.score, s.speed)
}

// Overlay returns the centred message lines for the current phase, if any.
func (s *State) Overlay() []string {
	var lines []string
	if !s.started {
		lines = append(lines, "Press enter to start...")
	}
	if s.ended {
		lines = append(lines, "Game Over!", "Press enter to try again")
	}
	if s.paused {
		lines = append(lines, "Game Paused")
	}
	if s.boardFull && !s.ended {
		lines = append(lines, "Board full!")
	}
	return lines
}
