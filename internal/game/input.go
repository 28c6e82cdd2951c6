package game

import "classicsnake/internal/snake"

type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdSpeedUp
	CmdSpeedDown
	CmdTogglePause
	CmdRestart
)

// HandleInput applies one player command. Restart is honoured in every state;
// the rest are ignored until the first game has been started.
func (s *State) HandleInput(cmd Command) {
	if cmd == CmdRestart {
		s.NewGame(false)
		return
	}
	if !s.started {
		return
	}
	switch cmd {
	case CmdMoveUp:
		s.SetDirection(snake.DirUp)
	case CmdMoveDown:
		s.SetDirection(snake.DirDown)
	case CmdMoveLeft:
		s.SetDirection(snake.DirLeft)
	case CmdMoveRight:
		s.SetDirection(snake.DirRight)
	case CmdSpeedUp:
		s.SpeedUp()
	case CmdSpeedDown:
		s.SpeedDown()
	case CmdTogglePause:
		s.TogglePause()
	}
}

// SetDirection queues a turn for a later tick. Nothing is queued while paused or ended.
//
// Repeated directions are queued as well: the duplicate is dropped by the
// compatibility check when its tick comes, costing that tick its turn slot.
func (s *State) SetDirection(d snake.Direction) {
	if s.paused || s.ended {
		return
	}
	s.pending = append(s.pending, d)
}

// TogglePause flips the pause flag unless the game has ended.
func (s *State) TogglePause() {
	if s.ended {
		return
	}
	s.paused = !s.paused
}

// PendingTurns returns a copy of the queued turns, oldest first.
func (s *State) PendingTurns() []snake.Direction {
	out := make([]snake.Direction, len(s.pending))
	copy(out, s.pending)
	return out
}

// compatibleTurn rejects keeping the current heading and reversing onto the neck.
// DirNone is never a valid turn.
func compatibleTurn(current, next snake.Direction) bool {
	if next == current || next == snake.DirNone {
		return false
	}
	return current == snake.DirNone || next != current.Opposite()
}
