package termui

import (
	"classicsnake/internal/game"

	"github.com/gdamore/tcell/v2"
)

type action int

const (
	actNone action = iota
	actCommand
	actQuit
)

// translate maps a key press to a game command or a quit request.
func translate(key tcell.Key, r rune) (action, game.Command) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit, game.CmdNone
	case tcell.KeyEnter:
		return actCommand, game.CmdRestart
	case tcell.KeyUp:
		return actCommand, game.CmdMoveUp
	case tcell.KeyDown:
		return actCommand, game.CmdMoveDown
	case tcell.KeyLeft:
		return actCommand, game.CmdMoveLeft
	case tcell.KeyRight:
		return actCommand, game.CmdMoveRight
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return actQuit, game.CmdNone
		case '+', '=':
			return actCommand, game.CmdSpeedUp
		case '-', '_':
			return actCommand, game.CmdSpeedDown
		case 'p', 'P':
			return actCommand, game.CmdTogglePause
		}
	}
	return actNone, game.CmdNone
}
