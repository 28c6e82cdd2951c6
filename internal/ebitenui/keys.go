package ebitenui

import (
	"classicsnake/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

var keyBindings = []struct {
	key ebiten.Key
	cmd game.Command
}{
	{ebiten.KeyEnter, game.CmdRestart},
	{ebiten.KeyNumpadEnter, game.CmdRestart},
	{ebiten.KeyArrowUp, game.CmdMoveUp},
	{ebiten.KeyArrowDown, game.CmdMoveDown},
	{ebiten.KeyArrowLeft, game.CmdMoveLeft},
	{ebiten.KeyArrowRight, game.CmdMoveRight},
	{ebiten.KeyEqual, game.CmdSpeedUp},
	{ebiten.KeyNumpadAdd, game.CmdSpeedUp},
	{ebiten.KeyMinus, game.CmdSpeedDown},
	{ebiten.KeyNumpadSubtract, game.CmdSpeedDown},
	{ebiten.KeyP, game.CmdTogglePause},
}

// commandsFor lists the commands whose keys were pressed this frame, in binding order.
func commandsFor(pressed func(ebiten.Key) bool) []game.Command {
	var cmds []game.Command
	for _, b := range keyBindings {
		if pressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
