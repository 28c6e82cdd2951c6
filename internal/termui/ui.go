// Package termui runs a game.State in a terminal.
package termui

import (
	"context"
	"fmt"
	"log"
	"time"

	"classicsnake/internal/game"

	"github.com/gdamore/tcell/v2"
)

// UI owns the screen and the single goroutine that touches the game state.
type UI struct {
	screen tcell.Screen
	state  *game.State
	audio  *player
}

// New initializes screen and, with withSound, the speaker. A speaker that fails
// to start is logged and the game runs silent.
func New(screen tcell.Screen, state *game.State, withSound bool) (*UI, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termui: init screen: %w", err)
	}
	screen.HideCursor()

	u := &UI{screen: screen, state: state, audio: &player{}}
	if withSound {
		p, err := newPlayer()
		if err != nil {
			log.Printf("termui: sound disabled: %v", err)
		}
		u.audio = p
	}
	state.OnEvent(u.audio.play)
	return u, nil
}

// Run drives ticks and input until quit, ctx cancellation, or a closed event stream.
// Ticks and key handling are serialized in this goroutine; only PollEvent runs elsewhere.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	interval := u.state.Interval()
	timer := time.NewTimer(interval)
	defer timer.Stop()

	u.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !u.handle(ev) {
				return nil
			}
			if next := u.state.Interval(); next != interval {
				interval = next
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(interval)
			}
			u.render()

		case <-timer.C:
			u.state.Tick()
			u.render()
			timer.Reset(interval)
		}
	}
}

// handle applies one terminal event and reports whether the loop should continue.
func (u *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, cmd := translate(ev.Key(), ev.Rune())
		switch act {
		case actQuit:
			return false
		case actCommand:
			u.state.HandleInput(cmd)
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return true
}

func (u *UI) render() {
	u.screen.Clear()
	draw(u.screen, u.state)
	u.screen.Show()
}

// Close restores the terminal and stops the speaker.
func (u *UI) Close() {
	u.audio.close()
	u.screen.Fini()
}
