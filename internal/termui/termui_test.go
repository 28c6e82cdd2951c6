package termui

import (
	"context"
	"errors"
	"testing"
	"time"

	"classicsnake/internal/game"

	"github.com/gdamore/tcell/v2"
)

type recorder struct {
	cells map[[2]int]rune
}

func (r *recorder) SetContent(x, y int, mainc rune, _ []rune, _ tcell.Style) {
	r.cells[[2]int{x, y}] = mainc
}

func newTestState(t *testing.T) *game.State {
	t.Helper()
	opts := game.DefaultOptions()
	opts.Seed = 5
	s, err := game.New(opts)
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return s
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		key     tcell.Key
		r       rune
		wantAct action
		wantCmd game.Command
	}{
		{"enter", tcell.KeyEnter, 0, actCommand, game.CmdRestart},
		{"up", tcell.KeyUp, 0, actCommand, game.CmdMoveUp},
		{"down", tcell.KeyDown, 0, actCommand, game.CmdMoveDown},
		{"left", tcell.KeyLeft, 0, actCommand, game.CmdMoveLeft},
		{"right", tcell.KeyRight, 0, actCommand, game.CmdMoveRight},
		{"plus", tcell.KeyRune, '+', actCommand, game.CmdSpeedUp},
		{"equal", tcell.KeyRune, '=', actCommand, game.CmdSpeedUp},
		{"minus", tcell.KeyRune, '-', actCommand, game.CmdSpeedDown},
		{"pause", tcell.KeyRune, 'p', actCommand, game.CmdTogglePause},
		{"quit q", tcell.KeyRune, 'q', actQuit, game.CmdNone},
		{"escape", tcell.KeyEscape, 0, actQuit, game.CmdNone},
		{"ctrl-c", tcell.KeyCtrlC, 0, actQuit, game.CmdNone},
		{"other rune", tcell.KeyRune, 'x', actNone, game.CmdNone},
		{"tab", tcell.KeyTab, 0, actNone, game.CmdNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			act, cmd := translate(tc.key, tc.r)
			if act != tc.wantAct || cmd != tc.wantCmd {
				t.Fatalf("translate = (%v,%v), want (%v,%v)", act, cmd, tc.wantAct, tc.wantCmd)
			}
		})
	}
}

func TestScreenSize(t *testing.T) {
	s := newTestState(t)
	w, h := screenSize(s)
	if w != 42 || h != 23 {
		t.Fatalf("screenSize = %dx%d, want 42x23", w, h)
	}
}

func TestDrawPlacesSnakeAndFood(t *testing.T) {
	s := newTestState(t)
	s.HandleInput(game.CmdRestart)
	s.Tick()

	rec := &recorder{cells: make(map[[2]int]rune)}
	draw(rec, s)

	head, _ := s.Snake().HeadSector()
	hx := fieldLeft + 1 + head.X/20*cellCols
	hy := fieldTop + 1 + head.Y/20
	if rec.cells[[2]int{hx, hy}] != '█' || rec.cells[[2]int{hx + 1, hy}] != '█' {
		t.Fatalf("head not drawn at (%d,%d)", hx, hy)
	}

	f := s.Food()
	fx := fieldLeft + 1 + f.X/20*cellCols
	fy := fieldTop + 1 + f.Y/20
	if rec.cells[[2]int{fx, fy}] != '●' {
		t.Fatalf("food not drawn at (%d,%d)", fx, fy)
	}

	if rec.cells[[2]int{0, 0}] != 'S' {
		t.Fatalf("status line missing, got %q", rec.cells[[2]int{0, 0}])
	}
	if rec.cells[[2]int{fieldLeft, fieldTop}] != tcell.RuneULCorner {
		t.Fatal("border corner missing")
	}
}

func TestPutCellClipsOutside(t *testing.T) {
	s := newTestState(t)
	rec := &recorder{cells: make(map[[2]int]rune)}
	putCell(rec, s, -20, 0, 'x', styleDefault)
	putCell(rec, s, 400, 0, 'x', styleDefault)
	if len(rec.cells) != 0 {
		t.Fatalf("off-field cells drawn: %v", rec.cells)
	}
}

func TestDrawDoesNotMutateState(t *testing.T) {
	s := newTestState(t)
	s.HandleInput(game.CmdRestart)
	before := s.Snake().Segments()
	food := s.Food()
	rec := &recorder{cells: make(map[[2]int]rune)}
	draw(rec, s)
	after := s.Snake().Segments()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("draw changed the snake")
		}
	}
	if s.Food() != food {
		t.Fatal("draw changed the food")
	}
}

func newSimUI(t *testing.T) (*UI, tcell.SimulationScreen, *game.State) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	s := newTestState(t)
	u, err := New(screen, s, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	screen.SetSize(80, 30)
	t.Cleanup(u.Close)
	return u, screen, s
}

func TestHandleKeyEvents(t *testing.T) {
	u, _, s := newSimUI(t)

	if !u.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("enter should not quit")
	}
	if !s.Started() {
		t.Fatal("enter should start the game")
	}
	u.handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if got := s.PendingTurns(); len(got) != 1 {
		t.Fatalf("PendingTurns() = %v", got)
	}
	if u.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	u, _, _ := newSimUI(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- u.Run(ctx) }()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	u, screen, _ := newSimUI(t)
	done := make(chan error, 1)
	go func() { done <- u.Run(context.Background()) }()
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after escape")
	}
}

func TestSilentPlayer(t *testing.T) {
	var p *player
	p.play(game.FoodEaten)
	p.close()
	(&player{}).play(game.GameOver)
}

func TestStreamerForEvents(t *testing.T) {
	for _, e := range []game.Event{game.FoodEaten, game.GameOver} {
		s, err := streamer(e)
		if err != nil || s == nil {
			t.Fatalf("streamer(%v) = %v, %v", e, s, err)
		}
	}
	if s, err := streamer(game.Event(0)); s != nil || err != nil {
		t.Fatalf("streamer(unknown) = %v, %v", s, err)
	}
}
