// Package ebitenui runs a game.State in a desktop window.
package ebitenui

import (
	"image/color"
	"log"
	"math"
	"time"

	"classicsnake/internal/game"
	"classicsnake/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	WindowWidth  = 800
	WindowHeight = 800
)

var (
	bgColor   = color.RGBA{0, 0, 0, 255}
	headColor = color.RGBA{255, 0, 0, 255}
	bodyColor = color.RGBA{50, 205, 50, 255}
	foodColor = color.RGBA{255, 255, 0, 255}
)

// Game adapts a game.State to ebiten's fixed-rate Update/Draw loop.
type Game struct {
	state *game.State
	clock *game.Clock

	now          func() time.Time
	last         time.Time
	lastInterval time.Duration

	scaleFactor  float64
	isFullscreen bool

	audioCtx   *audio.Context
	eatPlayer  *audio.Player
	overPlayer *audio.Player
}

// New wraps state. With withSound an audio context is created; ebiten allows
// only one per process, so at most one sound-enabled Game may exist.
func New(state *game.State, withSound bool) *Game {
	g := &Game{
		state:       state,
		clock:       game.NewClock(),
		now:         time.Now,
		scaleFactor: 1.0,
	}
	g.last = g.now()
	g.lastInterval = state.Interval()

	if withSound {
		g.audioCtx = audio.NewContext(sound.SampleRate)
		g.eatPlayer = g.audioCtx.NewPlayerFromBytes(sound.PCM(sound.SampleRate, sound.For(game.FoodEaten)))
		g.overPlayer = g.audioCtx.NewPlayerFromBytes(sound.PCM(sound.SampleRate, sound.For(game.GameOver)))
	}
	state.OnEvent(g.play)
	return g
}

func (g *Game) play(e game.Event) {
	var p *audio.Player
	switch e {
	case game.FoodEaten:
		p = g.eatPlayer
	case game.GameOver:
		p = g.overPlayer
	}
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("sound: rewind %v: %v", e, err)
		return
	}
	p.Play()
}

// ScreenWidth and ScreenHeight are the unscaled field size in pixels.
func (g *Game) ScreenWidth() int {
	w, _ := g.state.FieldSize()
	return w
}

func (g *Game) ScreenHeight() int {
	_, h := g.state.FieldSize()
	return h
}

func (g *Game) Update() error {
	// Toggle full-screen/maximized with F key
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.isFullscreen = !g.isFullscreen
		if g.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			ebiten.RestoreWindow()
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.isFullscreen {
		g.isFullscreen = false
		ebiten.RestoreWindow()
		ebiten.SetWindowSize(WindowWidth, WindowHeight)
	}

	for _, cmd := range commandsFor(inpututil.IsKeyJustPressed) {
		g.state.HandleInput(cmd)
	}
	g.step()
	return nil
}

// step runs the ticks due since the previous frame at the current speed.
func (g *Game) step() {
	now := g.now()
	elapsed := now.Sub(g.last)
	g.last = now

	interval := g.state.Interval()
	if interval != g.lastInterval {
		g.clock.Reset()
		g.lastInterval = interval
	}
	for n := g.clock.Advance(elapsed, interval); n > 0; n-- {
		g.state.Tick()
	}
}

func (g *Game) drawCell(screen *ebiten.Image, x, y, size int, c color.Color) {
	r := float32(float64(size) / 2 * g.scaleFactor)
	cx := float32(float64(x)*g.scaleFactor) + r
	cy := float32(float64(y)*g.scaleFactor) + r
	vector.DrawFilledCircle(screen, cx, cy, r, c, true)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	f := g.state.Food()
	g.drawCell(screen, f.X, f.Y, f.Size, foodColor)

	sn := g.state.Snake()
	for i := sn.Len() - 1; i >= 0; i-- {
		seg, err := sn.SectorAt(i)
		if err != nil {
			continue
		}
		c := color.Color(bodyColor)
		if i == 0 {
			c = headColor
		}
		g.drawCell(screen, seg.X, seg.Y, seg.Size, c)
	}

	ebitenutil.DebugPrintAt(screen, g.state.StatusLine(), 2, 2)

	lines := g.state.Overlay()
	lineHeight := 20.0 * g.scaleFactor
	screenWidth := float64(g.ScreenWidth()) * g.scaleFactor
	screenHeight := float64(g.ScreenHeight()) * g.scaleFactor
	startY := (screenHeight - float64(len(lines))*lineHeight) / 2
	for i, line := range lines {
		approxWidth := float64(len(line)) * 6
		x := (screenWidth - approxWidth) / 2
		y := startY + float64(i)*lineHeight
		ebitenutil.DebugPrintAt(screen, line, int(x), int(y))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	w, h := float64(g.ScreenWidth()), float64(g.ScreenHeight())
	if outsideWidth <= 0 || outsideHeight <= 0 {
		g.scaleFactor = 1.0
		return int(w), int(h)
	}
	g.scaleFactor = math.Min(float64(outsideWidth)/w, float64(outsideHeight)/h)
	return int(w * g.scaleFactor), int(h * g.scaleFactor)
}
