package game

import (
	"errors"
	"fmt"
	"time"

	"classicsnake/internal/board"
	"classicsnake/internal/snake"

	"golang.org/x/exp/rand"
)

const (
	DefaultWidth  = 400
	DefaultHeight = 400
	DefaultUnit   = 20
	DefaultStartX = 200
	DefaultStartY = 200

	FoodPoints = 10
)

var ErrInvalidField = errors.New("invalid field")

// Options fixes the field for the whole session.
type Options struct {
	Width, Height  int
	Unit           int
	StartX, StartY int
	Speed          int
	// Seed for food placement; 0 picks a time-based seed.
	Seed uint64
}

// DefaultOptions returns the classic 400x400 field with 20px cells.
func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Unit:   DefaultUnit,
		StartX: DefaultStartX,
		StartY: DefaultStartY,
		Speed:  DefaultSpeed,
	}
}

// State is one play session: the snake, its food, score and flags.
// It is not safe for concurrent use; drive Tick and HandleInput from one goroutine.
type State struct {
	grid  board.Grid
	snake *snake.Snake
	food  board.Segment
	rng   *rand.Rand

	startX, startY int

	score   int
	speed   int
	pending []snake.Direction

	paused    bool
	ended     bool
	started   bool
	boardFull bool

	listeners []Listener
}

// New builds a session and prepares an idle first game.
func New(opts Options) (*State, error) {
	if opts.Unit <= 0 {
		return nil, fmt.Errorf("%w: unit size %d", ErrInvalidField, opts.Unit)
	}
	if opts.Width < opts.Unit || opts.Height < opts.Unit {
		return nil, fmt.Errorf("%w: %dx%d smaller than one %d cell", ErrInvalidField, opts.Width, opts.Height, opts.Unit)
	}
	grid := board.NewGrid(opts.Width, opts.Height, opts.Unit)
	if !grid.Contains(board.NewSegment(opts.StartX, opts.StartY, opts.Unit)) {
		return nil, fmt.Errorf("%w: start (%d,%d) is not a field cell", ErrInvalidField, opts.StartX, opts.StartY)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &State{
		grid:   grid,
		snake:  snake.New(opts.Unit),
		rng:    rand.New(rand.NewSource(seed)),
		startX: opts.StartX,
		startY: opts.StartY,
		speed:  clampSpeed(opts.Speed),
	}
	if opts.Speed == 0 {
		s.speed = DefaultSpeed
	}
	s.NewGame(true)
	return s, nil
}

// NewGame resets the snake, food, score and flags. With startingGame the snake
// is drawn but idle; otherwise it heads right and the session counts as started.
// Speed survives across games.
func (s *State) NewGame(startingGame bool) {
	if startingGame {
		s.snake.Heading = snake.DirNone
	} else {
		s.snake.Heading = snake.DirRight
		s.started = true
	}
	s.snake.Reset(s.startX, s.startY)
	s.placeFood()

	s.pending = s.pending[:0]
	s.score = 0
	s.paused = false
	s.ended = false
}

// Tick advances the game by one step. It does nothing while paused or ended.
func (s *State) Tick() {
	if s.paused || s.ended {
		return
	}

	if len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		if compatibleTurn(s.snake.Heading, next) {
			s.snake.Heading = next
		}
	}

	s.snake.Move()

	head, _ := s.snake.HeadSector()
	if head.SamePos(s.food) {
		s.placeFood()
		s.snake.Grow(1)
		s.score += FoodPoints
		s.emit(FoodEaten)
	}

	if s.snake.Heading != snake.DirNone && s.collided() {
		s.ended = true
		s.emit(GameOver)
	}
}

// collided reports a wall exit along the heading or the head landing on the body.
func (s *State) collided() bool {
	head, ok := s.snake.HeadSector()
	if !ok {
		return false
	}
	unit := s.snake.Unit()
	switch s.snake.Heading {
	case snake.DirLeft:
		if head.X < 0 {
			return true
		}
	case snake.DirUp:
		if head.Y < 0 {
			return true
		}
	case snake.DirRight:
		if head.X > s.grid.Width-unit {
			return true
		}
	case snake.DirDown:
		if head.Y > s.grid.Height-unit {
			return true
		}
	}
	return s.snake.BitesItself()
}

func (s *State) Snake() *snake.Snake { return s.snake }

func (s *State) Heading() snake.Direction { return s.snake.Heading }

func (s *State) Food() board.Segment { return s.food }

func (s *State) Score() int { return s.score }

func (s *State) Paused() bool { return s.paused }

func (s *State) Ended() bool { return s.ended }

func (s *State) Started() bool { return s.started }

// BoardFull reports that the last food placement found no free cell.
func (s *State) BoardFull() bool { return s.boardFull }

// FieldSize returns the field dimensions in pixels.
func (s *State) FieldSize() (width, height int) { return s.grid.Width, s.grid.Height }

func (s *State) Grid() board.Grid { return s.grid }
