package game

import (
	"strings"
	"testing"
)

func TestStatusLine(t *testing.T) {
	s := newTestState(t)
	s.score = 40
	if got := s.StatusLine(); !strings.Contains(got, "Score: 40") || !strings.Contains(got, "Speed: 3") {
		t.Fatalf("StatusLine() = %q", got)
	}
}

func TestOverlayPhases(t *testing.T) {
	s := newTestState(t)
	if got := s.Overlay(); len(got) != 1 || got[0] != "Press enter to start..." {
		t.Fatalf("idle overlay = %v", got)
	}

	s.NewGame(false)
	if got := s.Overlay(); len(got) != 0 {
		t.Fatalf("running overlay = %v, want none", got)
	}

	s.TogglePause()
	if got := s.Overlay(); len(got) != 1 || got[0] != "Game Paused" {
		t.Fatalf("paused overlay = %v", got)
	}

	s.TogglePause()
	s.ended = true
	if got := s.Overlay(); len(got) != 2 || got[0] != "Game Over!" {
		t.Fatalf("ended overlay = %v", got)
	}
}
