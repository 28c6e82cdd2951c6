package game

import "time"

// Clock turns elapsed frame time into due ticks for frontends driven at a fixed
// frame rate rather than by a timer.
type Clock struct {
	acc time.Duration
	// MaxCatchUp caps ticks reported per Advance; surplus time is dropped.
	MaxCatchUp int
}

func NewClock() *Clock {
	return &Clock{MaxCatchUp: 1}
}

// Advance adds elapsed time and returns how many ticks of the given interval are due.
func (c *Clock) Advance(elapsed, interval time.Duration) int {
	if interval <= 0 {
		return 0
	}
	c.acc += elapsed
	n := int(c.acc / interval)
	c.acc -= time.Duration(n) * interval
	if c.MaxCatchUp > 0 && n > c.MaxCatchUp {
		n = c.MaxCatchUp
		c.acc = 0
	}
	return n
}

func (c *Clock) Reset() { c.acc = 0 }
