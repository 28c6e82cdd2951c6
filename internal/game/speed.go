package game

import "time"

const (
	MinSpeed     = 1
	MaxSpeed     = 6
	DefaultSpeed = 3
)

// tickIntervals maps speed level to tick period; index 0 is unused.
var tickIntervals = [MaxSpeed + 1]time.Duration{
	0,
	500 * time.Millisecond,
	300 * time.Millisecond,
	150 * time.Millisecond,
	80 * time.Millisecond,
	40 * time.Millisecond,
	1 * time.Millisecond,
}

// IntervalFor returns the tick period of a speed level, clamped to [MinSpeed, MaxSpeed].
func IntervalFor(level int) time.Duration {
	return tickIntervals[clampSpeed(level)]
}

func clampSpeed(level int) int {
	if level < MinSpeed {
		return MinSpeed
	}
	if level > MaxSpeed {
		return MaxSpeed
	}
	return level
}

// SpeedUp raises the speed level by one, up to MaxSpeed.
func (s *State) SpeedUp() {
	s.speed = clampSpeed(s.speed + 1)
}

// SpeedDown lowers the speed level by one, down to MinSpeed.
func (s *State) SpeedDown() {
	s.speed = clampSpeed(s.speed - 1)
}

func (s *State) SpeedLevel() int { return s.speed }

// Interval is the tick period the clock should currently run at.
func (s *State) Interval() time.Duration { return tickIntervals[s.speed] }
