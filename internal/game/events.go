package game

type Event int

const (
	FoodEaten Event = iota + 1
	GameOver
)

func (e Event) String() string {
	switch e {
	case FoodEaten:
		return "food-eaten"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Listener receives fire-and-forget notifications from Tick. It must not mutate the state.
type Listener func(Event)

// OnEvent registers l; listeners run in registration order.
func (s *State) OnEvent(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

func (s *State) emit(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}
