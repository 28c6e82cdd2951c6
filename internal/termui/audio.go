package termui

import (
	"time"

	"classicsnake/internal/game"
	"classicsnake/internal/sound"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

var sampleRate = beep.SampleRate(sound.SampleRate)

// player plays event tones through the speaker. The zero value is silent.
type player struct {
	enabled bool
}

func newPlayer() (*player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &player{}, err
	}
	return &player{enabled: true}, nil
}

// streamer chains the event's tones into one stream, or returns nil for silent events.
func streamer(e game.Event) (beep.Streamer, error) {
	tones := sound.For(e)
	if len(tones) == 0 {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(t.Duration), sine))
	}
	return beep.Seq(parts...), nil
}

func (p *player) play(e game.Event) {
	if p == nil || !p.enabled {
		return
	}
	s, err := streamer(e)
	if err != nil || s == nil {
		return
	}
	speaker.Play(s)
}

func (p *player) close() {
	if p != nil && p.enabled {
		speaker.Close()
	}
}
