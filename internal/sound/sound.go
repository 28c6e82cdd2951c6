// Package sound holds the feedback tones played on game events.
package sound

import (
	"math"
	"time"

	"classicsnake/internal/game"
)

const SampleRate = 44100

// Tone is one decaying sine note.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	foodTones = []Tone{{Freq: 880, Duration: 100 * time.Millisecond}}
	overTones = []Tone{
		{Freq: 440, Duration: 150 * time.Millisecond},
		{Freq: 330, Duration: 150 * time.Millisecond},
		{Freq: 220, Duration: 400 * time.Millisecond},
	}
)

// For returns the notes played for e, or nil when e has no sound.
func For(e game.Event) []Tone {
	switch e {
	case game.FoodEaten:
		return foodTones
	case game.GameOver:
		return overTones
	default:
		return nil
	}
}

// Samples returns how many frames a tone lasts at sampleRate.
func (t Tone) Samples(sampleRate int) int {
	return int(float64(sampleRate) * t.Duration.Seconds())
}

// PCM renders tones back to back as 16-bit little-endian stereo.
func PCM(sampleRate int, tones []Tone) []byte {
	total := 0
	for _, t := range tones {
		total += t.Samples(sampleRate)
	}
	buf := make([]byte, total*4)
	idx := 0
	for _, t := range tones {
		n := t.Samples(sampleRate)
		for i := 0; i < n; i++ {
			sec := float64(i) / float64(sampleRate)
			v := int16(math.Sin(2*math.Pi*t.Freq*sec) * 4000 * math.Pow(math.E, -3*sec))
			for ch := 0; ch < 2; ch++ {
				buf[idx] = byte(v)
				buf[idx+1] = byte(v >> 8)
				idx += 2
			}
		}
	}
	return buf
}
