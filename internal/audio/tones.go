// Package audio plays generated chimes for walk events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

// tone is a fixed-length oscillator with a linear attack and an
// exponential decay.
type tone struct {
	freq   float64
	wave   Wave
	phase  float64
	pos    int
	total  int
	attack int
	decay  float64 // Per-second decay rate
	rate   beep.SampleRate
}

// NewTone returns a streamer that plays freq for d and then ends.
func NewTone(freq float64, d time.Duration, wave Wave, decay float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:   freq,
		wave:   wave,
		total:  rate.N(d),
		attack: rate.N(5 * time.Millisecond),
		decay:  decay,
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(t.phase-0.5)
		}

		env := math.Exp(-t.decay * float64(t.pos) / float64(t.rate))
		if t.pos < t.attack {
			env *= float64(t.pos) / float64(t.attack)
		}

		samples[i][0] = val * env
		samples[i][1] = val * env

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// volume scales s linearly; zero silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Sound names one of the event chimes.
type Sound int

const (
	SoundDing Sound = iota
	SoundFanfare
	SoundArpeggio
	SoundThump
)

func (s Sound) String() string {
	switch s {
	case SoundDing:
		return "ding"
	case SoundFanfare:
		return "fanfare"
	case SoundArpeggio:
		return "arpeggio"
	case SoundThump:
		return "thump"
	}
	return "unknown"
}

// Note frequencies in Hz.
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC6 = 1046.50
	noteE6 = 1318.51
	noteG6 = 1567.98
)

// Build returns a fresh streamer for s at rate.
func Build(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundDing:
		// Bell: fundamental plus a quieter octave
		return beep.Mix(
			volume(NewTone(noteA5, 250*time.Millisecond, WaveSine, 8, rate), 0.35),
			volume(NewTone(2*noteA5, 250*time.Millisecond, WaveSine, 14, rate), 0.15),
		)
	case SoundFanfare:
		return volume(beep.Seq(
			NewTone(noteC5, 120*time.Millisecond, WaveSquare, 4, rate),
			NewTone(noteE5, 120*time.Millisecond, WaveSquare, 4, rate),
			NewTone(noteG5, 120*time.Millisecond, WaveSquare, 4, rate),
			NewTone(noteC6, 360*time.Millisecond, WaveSquare, 3, rate),
		), 0.12)
	case SoundArpeggio:
		notes := []float64{noteC5, noteE5, noteG5, noteC6, noteE6, noteG6}
		seq := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			seq = append(seq, NewTone(f, 90*time.Millisecond, WaveTriangle, 6, rate))
		}
		seq = append(seq, NewTone(noteC6, 500*time.Millisecond, WaveTriangle, 3, rate))
		return volume(beep.Seq(seq...), 0.3)
	case SoundThump:
		return volume(NewTone(90, 120*time.Millisecond, WaveSine, 25, rate), 0.5)
	}
	return nil
}
