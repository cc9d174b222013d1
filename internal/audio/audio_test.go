package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/sim"
)

func drain(t *testing.T, s beep.Streamer) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < -1 || v > 1 {
					t.Fatalf("sample %v out of range", v)
				}
				if v > peak {
					peak = v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewTone(440, 100*time.Millisecond, WaveSine, 5, rate)
	total, peak := drain(t, s)
	if total != rate.N(100*time.Millisecond) {
		t.Errorf("streamed %d samples, expected %d", total, rate.N(100*time.Millisecond))
	}
	if peak <= 0 {
		t.Error("tone is silent")
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestSquareToneStaysBounded(t *testing.T) {
	s := NewTone(220, 50*time.Millisecond, WaveSquare, 0, beep.SampleRate(8000))
	drain(t, s)
}

func TestBuildEverySound(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range []Sound{SoundDing, SoundFanfare, SoundArpeggio, SoundThump} {
		t.Run(s.String(), func(t *testing.T) {
			st := Build(s, rate)
			if st == nil {
				t.Fatal("no streamer")
			}
			total, peak := drain(t, st)
			if total == 0 || peak <= 0 {
				t.Errorf("%s produced no audio", s)
			}
		})
	}
	if Build(Sound(99), rate) != nil {
		t.Error("unknown sound should build nothing")
	}
}

type recordingPlayer struct {
	played []Sound
}

func (r *recordingPlayer) Play(s Sound) {
	r.played = append(r.played, s)
}

func TestObserverMapsEvents(t *testing.T) {
	rec := &recordingPlayer{}
	o := NewObserver(rec)

	steps := []func() error{
		func() error { return o.OnCapture(sim.Collectible{}, sim.ScoreState{}) },
		func() error { return o.OnAllCollected(sim.ScoreState{}) },
		func() error { return o.OnBounce(core.V(600, 0), sim.ScoreState{}) },
		func() error { return o.OnVictory(core.V(0, 0), sim.Summary{}) },
		func() error { return o.OnTurn(core.V(0, 0), sim.ScoreState{}) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("observer returned %v", err)
		}
	}

	want := []Sound{SoundDing, SoundFanfare, SoundThump, SoundArpeggio}
	if len(rec.played) != len(want) {
		t.Fatalf("played %v, expected %v", rec.played, want)
	}
	for i := range want {
		if rec.played[i] != want[i] {
			t.Errorf("played[%d] = %s, expected %s", i, rec.played[i], want[i])
		}
	}
}

func TestManagerSilentBeforeInit(t *testing.T) {
	m := NewManager()
	m.Play(SoundDing)
	m.Close()
}
