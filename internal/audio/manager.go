package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/sim"
)

// Player plays event sounds.
type Player interface {
	Play(s Sound)
}

// Manager owns the speaker and mixes overlapping chimes.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates a silent manager; call Init to open the speaker.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init opens the default audio device.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Play queues s on the mixer. It is a no-op before Init or after Close.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	st := Build(s, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// Observer turns walk events into chimes. It never fails, so sound can
// never stop the walk.
type Observer struct {
	sim.NopObserver
	p Player
}

var _ sim.Observer = (*Observer)(nil)

// NewObserver returns an observer playing through p.
func NewObserver(p Player) *Observer {
	return &Observer{p: p}
}

func (o *Observer) OnCapture(sim.Collectible, sim.ScoreState) error {
	o.p.Play(SoundDing)
	return nil
}

func (o *Observer) OnAllCollected(sim.ScoreState) error {
	o.p.Play(SoundFanfare)
	return nil
}

func (o *Observer) OnVictory(core.Vec, sim.Summary) error {
	o.p.Play(SoundArpeggio)
	return nil
}

func (o *Observer) OnBounce(core.Vec, sim.ScoreState) error {
	o.p.Play(SoundThump)
	return nil
}
