package session

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/emerald-city/internal/audio"
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/storage"
)

func testConfig() config.SceneConfig {
	cfg := config.DefaultSceneConfig()
	cfg.Pacing.FrameDelay = 0
	return cfg
}

func TestSameSeedSameWalk(t *testing.T) {
	a := New(Options{Seed: 77, Config: testConfig()})
	b := New(Options{Seed: 77, Config: testConfig()})

	sa := a.Walker.Run(context.Background())
	sb := b.Walker.Run(context.Background())

	if sa != sb {
		t.Errorf("summaries differ:\n%+v\n%+v", sa, sb)
	}
	if a.Walker.Snapshot() != b.Walker.Snapshot() {
		t.Error("final snapshots differ")
	}
	if len(a.Canvas.Items()) != len(b.Canvas.Items()) {
		t.Errorf("pictures differ: %d vs %d items", len(a.Canvas.Items()), len(b.Canvas.Items()))
	}
}

func TestSaltSeedReproducesPicture(t *testing.T) {
	if fxSeed(fxSalt) == 0 {
		t.Fatal("cosmetic seed must never be zero")
	}

	a := New(Options{Seed: fxSalt, Config: testConfig()})
	b := New(Options{Seed: fxSalt, Config: testConfig()})
	a.Walker.Run(context.Background())
	b.Walker.Run(context.Background())

	if !slices.Equal(a.Canvas.Items(), b.Canvas.Items()) {
		t.Error("same seed drew different pictures")
	}
}

func TestZeroSeedIsResolved(t *testing.T) {
	s := New(Options{Config: testConfig()})
	if s.Seed == 0 {
		t.Error("zero seed was not replaced")
	}
}

type countingPlayer struct{ n int }

func (p *countingPlayer) Play(audio.Sound) { p.n++ }

func TestSaveRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	player := &countingPlayer{}
	s := New(Options{Seed: 3, Config: testConfig(), Frontend: FrontendHeadless, Sound: player})
	sum := s.Walker.Run(context.Background())

	id, err := s.Save(store, sum)
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	run, err := store.RunByID(id)
	if err != nil || run == nil {
		t.Fatalf("RunByID() = %v, %v", run, err)
	}
	if run.Seed != 3 || run.Score != sum.Score || run.Emeralds != sum.Gathered || run.Frontend != FrontendHeadless {
		t.Errorf("stored run %+v does not match summary %+v", run, sum)
	}

	if sum.Gathered > 0 && player.n == 0 {
		t.Error("sound player never called despite captures")
	}
}

func TestSaveWithoutStore(t *testing.T) {
	s := New(Options{Seed: 1, Config: testConfig()})
	id, err := s.Save(nil, s.Walker.Finish())
	if id != "" || err != nil {
		t.Errorf("Save(nil) = %q, %v", id, err)
	}
}
