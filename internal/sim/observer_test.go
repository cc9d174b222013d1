package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/emerald-city/internal/core"
)

// failingCapture counts captures and always rejects them.
type failingCapture struct {
	recorder
	err error
}

func (f *failingCapture) OnCapture(Collectible, ScoreState) error {
	f.captures++
	return f.err
}

func TestObserversNotifiesEveryObserver(t *testing.T) {
	errA := errors.New("surface a closed")
	errB := errors.New("surface b closed")
	first := &failingCapture{err: errA}
	middle := &recorder{}
	last := &failingCapture{err: errB}

	err := Observers{first, middle, last}.OnCapture(Collectible{}, ScoreState{})

	if first.captures != 1 || middle.captures != 1 || last.captures != 1 {
		t.Errorf("captures = %d/%d/%d, expected every observer notified once",
			first.captures, middle.captures, last.captures)
	}
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("err = %v, expected both observer errors", err)
	}
}

func TestObserversNilWhenAllSucceed(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	if err := (Observers{a, b}).OnTurn(core.V(0, 0), ScoreState{}); err != nil {
		t.Errorf("err = %v, expected nil", err)
	}
	if a.turns != 1 || b.turns != 1 {
		t.Errorf("turns = %d/%d, expected 1/1", a.turns, b.turns)
	}
}
