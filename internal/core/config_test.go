package core

import "testing"

func TestDefaultConfig(t *testing.T) {
	rc := DefaultConfig()
	if rc.ScreenW != 80 || rc.ScreenH != 24 {
		t.Errorf("screen = %dx%d, want 80x24", rc.ScreenW, rc.ScreenH)
	}
	if rc.FrameDelay <= 0 {
		t.Errorf("FrameDelay = %v, want a positive delay", rc.FrameDelay)
	}
	if rc.Seed != 0 {
		t.Errorf("Seed = %d, want 0 so the frontend picks one", rc.Seed)
	}
}

func TestResolveSeed(t *testing.T) {
	if got := (RuntimeConfig{Seed: 42}).ResolveSeed(); got != 42 {
		t.Errorf("ResolveSeed() = %d, want 42", got)
	}
	if got := (RuntimeConfig{}).ResolveSeed(); got == 0 {
		t.Error("unset seed should resolve to a non-zero value")
	}
}
