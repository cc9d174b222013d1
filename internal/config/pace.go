package config

import (
	"fmt"
	"strings"
	"time"
)

// PacePreset represents a named animation speed.
// Presets only change presentation pacing, never the walk itself.
type PacePreset string

const (
	PaceSlow    PacePreset = "slow"
	PaceNormal  PacePreset = "normal"
	PaceFast    PacePreset = "fast"
	PaceInstant PacePreset = "instant"
)

// ParsePace resolves a preset name. An empty name means "keep the file's pacing".
func ParsePace(name string) (PacePreset, error) {
	switch p := PacePreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", PaceSlow, PaceNormal, PaceFast, PaceInstant:
		return p, nil
	default:
		return "", fmt.Errorf("unknown pace %q (want slow, normal, fast or instant)", name)
	}
}

// ApplyPace modifies the pacing section based on a preset.
func ApplyPace(cfg *SceneConfig, preset PacePreset) {
	switch preset {
	case PaceSlow:
		cfg.Pacing.RedrawEvery = 1
		cfg.Pacing.FrameDelay = 80 * time.Millisecond
	case PaceNormal:
		cfg.Pacing.RedrawEvery = 3
		cfg.Pacing.FrameDelay = 40 * time.Millisecond
	case PaceFast:
		cfg.Pacing.RedrawEvery = 6
		cfg.Pacing.FrameDelay = 16 * time.Millisecond
	case PaceInstant:
		cfg.Pacing.FrameDelay = 0
	}
}
