// Package config provides YAML-based scene configuration loading and
// pace presets for the Emerald City walk.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/emerald-city/internal/core"
)

// SceneConfig contains all configuration for one run of the city scene.
type SceneConfig struct {
	Window       WindowConfig       `yaml:"window"`
	City         CityConfig         `yaml:"city"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Walk         WalkConfig         `yaml:"walk"`
	Goal         GoalConfig         `yaml:"goal"`
	Effects      EffectsConfig      `yaml:"effects"`
	Pacing       PacingConfig       `yaml:"pacing"`
}

// WindowConfig defines the graphical window.
type WindowConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Title      string     `yaml:"title"`
	Background core.Color `yaml:"background"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Valid reports whether the range is non-empty.
func (r IntRange) Valid() bool {
	return r.Min <= r.Max
}

// SizeRange bounds the random width and height of a building.
type SizeRange struct {
	Width  IntRange `yaml:"width"`
	Height IntRange `yaml:"height"`
}

// CityConfig defines the building grid.
type CityConfig struct {
	ColMin       int          `yaml:"col_min"`
	ColMax       int          `yaml:"col_max"`
	RowMin       int          `yaml:"row_min"`
	RowMax       int          `yaml:"row_max"`
	Spacing      float64      `yaml:"spacing"`
	Regular      SizeRange    `yaml:"regular"`
	TopRow       SizeRange    `yaml:"top_row"` // Applied to RowMax so the title stays readable
	Palette      []core.Color `yaml:"palette"`
	GoalColor    core.Color   `yaml:"goal_color"`
	WindowChance float64      `yaml:"window_chance"` // Chance a window is lit
}

// Extent is a rectangle centered on the origin, given by its half sizes.
type Extent struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
}

// CollectiblesConfig defines the emeralds.
type CollectiblesConfig struct {
	Count             int     `yaml:"count"`
	CaptureRadius     float64 `yaml:"capture_radius"`
	Points            int     `yaml:"points"`
	AllCollectedBonus int     `yaml:"all_collected_bonus"`
	Bounds            Extent  `yaml:"bounds"`
}

// Point is a YAML-friendly world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the point to a core.Vec.
func (p Point) Vec() core.Vec {
	return core.V(p.X, p.Y)
}

// WalkConfig defines the random walk of the agent.
type WalkConfig struct {
	Steps        int          `yaml:"steps"`
	Start        Point        `yaml:"start"`
	Heading      float64      `yaml:"heading"`
	TurnChance   float64      `yaml:"turn_chance"`
	TurnAngles   []int        `yaml:"turn_angles"`
	Distance     IntRange     `yaml:"distance"`
	TurnPoints   int          `yaml:"turn_points"`
	TrailStart   core.Color   `yaml:"trail_start"`
	TrailEvery   int          `yaml:"trail_every"`
	TrailPalette []core.Color `yaml:"trail_palette"`
	Bounds       Extent       `yaml:"bounds"`
	BounceJitter int          `yaml:"bounce_jitter"`
	BouncePoints int          `yaml:"bounce_points"`
}

// GoalConfig defines the Wizard's building proximity rule.
type GoalConfig struct {
	Radius        float64 `yaml:"radius"`
	Points        int     `yaml:"points"`
	PerfectPoints int     `yaml:"perfect_points"` // Awarded instead of Points when every emerald was gathered
}

// BurstConfig defines one glitter intensity.
type BurstConfig struct {
	Particles IntRange `yaml:"particles"`
	Length    IntRange `yaml:"length"`
}

// EffectsConfig defines presentation-only glitter parameters.
type EffectsConfig struct {
	Normal        BurstConfig  `yaml:"normal"`
	Mega          BurstConfig  `yaml:"mega"`
	Palette       []core.Color `yaml:"palette"`
	VictoryBursts int          `yaml:"victory_bursts"`
	RingBase      float64      `yaml:"ring_base"`
	RingStep      float64      `yaml:"ring_step"`
}

// PacingConfig defines how often the surface is redrawn and how long to pause.
type PacingConfig struct {
	RedrawEvery int           `yaml:"redraw_every"`
	FrameDelay  time.Duration `yaml:"frame_delay"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SceneConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}

	if c.Walk.Steps < 0 {
		errs = append(errs, fmt.Errorf("walk.steps must be >= 0, got %d", c.Walk.Steps))
	}
	if c.Walk.TurnChance < 0 || c.Walk.TurnChance > 1 {
		errs = append(errs, fmt.Errorf("walk.turn_chance must be in [0,1], got %v", c.Walk.TurnChance))
	}
	if len(c.Walk.TurnAngles) == 0 {
		errs = append(errs, errors.New("walk.turn_angles must not be empty"))
	}
	if !c.Walk.Distance.Valid() {
		errs = append(errs, fmt.Errorf("walk.distance min %d > max %d", c.Walk.Distance.Min, c.Walk.Distance.Max))
	}
	if c.Walk.TrailEvery <= 0 {
		errs = append(errs, errors.New("walk.trail_every must be positive"))
	}
	if len(c.Walk.TrailPalette) == 0 {
		errs = append(errs, errors.New("walk.trail_palette must not be empty"))
	}
	if c.Walk.BounceJitter < 0 {
		errs = append(errs, errors.New("walk.bounce_jitter must be >= 0"))
	}

	if c.City.ColMin > c.City.ColMax || c.City.RowMin > c.City.RowMax {
		errs = append(errs, errors.New("city grid extent is empty"))
	}
	for name, r := range map[string]IntRange{
		"city.regular.width":  c.City.Regular.Width,
		"city.regular.height": c.City.Regular.Height,
		"city.top_row.width":  c.City.TopRow.Width,
		"city.top_row.height": c.City.TopRow.Height,
	} {
		if !r.Valid() || r.Min <= 0 {
			errs = append(errs, fmt.Errorf("%s must be a positive range", name))
		}
	}
	if len(c.City.Palette) == 0 {
		errs = append(errs, errors.New("city.palette must not be empty"))
	}

	if c.Collectibles.Count < 0 {
		errs = append(errs, errors.New("collectibles.count must be >= 0"))
	}
	if c.Collectibles.CaptureRadius <= 0 {
		errs = append(errs, errors.New("collectibles.capture_radius must be positive"))
	}
	if c.Goal.Radius <= 0 {
		errs = append(errs, errors.New("goal.radius must be positive"))
	}

	for name, b := range map[string]BurstConfig{"effects.normal": c.Effects.Normal, "effects.mega": c.Effects.Mega} {
		if !b.Particles.Valid() || !b.Length.Valid() {
			errs = append(errs, fmt.Errorf("%s ranges are inverted", name))
		}
	}
	if len(c.Effects.Palette) == 0 {
		errs = append(errs, errors.New("effects.palette must not be empty"))
	}

	if c.Pacing.RedrawEvery <= 0 {
		errs = append(errs, errors.New("pacing.redraw_every must be positive"))
	}
	if c.Pacing.FrameDelay < 0 {
		errs = append(errs, errors.New("pacing.frame_delay must be >= 0"))
	}

	return errors.Join(errs...)
}
