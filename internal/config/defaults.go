package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/emerald-city/internal/core"
)

//go:embed defaults/emerald.yaml
var defaultSceneYAML []byte

// DefaultSceneConfig returns the default scene configuration.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Window: WindowConfig{
			Width:      core.WorldWidth,
			Height:     core.WorldHeight,
			Title:      "Emerald City Map - Find the Wizard!",
			Background: core.ColorBackground,
		},
		City: CityConfig{
			ColMin:  -4,
			ColMax:  4,
			RowMin:  -3,
			RowMax:  2,
			Spacing: 130,
			Regular: SizeRange{
				Width:  IntRange{Min: 50, Max: 90},
				Height: IntRange{Min: 70, Max: 130},
			},
			TopRow: SizeRange{
				Width:  IntRange{Min: 40, Max: 70},
				Height: IntRange{Min: 50, Max: 80},
			},
			Palette: []core.Color{
				core.ColorEmerald,
				core.ColorLightGreen,
				core.ColorSeaGreen,
				core.ColorTurquoise,
				core.ColorBlue,
				core.ColorPurple,
			},
			GoalColor:    core.ColorWizardGreen,
			WindowChance: 0.7,
		},
		Collectibles: CollectiblesConfig{
			Count:             12,
			CaptureRadius:     25,
			Points:            100,
			AllCollectedBonus: 500,
			Bounds:            Extent{HalfWidth: 500, HalfHeight: 350},
		},
		Walk: WalkConfig{
			Steps:        180,
			Start:        Point{X: -500, Y: -350},
			Heading:      0,
			TurnChance:   0.32,
			TurnAngles:   []int{-50, -35, -20, -10, 10, 20, 35, 50},
			Distance:     IntRange{Min: 18, Max: 38},
			TurnPoints:   10,
			TrailStart:   core.ColorBrick,
			TrailEvery:   5,
			TrailPalette: []core.Color{core.ColorGold, core.ColorOrange, core.ColorYellow, core.ColorGold},
			Bounds:       Extent{HalfWidth: 580, HalfHeight: 430},
			BounceJitter: 35,
			BouncePoints: 25,
		},
		Goal: GoalConfig{
			Radius:        60,
			Points:        500,
			PerfectPoints: 1000,
		},
		Effects: EffectsConfig{
			Normal: BurstConfig{
				Particles: IntRange{Min: 8, Max: 15},
				Length:    IntRange{Min: 20, Max: 60},
			},
			Mega: BurstConfig{
				Particles: IntRange{Min: 12, Max: 20},
				Length:    IntRange{Min: 25, Max: 70},
			},
			Palette: []core.Color{
				core.ColorGold,
				core.ColorLamp,
				core.ColorPaleYellow,
				core.ColorWhite,
				core.ColorLavender,
				core.ColorOrchid,
				core.ColorGem,
			},
			VictoryBursts: 8,
			RingBase:      50,
			RingStep:      20,
		},
		Pacing: PacingConfig{
			RedrawEvery: 3,
			FrameDelay:  40 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default scene YAML.
func DefaultYAML() []byte {
	return defaultSceneYAML
}
