package sim

import (
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/core"
)

// Scene is everything laid out before the walk starts.
type Scene struct {
	Buildings    []Building
	GoalIndex    int
	Collectibles []Collectible
}

// Goal returns the Wizard's building.
func (s *Scene) Goal() Building {
	return s.Buildings[s.GoalIndex]
}

// NewScene builds the city grid, picks the goal building uniformly at random
// and scatters the emeralds uniformly inside the configured bounds.
//
// Buildings are placed one per grid cell, so they never overlap as long as
// the cell sizes stay below the grid spacing; no collision check is made.
func NewScene(cfg config.SceneConfig, src Source) *Scene {
	city := cfg.City
	scene := &Scene{}

	for i := city.ColMin; i <= city.ColMax; i++ {
		for j := city.RowMin; j <= city.RowMax; j++ {
			size := city.Regular
			if j == city.RowMax {
				size = city.TopRow
			}
			w := Between(src, size.Width.Min, size.Width.Max)
			h := Between(src, size.Height.Min, size.Height.Max)
			scene.Buildings = append(scene.Buildings, Building{
				Rect:  core.NewRect(float64(i)*city.Spacing, float64(j)*city.Spacing, float64(w), float64(h)),
				Color: Pick(src, city.Palette),
			})
		}
	}

	scene.GoalIndex = src.Intn(len(scene.Buildings))
	goal := &scene.Buildings[scene.GoalIndex]
	goal.IsGoal = true
	goal.Color = city.GoalColor

	bounds := cfg.Collectibles.Bounds
	hw, hh := int(bounds.HalfWidth), int(bounds.HalfHeight)
	for id := 0; id < cfg.Collectibles.Count; id++ {
		scene.Collectibles = append(scene.Collectibles, Collectible{
			ID:  id,
			Pos: core.V(float64(Between(src, -hw, hw)), float64(Between(src, -hh, hh))),
		})
	}

	return scene
}
