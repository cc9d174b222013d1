// Package effects paints the walk: the city, the yellow brick road, glitter
// bursts and the score overlay. Nothing here feeds back into the simulation.
package effects

import (
	"github.com/vovakirdan/emerald-city/internal/config"
	"github.com/vovakirdan/emerald-city/internal/core"
	"github.com/vovakirdan/emerald-city/internal/sim"
)

// Sparkle lines are traced one unit at a time; after each unit the pen may
// lift (leaving a gap) and, while lifted, may drop a dot.
const (
	gapChance  = 0.35
	dotChance  = 0.2
	dotRadius  = 1.5
	lineWidth  = 1
	maxHeading = 360
)

// MarkKind distinguishes the two glitter primitives.
type MarkKind uint8

const (
	MarkLine MarkKind = iota
	MarkDot
)

// Mark is one glitter stroke or dot in world coordinates.
type Mark struct {
	Kind  MarkKind
	From  core.Vec
	To    core.Vec // Unused for dots
	Color core.Color
}

// Burst generates a glitter explosion at origin. Particle count and length
// come from b; colors are picked from palette. Every mark lies within
// b.Length.Max of origin.
func Burst(origin core.Vec, b config.BurstConfig, palette []core.Color, src sim.Source) []Mark {
	n := sim.Between(src, b.Particles.Min, b.Particles.Max)
	var marks []Mark

	for p := 0; p < n; p++ {
		col := sim.Pick(src, palette)
		angle := float64(src.Intn(maxHeading + 1))
		length := sim.Between(src, b.Length.Min, b.Length.Max)

		pos, start := origin, origin
		penDown := true
		for i := 0; i < length; i++ {
			pos = origin.Forward(angle, float64(i+1))
			if src.Float64() < gapChance {
				if penDown {
					marks = append(marks, Mark{Kind: MarkLine, From: start, To: pos, Color: col})
					penDown = false
				}
				if src.Float64() < dotChance {
					marks = append(marks, Mark{Kind: MarkDot, From: pos, Color: col})
				}
				continue
			}
			if !penDown {
				start = pos
				penDown = true
			}
		}
		if penDown && pos != start {
			marks = append(marks, Mark{Kind: MarkLine, From: start, To: pos, Color: col})
		}
	}

	return marks
}
