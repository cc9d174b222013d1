// Package sim is the pure simulation of the Emerald City walk: the city
// layout, the emeralds, the wandering agent and the score. It performs no
// I/O; presentation happens in observers notified at well-defined points.
package sim

import (
	"github.com/vovakirdan/emerald-city/internal/core"
)

// Building is one rectangle of the city grid. Immutable once created.
type Building struct {
	Rect   core.Rect
	Color  core.Color
	IsGoal bool
}

// Center returns the middle of the building, used for the goal proximity check.
func (b Building) Center() core.Vec {
	return b.Rect.Center()
}

// Collectible is an emerald waiting to be picked up.
type Collectible struct {
	ID  int
	Pos core.Vec
}

// Agent is the wandering roomba that lays the yellow brick road.
type Agent struct {
	Pos     core.Vec
	Heading float64 // Degrees, counter-clockwise from +x, normalized to [0, 360)
	Trail   core.Color
}

// ScoreState is the scoring side of the simulation.
// Score never decreases and GoalFound flips to true at most once.
type ScoreState struct {
	Score               int
	Gathered            int
	GoalFound           bool
	AllCollectedAwarded bool
	Turns               int
	Bounces             int
}

// Summary describes a finished (or aborted) walk.
type Summary struct {
	Score      int
	Gathered   int
	Total      int // Number of emeralds placed at setup
	GoalFound  bool
	Perfect    bool // Every emerald was gathered
	Turns      int
	Bounces    int
	Steps      int // Configured number of steps
	StepsTaken int
	Aborted    bool
}
