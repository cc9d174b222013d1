package sim

// Snapshot captures the complete walk state for determinism testing and replay.
type Snapshot struct {
	Step      int
	X, Y      float64
	Heading   float64
	Trail     string
	Score     int
	Gathered  int
	Remaining int
	GoalFound bool
	Turns     int
	Bounces   int
	Aborted   bool
}

// Snapshot returns the current walk snapshot.
func (w *Walker) Snapshot() Snapshot {
	return Snapshot{
		Step:      w.step,
		X:         w.agent.Pos.X,
		Y:         w.agent.Pos.Y,
		Heading:   w.agent.Heading,
		Trail:     w.agent.Trail.String(),
		Score:     w.score.Score,
		Gathered:  w.score.Gathered,
		Remaining: len(w.remaining),
		GoalFound: w.score.GoalFound,
		Turns:     w.score.Turns,
		Bounces:   w.score.Bounces,
		Aborted:   w.aborted,
	}
}
