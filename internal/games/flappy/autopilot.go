package flappy

// DefaultAutopilotOffset keeps the bird inside a 200 pixel gap with the
// default physics: a jump climbs 96 pixels before the bird falls again.
const DefaultAutopilotOffset = 46

// Autopilot jumps whenever the bird's center sinks Offset pixels or more
// below the center of the next gap.
type Autopilot struct {
	Offset float64
	last   Result
}

// NewAutopilot creates an autopilot with the default offset.
func NewAutopilot() *Autopilot {
	return &Autopilot{Offset: DefaultAutopilotOffset}
}

// Decide implements Controller.
func (a *Autopilot) Decide(obs Observation) Decision {
	birdCenter := obs.BirdY + BirdHeight/2.0
	gapCenter := (obs.GapTop + obs.GapBottom) / 2
	if birdCenter-gapCenter >= a.Offset {
		return DecisionJump
	}
	return DecisionNone
}

// Report implements Controller.
func (a *Autopilot) Report(res Result) {
	a.last = res
}

// Last returns the result of the most recent episode.
func (a *Autopilot) Last() Result {
	return a.last
}
