package components

import "github.com/yohamta/donburi"

// SpringState is one damped spring: current value and velocity.
type SpringState struct {
	Pos float64
	Vel float64
}

// SpringData holds the per-card springs. Position, rotation and scale chase
// the layout target; Flip chases the card's flip angle and Lift chases the
// deck's bump height, each on its own tuning profile.
type SpringData struct {
	Position [3]SpringState
	Rotation [3]SpringState
	Scale    SpringState

	Flip SpringState
	Lift SpringState

	// Primed is false until the first layout target exists; the first
	// spring update snaps onto it instead of swinging in from zero.
	Primed bool
}

var Spring = donburi.NewComponentType[SpringData]()

// SnapTo drops all springs onto the target pose with zero velocity.
func (s *SpringData) SnapTo(t *TargetData) {
	s.Position[0] = SpringState{Pos: t.Position.X}
	s.Position[1] = SpringState{Pos: t.Position.Y}
	s.Position[2] = SpringState{Pos: t.Position.Z}
	s.Rotation[0] = SpringState{Pos: t.Rotation.X}
	s.Rotation[1] = SpringState{Pos: t.Rotation.Y}
	s.Rotation[2] = SpringState{Pos: t.Rotation.Z}
	s.Scale = SpringState{Pos: t.Scale}
	s.Flip = SpringState{}
	s.Lift = SpringState{}
}
