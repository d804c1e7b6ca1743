package components

import "github.com/yohamta/donburi"

// IdleData tracks the sway cycle between ticks so the flip trigger can
// detect an upward crossing (singleton component).
type IdleData struct {
	PrevCycle float64
}

var Idle = donburi.NewComponentType[IdleData]()
