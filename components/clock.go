package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the frame clock (singleton component). Elapsed times are
// seconds since the scene started. Now is injectable so tests can feed a
// fake timeline.
type ClockData struct {
	Tick           int
	LastTick       float64
	TicksPerSecond float64

	Elapsed     float64
	PrevElapsed float64

	// AnimOffset accumulates the time the focus card spent paused, so the
	// idle cycle resumes where it left off instead of jumping.
	AnimOffset float64

	// Ticked reports whether the current frame crossed a tick boundary.
	// Systems that only run on ticks read it instead of gating themselves.
	Ticked bool

	Start time.Time
	Now   func() time.Time
}

var Clock = donburi.NewComponentType[ClockData]()

// Seconds returns the current time source reading relative to Start.
func (c *ClockData) Seconds() float64 {
	return c.Now().Sub(c.Start).Seconds()
}

// FrameDelta is the wall time the last frame took.
func (c *ClockData) FrameDelta() float64 {
	return c.Elapsed - c.PrevElapsed
}

// EffectiveTime is the timeline the idle cycle runs on. It stands still
// while the focus card is paused.
func (c *ClockData) EffectiveTime() float64 {
	return c.Elapsed - c.AnimOffset
}
