package factory

import (
	"time"

	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock spawns the frame clock with the wall clock as its time source.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		TicksPerSecond: cfg.Clock.TicksPerSecond,
		Start:          time.Now(),
		Now:            time.Now,
	})
	return clock
}
