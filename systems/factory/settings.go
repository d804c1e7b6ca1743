package factory

import (
	"github.com/palegrove/cardfan/archetypes"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings spawns the runtime knobs with their configured defaults.
func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Debug:          cfg.Debug.Overlay,
		CardCount:      cfg.Deck.InitialCards,
		TicksPerSecond: cfg.Clock.TicksPerSecond,
		IdleSpeed:      cfg.Idle.Speed,
		Volume:         cfg.Audio.MasterVolume,
	})
	return settings
}
