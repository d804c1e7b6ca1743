package systems

import (
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, creating it with the
// config defaults on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	ent := e.World.Entry(e.World.Create(components.Settings))
	components.Settings.SetValue(ent, components.SettingsData{
		CardCount:      cfg.Deck.InitialCards,
		TicksPerSecond: cfg.Clock.TicksPerSecond,
		IdleSpeed:      cfg.Idle.Speed,
		Volume:         cfg.Audio.MasterVolume,
		Debug:          cfg.Debug.Overlay,
	})
	return components.Settings.Get(ent)
}

// AdjustCards redeals with delta more (or fewer) cards.
func AdjustCards(e *ecs.ECS, delta int) {
	st := GetOrCreateSettings(e)
	Redeal(e, st.CardCount+delta)
	SaveSettingsFromECS(e)
}

// AdjustTickRate changes the logic tick rate within the supported range.
// The springs keep running at render rate either way.
func AdjustTickRate(e *ecs.ECS, delta float64) {
	st := GetOrCreateSettings(e)
	st.TicksPerSecond = clampF(st.TicksPerSecond+delta, cfg.Clock.MinTicksPerSecond, cfg.Clock.MaxTicksPerSecond)
	if clockEntry, ok := components.Clock.First(e.World); ok {
		components.Clock.Get(clockEntry).TicksPerSecond = st.TicksPerSecond
	}
	SaveSettingsFromECS(e)
}

// AdjustIdleSpeed changes how fast the focus card sways.
func AdjustIdleSpeed(e *ecs.ECS, delta float64) {
	st := GetOrCreateSettings(e)
	st.IdleSpeed = clampF(st.IdleSpeed+delta, cfg.UI.MinIdleSpeed, cfg.UI.MaxIdleSpeed)
	SaveSettingsFromECS(e)
}

// AdjustVolume changes the master volume.
func AdjustVolume(e *ecs.ECS, delta float64) {
	st := GetOrCreateSettings(e)
	st.Volume = clampF(st.Volume+delta, 0, 1)
	SaveSettingsFromECS(e)
}

func ToggleMute(e *ecs.ECS) {
	st := GetOrCreateSettings(e)
	st.Muted = !st.Muted
	SaveSettingsFromECS(e)
}

func ToggleDebug(e *ecs.ECS) {
	st := GetOrCreateSettings(e)
	st.Debug = !st.Debug
	SaveSettingsFromECS(e)
}

func TogglePanel(e *ecs.ECS) {
	st := GetOrCreateSettings(e)
	st.PanelVisible = !st.PanelVisible
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
