package components

import "github.com/yohamta/donburi"

// SettingsData holds the runtime-adjustable knobs (singleton component).
// The settings panel and keyboard shortcuts edit it, the persistence system
// saves it, and the clock, idle and audio systems read it.
type SettingsData struct {
	PanelVisible bool
	Debug        bool

	CardCount      int
	TicksPerSecond float64
	IdleSpeed      float64

	Volume float64
	Muted  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
