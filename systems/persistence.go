package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/palegrove/cardfan/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	CardCount      int     `json:"cardCount"`
	TicksPerSecond float64 `json:"ticksPerSecond"`
	IdleSpeed      float64 `json:"idleSpeed"`
	Volume         float64 `json:"volume"`
	Muted          bool    `json:"muted"`
	Debug          bool    `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "cardfan",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveSettingsFromECS snapshots the settings component to disk.
func SaveSettingsFromECS(e *ecs.ECS) {
	st := GetOrCreateSettings(e)
	_ = SaveSettings(&SavedSettings{
		CardCount:      st.CardCount,
		TicksPerSecond: st.TicksPerSecond,
		IdleSpeed:      st.IdleSpeed,
		Volume:         st.Volume,
		Muted:          st.Muted,
		Debug:          st.Debug,
	})
}

// ApplySavedSettings copies loaded settings onto the settings component,
// clamping anything the file holds out of range.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	st := GetOrCreateSettings(e)

	if saved.CardCount != 0 {
		n := saved.CardCount
		if n < cfg.Deck.MinCards {
			n = cfg.Deck.MinCards
		}
		if n > cfg.Deck.MaxCards {
			n = cfg.Deck.MaxCards
		}
		st.CardCount = n
	}
	if saved.TicksPerSecond > 0 {
		st.TicksPerSecond = clampF(saved.TicksPerSecond, cfg.Clock.MinTicksPerSecond, cfg.Clock.MaxTicksPerSecond)
	}
	if saved.IdleSpeed > 0 {
		st.IdleSpeed = clampF(saved.IdleSpeed, cfg.UI.MinIdleSpeed, cfg.UI.MaxIdleSpeed)
	}
	st.Volume = clampF(saved.Volume, 0, 1)
	st.Muted = saved.Muted
	st.Debug = saved.Debug
}
