package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	Context    *audio.Context
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
