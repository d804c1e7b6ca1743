package systems

import (
	"bytes"
	"sync"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
	})
}

// PlaySound queues a sound effect. Queuing never touches the audio device,
// so logic code can call it from anywhere.
func PlaySound(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// UpdateAudio drains the queued effects into the mixer. The audio device is
// only created once a sound actually has to play.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	st := GetOrCreateSettings(e)
	if st.Muted || st.Volume <= 0 {
		audioData.PendingSFX = audioData.PendingSFX[:0]
		return
	}

	initGlobalAudio()
	if audioData.Context == nil {
		audioData.Context = globalAudioContext
	}

	for _, soundID := range audioData.PendingSFX {
		playSound(audioData.Context, soundID, st.Volume)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSound(ctx *audio.Context, soundID cfg.SoundID, volume float64) {
	pcm := sfxPCM(soundID)
	if len(pcm) == 0 {
		return
	}
	player, err := ctx.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	player.SetVolume(volume * sfxGain(soundID))
	player.Play()
}

func sfxGain(id cfg.SoundID) float64 {
	switch id {
	case cfg.SoundFlip:
		return cfg.Audio.FlipGain
	case cfg.SoundFocus:
		return cfg.Audio.FocusGain
	case cfg.SoundDeal:
		return cfg.Audio.DealGain
	case cfg.SoundDrop:
		return cfg.Audio.DropGain
	}
	return 1
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. The context stays nil until the first drain needs
// the device.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
