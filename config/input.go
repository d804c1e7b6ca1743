package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFocusPrev
	ActionFocusNext
	ActionFlip
	ActionDeal
	ActionTogglePanel
	ActionToggleDebug
	ActionToggleMute
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key bindings for an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFocusPrev: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			},
			ActionFocusNext: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			},
			ActionFlip: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeySpace},
			},
			ActionDeal: {
				Keys: []ebiten.Key{ebiten.KeyR},
			},
			ActionTogglePanel: {
				Keys: []ebiten.Key{ebiten.KeyTab, ebiten.KeyEscape},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionToggleMute: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
		},
	}
}
