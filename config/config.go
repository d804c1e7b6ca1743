package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer every renderer registers on.
const Default ecs.LayerID = 0

// LayoutConfig contains the fan geometry constants. All distances are in
// scene units, rotations in radians.
type LayoutConfig struct {
	// Fan shape, scaled by the number of non-focused cards
	SpreadPerCard float64 // horizontal width contribution per card
	DropPerCard   float64 // vertical sag contribution per card
	TiltPerCard   float64 // z-rotation contribution per card (multiplied by pi)

	FanY          float64 // resting baseline of the fan
	DepthPerPhase float64 // z offset per unit of phase

	// Hover adjustments for fan cards
	HoverRaise   float64 // added to y while hovered
	HoverForward float64 // added to z while hovered

	// Focus slot
	FocusX     float64
	FocusY     float64
	FocusZ     float64
	FocusScale float64
	FanScale   float64
}

// IdleConfig drives the focus card's idle sway and the periodic flip.
type IdleConfig struct {
	Speed          float64 // radians per second fed to the sway sine
	WobbleRate     float64 // vertical bob frequency, multiple of Speed
	SwayAmplitude  float64 // horizontal travel of the sway
	BobAmplitude   float64 // vertical travel of the bob
	DepthAmplitude float64 // forward travel at sway extremes
	SpinFactor     float64 // y-rotation at sway extremes, multiple of pi

	WarmupSeconds float64 // no flips before this much effective time
	FlipPhase     float64 // sway value whose upward crossing triggers a flip
}

// HoverConfig shapes the pointer-follow tilt of a hovered card.
type HoverConfig struct {
	PitchRange float64 // max x-rotation, radians
	YawRange   float64 // max y-rotation, radians
}

// DragConfig contains the drag state machine thresholds and tilt response.
type DragConfig struct {
	StartSlop     float64 // pixels of travel before a press becomes a drag
	DropThreshold float64 // normalized y above which a release refocuses

	TiltFactor  float64 // radians per px/ms of pointer velocity
	RangeFactor float64 // scales the tilt clamp
	TiltClamp   float64 // per-axis clamp, multiplied by RangeFactor

	Depth             float64 // z while a card is dragged
	Scale             float64 // draw scale while a card is dragged
	VelocitySmoothing float64 // EMA factor for the velocity estimate
}

// DeckConfig contains the card store defaults and the bump behavior.
type DeckConfig struct {
	InitialCards int
	MinCards     int
	MaxCards     int

	LiftHeight     float64 // z pop applied by a bump
	LiftResetDelay float64 // seconds until a bump settles back to zero
}

// ClockConfig contains the logic tick defaults.
type ClockConfig struct {
	TicksPerSecond    float64
	MinTicksPerSecond float64
	MaxTicksPerSecond float64
}

// SpringProfile parameterizes one harmonica spring.
type SpringProfile struct {
	Frequency float64 // angular frequency, higher is stiffer
	Damping   float64 // damping ratio, 1 is critical
}

// SpringsConfig holds the motion profiles. Layout repositioning is stiff and
// nearly critical, flips are soft and heavy, lifts overshoot on purpose.
type SpringsConfig struct {
	Layout SpringProfile
	Flip   SpringProfile
	Lift   SpringProfile

	MaxFrameDelta float64 // seconds, clamps spring integration after a stall
}

// DealConfig shapes the entrance animation after a (re)deal.
type DealConfig struct {
	Duration float64 // seconds per card
	Stagger  float64 // seconds between consecutive cards
}

// ViewportConfig maps scene units onto the window.
type ViewportConfig struct {
	SceneHeight float64 // vertical scene units visible in the window
	CameraX     float64 // scene point at the window center
	CameraY     float64

	CardWidth  float64 // card quad size in scene units
	CardHeight float64

	DepthScaleGain float64 // draw scale gain per scene unit of z

	ShadowDrop  float64 // screen-space shadow offset in scene units
	ShadowAlpha float32
}

// UIConfig contains HUD and settings panel layout values.
type UIConfig struct {
	Margin      float64
	LineHeight  float64
	PanelWidth  int
	PanelPad    int
	RowSpacing  int
	ButtonWidth int

	CardStep      int
	TickStep      float64
	IdleSpeedStep float64
	VolumeStep    float64

	MinIdleSpeed float64
	MaxIdleSpeed float64
}

// SoundID identifies one synthesized effect.
type SoundID int

const (
	SoundFlip SoundID = iota
	SoundFocus
	SoundDeal
	SoundDrop
)

// AudioConfig contains the synthesizer and mixer defaults.
type AudioConfig struct {
	SampleRate   int
	MasterVolume float64
	FlipGain     float64
	FocusGain    float64
	DealGain     float64
	DropGain     float64
}

// DebugConfig contains startup debug options.
type DebugConfig struct {
	Overlay bool // start with the collision overlay visible
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Layout LayoutConfig
var Idle IdleConfig
var Hover HoverConfig
var Drag DragConfig
var Deck DeckConfig
var Clock ClockConfig
var Springs SpringsConfig
var Deal DealConfig
var Viewport ViewportConfig
var UI UIConfig
var Audio AudioConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink          = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	Felt         = color.RGBA{R: 24, G: 78, B: 56, A: 255}
	FeltShade    = color.RGBA{R: 16, G: 58, B: 42, A: 255}
	Parchment    = color.RGBA{R: 246, G: 240, B: 226, A: 255}
	Crimson      = color.RGBA{R: 188, G: 44, B: 52, A: 255}
	Navy         = color.RGBA{R: 36, G: 54, B: 112, A: 255}
	Gold         = color.RGBA{R: 222, G: 186, B: 92, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		Title:  "cardfan",
	}

	Layout = LayoutConfig{
		SpreadPerCard: 0.6,
		DropPerCard:   0.05,
		TiltPerCard:   0.005,

		FanY:          -2.25,
		DepthPerPhase: 0.01,

		HoverRaise:   0.1,
		HoverForward: 0.2,

		FocusX:     0,
		FocusY:     0,
		FocusZ:     0.5,
		FocusScale: 1.75,
		FanScale:   1.0,
	}

	Idle = IdleConfig{
		Speed:          0.33,
		WobbleRate:     2.0,
		SwayAmplitude:  1.0,
		BobAmplitude:   0.1,
		DepthAmplitude: 0.25,
		SpinFactor:     0.05,

		WarmupSeconds: 5.0,
		FlipPhase:     0.91,
	}

	Hover = HoverConfig{
		PitchRange: 5 * math.Pi / 180,
		YawRange:   10 * math.Pi / 180,
	}

	Drag = DragConfig{
		StartSlop:     6.0,
		DropThreshold: -0.3,

		TiltFactor:  0.12,
		RangeFactor: 1.0,
		TiltClamp:   0.25,

		Depth:             1.0,
		Scale:             1.1,
		VelocitySmoothing: 0.25,
	}

	Deck = DeckConfig{
		InitialCards: 5,
		MinCards:     1,
		MaxCards:     10,

		LiftHeight:     4.5,
		LiftResetDelay: 0.1,
	}

	Clock = ClockConfig{
		TicksPerSecond:    60,
		MinTicksPerSecond: 10,
		MaxTicksPerSecond: 240,
	}

	Springs = SpringsConfig{
		Layout: SpringProfile{Frequency: 7.0, Damping: 0.7},
		Flip:   SpringProfile{Frequency: 3.2, Damping: 0.95},
		Lift:   SpringProfile{Frequency: 9.0, Damping: 0.5},

		MaxFrameDelta: 0.1,
	}

	Deal = DealConfig{
		Duration: 0.45,
		Stagger:  0.06,
	}

	Viewport = ViewportConfig{
		SceneHeight: 6.5,
		CameraX:     0,
		CameraY:     -0.8,

		CardWidth:  1.2,
		CardHeight: 1.68,

		DepthScaleGain: 0.06,

		ShadowDrop:  0.18,
		ShadowAlpha: 0.35,
	}

	UI = UIConfig{
		Margin:      10,
		LineHeight:  16,
		PanelWidth:  260,
		PanelPad:    12,
		RowSpacing:  8,
		ButtonWidth: 28,

		CardStep:      1,
		TickStep:      10,
		IdleSpeedStep: 0.04,
		VolumeStep:    0.1,

		MinIdleSpeed: 0.05,
		MaxIdleSpeed: 1.2,
	}

	Audio = AudioConfig{
		SampleRate:   44100,
		MasterVolume: 0.8,
		FlipGain:     0.9,
		FocusGain:    0.6,
		DealGain:     0.5,
		DropGain:     0.7,
	}

	Debug = DebugConfig{
		Overlay: false,
	}
}
