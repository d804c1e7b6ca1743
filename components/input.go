package components

import (
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
)

// GestureKind tags one pointer gesture.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GesturePress
	GestureMove
	GestureRelease
	GestureOver
	GestureOut
)

// Gesture is one tagged pointer event. The input system appends gestures in
// the order they happened; the drag system drains them every frame.
type Gesture struct {
	Kind  GestureKind
	Index int // card index under the pointer, -1 for the table

	X, Y  float64 // screen pixels
	NormY float64 // normalized y at the event, +1 at the top edge

	VelX, VelY float64 // absolute pointer speed, px/ms
	DirX, DirY float64 // travel sign per axis
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the pending pointer gestures (singleton component).
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Pending []Gesture
}

var Input = donburi.NewComponentType[InputData]()

// Push appends a gesture to the pending queue.
func (in *InputData) Push(g Gesture) {
	in.Pending = append(in.Pending, g)
}

// Drain returns the pending gestures and truncates the queue for reuse.
func (in *InputData) Drain() []Gesture {
	p := in.Pending
	in.Pending = in.Pending[:0]
	return p
}
