package components

import "github.com/yohamta/donburi"

// DragData is the drag state machine (singleton component). A press on a
// card arms it; crossing the slop distance starts the drag. TargetIndex is
// fixed for the drag's whole duration.
type DragData struct {
	Dragging    bool
	TargetIndex int // -1 when no drag is active

	// Armed press that has not moved far enough to drag yet.
	Armed      bool
	ArmedIndex int
	PressX     float64 // screen pixels
	PressY     float64

	// Dragged stays set after a drag ends and suppresses the click the
	// release also produced. The click handler consumes it.
	Dragged bool

	// Pointer kinematics while dragging. Velocity is the absolute speed in
	// px/ms per axis; Direction carries the sign separately.
	SceneX, SceneY float64
	VelX, VelY     float64
	DirX, DirY     float64
}

var Drag = donburi.NewComponentType[DragData]()

// Reset clears the machine back to idle without touching Dragged.
func (d *DragData) Reset() {
	d.Dragging = false
	d.TargetIndex = -1
	d.Armed = false
	d.ArmedIndex = -1
	d.VelX, d.VelY = 0, 0
	d.DirX, d.DirY = 0, 0
}

// ConsumeDragged reports whether the previous gesture was a drag and clears
// the flag. Callers use it to drop the click that follows a drag release.
func (d *DragData) ConsumeDragged() bool {
	was := d.Dragged
	d.Dragged = false
	return was
}
