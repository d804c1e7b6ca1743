package systems

import (
	"math"
	"testing"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
)

// TestHoverTiltWithoutTarget verifies the base rotation passes through when
// nothing is hovered.
func TestHoverTiltWithoutTarget(t *testing.T) {
	base := components.Vec3{X: 0.1, Y: -0.2, Z: 0.3}

	if got := HoverTilt(base, nil); got != base {
		t.Errorf("Expected the base rotation with no mouse, got %+v", got)
	}
	m := &components.MouseData{HoverIndex: -1}
	if got := HoverTilt(base, m); got != base {
		t.Errorf("Expected the base rotation with no hover target, got %+v", got)
	}
}

// TestHoverTiltEdges verifies the card edge is always full tilt whatever the
// picking extents are, and offsets past the edge clamp.
func TestHoverTiltEdges(t *testing.T) {
	m := &components.MouseData{
		HoverIndex:  0,
		ExtentLeft:  40,
		ExtentRight: 60,
		ExtentUp:    80,
		ExtentDown:  70,
	}

	// Pointer on the right edge: full yaw, no pitch.
	m.LocalX, m.LocalY = 60, 0
	got := HoverTilt(components.Vec3{}, m)
	if math.Abs(got.Y-cfg.Hover.YawRange) > 1e-9 {
		t.Errorf("Expected full yaw %f at the right edge, got %f", cfg.Hover.YawRange, got.Y)
	}
	if got.X != 0 {
		t.Errorf("Expected no pitch from a horizontal offset, got %f", got.X)
	}

	// Pointer on the top edge: the card pitches away.
	m.LocalX, m.LocalY = 0, 80
	got = HoverTilt(components.Vec3{}, m)
	if math.Abs(got.X+cfg.Hover.PitchRange) > 1e-9 {
		t.Errorf("Expected pitch %f at the top edge, got %f", -cfg.Hover.PitchRange, got.X)
	}

	// Far past the left edge: the tilt clamps instead of growing.
	m.LocalX, m.LocalY = -400, 0
	got = HoverTilt(components.Vec3{}, m)
	if math.Abs(got.Y+cfg.Hover.YawRange) > 1e-9 {
		t.Errorf("Expected yaw clamped to %f, got %f", -cfg.Hover.YawRange, got.Y)
	}
}

// TestHoverTiltZeroExtent verifies a degenerate picking box tilts nothing
// instead of dividing by zero.
func TestHoverTiltZeroExtent(t *testing.T) {
	m := &components.MouseData{HoverIndex: 0, LocalX: 10, LocalY: -10}

	got := HoverTilt(components.Vec3{}, m)
	if got != (components.Vec3{}) {
		t.Errorf("Expected no tilt with zero extents, got %+v", got)
	}
}

// TestDragTiltClamp verifies violent pointer moves pin the tilt at the clamp
// with the travel sign intact, and a still pointer adds nothing.
func TestDragTiltClamp(t *testing.T) {
	d := &components.DragData{VelX: 50, DirX: 1, VelY: 50, DirY: -1}

	got := DragTilt(components.Vec3{}, d, cfg.Drag.TiltFactor, cfg.Drag.RangeFactor)
	lim := cfg.Drag.TiltClamp * cfg.Drag.RangeFactor
	if got.Y != lim {
		t.Errorf("Expected yaw pinned at %f, got %f", lim, got.Y)
	}
	if got.X != -lim {
		t.Errorf("Expected pitch pinned at %f, got %f", -lim, got.X)
	}

	still := &components.DragData{}
	if got := DragTilt(components.Vec3{}, still, cfg.Drag.TiltFactor, cfg.Drag.RangeFactor); got != (components.Vec3{}) {
		t.Errorf("Expected no tilt at rest, got %+v", got)
	}
}

// TestDragTiltProportional verifies a gentle move tilts proportionally under
// the clamp.
func TestDragTiltProportional(t *testing.T) {
	d := &components.DragData{VelX: 0.5, DirX: -1}

	got := DragTilt(components.Vec3{}, d, cfg.Drag.TiltFactor, cfg.Drag.RangeFactor)
	want := -0.5 * cfg.Drag.TiltFactor
	if math.Abs(got.Y-want) > 1e-9 {
		t.Errorf("Expected yaw %f, got %f", want, got.Y)
	}
	if got.X != 0 {
		t.Errorf("Expected no pitch without vertical travel, got %f", got.X)
	}
}
