package components

import "github.com/yohamta/donburi"

// MouseData is the polled pointer state (singleton component). Screen
// coordinates are pixels with y down, scene coordinates are scene units with
// y up, normalized coordinates span -1..1 with +1 at the top edge.
type MouseData struct {
	ScreenX, ScreenY float64
	SceneX, SceneY   float64
	NormX, NormY     float64

	Pressed bool

	// Hover target, -1 when the pointer is over the table.
	HoverIndex int

	// Pointer offset from the hovered card's center in pixels, y up, and
	// the card's picking extents per side. HoverTilt normalizes the offset
	// by the extent on the matching side.
	LocalX, LocalY float64
	ExtentLeft     float64
	ExtentRight    float64
	ExtentUp       float64
	ExtentDown     float64

	// UIHover is set while the pointer is over the settings panel; card
	// picking is suppressed for those frames.
	UIHover bool

	// Smoothed pointer speed in px/ms per axis, absolute value, with the
	// travel sign carried separately. Fed into drag gestures.
	VelX, VelY float64
	DirX, DirY float64

	PrevScreenX, PrevScreenY float64
}

var Mouse = donburi.NewComponentType[MouseData]()

// HoverNormX is the horizontal pointer offset normalized to -1..1 by the
// extent on the side the pointer is on. Zero when the card has no extent.
func (m *MouseData) HoverNormX() float64 {
	if m.LocalX >= 0 {
		if m.ExtentRight <= 0 {
			return 0
		}
		return clampUnit(m.LocalX / m.ExtentRight)
	}
	if m.ExtentLeft <= 0 {
		return 0
	}
	return clampUnit(m.LocalX / m.ExtentLeft)
}

// HoverNormY is the vertical pointer offset normalized to -1..1, y up.
func (m *MouseData) HoverNormY() float64 {
	if m.LocalY >= 0 {
		if m.ExtentUp <= 0 {
			return 0
		}
		return clampUnit(m.LocalY / m.ExtentUp)
	}
	if m.ExtentDown <= 0 {
		return 0
	}
	return clampUnit(m.LocalY / m.ExtentDown)
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
