package systems

import (
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
)

// HoverTilt leans a card toward the pointer. The pointer offset is
// normalized by the card's picking extent on the side the pointer is on, so
// the edge of the card is always full tilt. Without a hover target the base
// rotation comes back untouched. Callers apply the result in Z,X,Y order.
func HoverTilt(base components.Vec3, m *components.MouseData) components.Vec3 {
	if m == nil || m.HoverIndex < 0 {
		return base
	}
	nx := m.HoverNormX()
	ny := m.HoverNormY()
	return components.Vec3{
		X: base.X - ny*cfg.Hover.PitchRange,
		Y: base.Y + nx*cfg.Hover.YawRange,
		Z: base.Z,
	}
}

// DragTilt leans a card into its drag velocity. Each axis contribution is
// velocity times direction times factor, clamped so violent moves cannot
// spin the card.
func DragTilt(base components.Vec3, d *components.DragData, factor, rangeFactor float64) components.Vec3 {
	lim := cfg.Drag.TiltClamp * rangeFactor
	return components.Vec3{
		X: base.X + clampAbs(d.VelY*d.DirY*factor, lim),
		Y: base.Y + clampAbs(d.VelX*d.DirX*factor, lim),
		Z: base.Z,
	}
}

func clampAbs(v, lim float64) float64 {
	if v > lim {
		return lim
	}
	if v < -lim {
		return -lim
	}
	return v
}
