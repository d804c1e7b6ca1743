package components

import "github.com/yohamta/donburi"

// ViewportData maps scene units onto window pixels (singleton component).
// The scene is orthographic: x right, y up, z toward the viewer. Depth only
// affects draw scale and order.
type ViewportData struct {
	ScreenW, ScreenH float64
	PxPerUnit        float64

	// Scene point projected onto the window center.
	CenterX, CenterY float64

	DepthScaleGain float64
}

var Viewport = donburi.NewComponentType[ViewportData]()

// ToScreen projects a scene position onto window pixels.
func (v *ViewportData) ToScreen(p Vec3) (float64, float64) {
	x := v.ScreenW/2 + (p.X-v.CenterX)*v.PxPerUnit
	y := v.ScreenH/2 - (p.Y-v.CenterY)*v.PxPerUnit
	return x, y
}

// ToScene unprojects window pixels onto the z=0 scene plane.
func (v *ViewportData) ToScene(px, py float64) (float64, float64) {
	x := v.CenterX + (px-v.ScreenW/2)/v.PxPerUnit
	y := v.CenterY - (py-v.ScreenH/2)/v.PxPerUnit
	return x, y
}

// Norm maps window pixels onto -1..1 per axis, +1 at the top and right.
func (v *ViewportData) Norm(px, py float64) (float64, float64) {
	nx := (px - v.ScreenW/2) / (v.ScreenW / 2)
	ny := -(py - v.ScreenH/2) / (v.ScreenH / 2)
	return nx, ny
}

// DepthScale is the draw scale gain for a card at depth z.
func (v *ViewportData) DepthScale(z float64) float64 {
	s := 1 + z*v.DepthScaleGain
	if s < 0.05 {
		s = 0.05
	}
	return s
}
