package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Vec3 is a position or Euler rotation in scene space. Y points up, Z toward
// the viewer.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// RotateOrder names the intrinsic axis order an Euler rotation is applied in.
type RotateOrder int

const (
	RotateXYZ RotateOrder = iota
	RotateZXY
)

// TransformData is the rendered pose of a card, advanced by the springs every
// frame. Rotation is Euler radians tagged with its application order.
type TransformData struct {
	Position Vec3
	Rotation Vec3
	Order    RotateOrder
	Scale    float64
}

// TargetData is the pose the springs pull toward. Targets are only rewritten
// on logic ticks.
type TargetData struct {
	Position Vec3
	Rotation Vec3
	Order    RotateOrder
	Scale    float64
}

var Transform = donburi.NewComponentType[TransformData]()
var Target = donburi.NewComponentType[TargetData]()
