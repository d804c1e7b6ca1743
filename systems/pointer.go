package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePointer polls the cursor, projects it into the scene, picks the
// card under it and turns the raw button state into tagged gestures for the
// drag system.
func UpdatePointer(e *ecs.ECS) {
	mouseEntry, ok := components.Mouse.First(e.World)
	if !ok {
		return
	}
	mouse := components.Mouse.Get(mouseEntry)

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)

	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	px, py := ebiten.CursorPosition()
	mouse.PrevScreenX, mouse.PrevScreenY = mouse.ScreenX, mouse.ScreenY
	mouse.ScreenX, mouse.ScreenY = float64(px), float64(py)
	mouse.SceneX, mouse.SceneY = vp.ToScene(mouse.ScreenX, mouse.ScreenY)
	mouse.NormX, mouse.NormY = vp.Norm(mouse.ScreenX, mouse.ScreenY)

	updateVelocity(mouse, clock.FrameDelta())
	pick(e, mouse, input)

	moved := mouse.ScreenX != mouse.PrevScreenX || mouse.ScreenY != mouse.PrevScreenY

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !mouse.UIHover {
		input.Push(components.Gesture{
			Kind:  components.GesturePress,
			Index: mouse.HoverIndex,
			X:     mouse.ScreenX,
			Y:     mouse.ScreenY,
		})
	}
	if moved && mouse.Pressed {
		input.Push(components.Gesture{
			Kind:  components.GestureMove,
			Index: mouse.HoverIndex,
			X:     mouse.ScreenX,
			Y:     mouse.ScreenY,
			NormY: mouse.NormY,
			VelX:  mouse.VelX,
			VelY:  mouse.VelY,
			DirX:  mouse.DirX,
			DirY:  mouse.DirY,
		})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		input.Push(components.Gesture{
			Kind:  components.GestureRelease,
			Index: mouse.HoverIndex,
			X:     mouse.ScreenX,
			Y:     mouse.ScreenY,
			NormY: mouse.NormY,
		})
	}
	mouse.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// updateVelocity folds this frame's travel into the smoothed estimate.
// Direction keeps its last sign while an axis is still.
func updateVelocity(m *components.MouseData, dt float64) {
	dtMs := dt * 1000
	if dtMs <= 0 {
		return
	}
	dx := m.ScreenX - m.PrevScreenX
	dy := m.ScreenY - m.PrevScreenY

	a := cfg.Drag.VelocitySmoothing
	m.VelX = m.VelX*(1-a) + math.Abs(dx)/dtMs*a
	m.VelY = m.VelY*(1-a) + math.Abs(dy)/dtMs*a

	if dx > 0 {
		m.DirX = 1
	} else if dx < 0 {
		m.DirX = -1
	}
	if dy > 0 {
		m.DirY = 1
	} else if dy < 0 {
		m.DirY = -1
	}
}

// pick finds the topmost card under the cursor and fills in the hover
// fields. The resolv check narrows by cell; the exact bounds test decides,
// with the highest card winning where the fan overlaps.
func pick(e *ecs.ECS, mouse *components.MouseData, input *components.InputData) {
	prev := mouse.HoverIndex
	mouse.HoverIndex = -1
	mouse.LocalX, mouse.LocalY = 0, 0
	mouse.ExtentLeft, mouse.ExtentRight = 0, 0
	mouse.ExtentUp, mouse.ExtentDown = 0, 0

	if !mouse.UIHover {
		if best, bestObj := pickObject(e, mouse.ScreenX, mouse.ScreenY); best >= 0 {
			mouse.HoverIndex = best

			cx := bestObj.X + bestObj.W/2
			cy := bestObj.Y + bestObj.H/2
			mouse.LocalX = mouse.ScreenX - cx
			mouse.LocalY = cy - mouse.ScreenY
			mouse.ExtentLeft = cx - bestObj.X
			mouse.ExtentRight = bestObj.X + bestObj.W - cx
			mouse.ExtentUp = cy - bestObj.Y
			mouse.ExtentDown = bestObj.Y + bestObj.H - cy
		}
	}

	if mouse.HoverIndex != prev {
		if prev >= 0 {
			input.Push(components.Gesture{Kind: components.GestureOut, Index: prev})
		}
		if mouse.HoverIndex >= 0 {
			input.Push(components.Gesture{Kind: components.GestureOver, Index: mouse.HoverIndex})
		}
	}
}

func pickObject(e *ecs.ECS, px, py float64) (int, *resolv.Object) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return -1, nil
	}
	space := components.Space.Get(spaceEntry)
	if space.Pointer == nil {
		return -1, nil
	}

	space.Pointer.X, space.Pointer.Y = px, py
	space.Pointer.Update()

	check := space.Pointer.Check(0, 0, tags.ResolvCard)
	if check == nil {
		return -1, nil
	}

	best := -1
	bestZ := math.Inf(-1)
	var bestObj *resolv.Object
	for _, obj := range check.Objects {
		if px < obj.X || px > obj.X+obj.W || py < obj.Y || py > obj.Y+obj.H {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		idx := components.Card.Get(entry).Index
		z := effectiveZ(components.Spring.Get(entry))
		if best < 0 || z > bestZ || (z == bestZ && idx > best) {
			best = idx
			bestZ = z
			bestObj = obj
		}
	}
	return best, bestObj
}

// effectiveZ is the depth a card renders and picks at: its position spring
// plus the bump lift.
func effectiveZ(s *components.SpringData) float64 {
	return s.Position[2].Pos + s.Lift.Pos
}
