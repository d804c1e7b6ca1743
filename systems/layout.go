package systems

import (
	"math"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CardTarget computes the layout pose for one card. The focus card gets the
// focus slot, everyone else fans out below it. The pose only depends on its
// arguments, so the fan math is testable without a world.
func CardTarget(index, focus, count int, hovered bool, m *components.MouseData) components.TargetData {
	if index == focus {
		return focusTarget(hovered, m)
	}
	return fanTarget(index, focus, count, hovered, m)
}

// focusTarget is the enlarged center slot. While hovered the card follows
// the pointer instead of lying flat.
func focusTarget(hovered bool, m *components.MouseData) components.TargetData {
	t := components.TargetData{
		Position: components.Vec3{
			X: cfg.Layout.FocusX,
			Y: cfg.Layout.FocusY,
			Z: cfg.Layout.FocusZ,
		},
		Order: components.RotateXYZ,
		Scale: cfg.Layout.FocusScale,
	}
	if hovered {
		t.Rotation = HoverTilt(components.Vec3{}, m)
		t.Order = components.RotateZXY
	}
	return t
}

// fanTarget arranges a non-focus card along the arc. phase runs from -0.5 at
// the left edge to +0.5 at the right; the arc widens, sags and tilts with
// the number of fanned cards.
func fanTarget(index, focus, count int, hovered bool, m *components.MouseData) components.TargetData {
	num := count - 1

	j := index
	if index > focus {
		j = index - 1
	}

	phase := 0.0
	if num > 1 {
		phase = float64(j)/float64(num-1) - 0.5
	}

	width := float64(num) * cfg.Layout.SpreadPerCard
	height := float64(num) * cfg.Layout.DropPerCard
	tilt := float64(num) * cfg.Layout.TiltPerCard

	pos := components.Vec3{
		X: phase * width,
		Y: cfg.Layout.FanY - math.Abs(phase*height),
		Z: phase * cfg.Layout.DepthPerPhase,
	}
	rot := components.Vec3{Z: -phase * math.Pi * tilt}
	order := components.RotateXYZ

	if hovered {
		pos.Y += cfg.Layout.HoverRaise
		pos.Z += cfg.Layout.HoverForward
		rot = HoverTilt(components.Vec3{}, m)
		order = components.RotateZXY
	}

	return components.TargetData{
		Position: pos,
		Rotation: rot,
		Order:    order,
		Scale:    cfg.Layout.FanScale,
	}
}

// dragTarget makes a card chase the pointer at a fixed forward depth,
// leaning into the drag velocity.
func dragTarget(d *components.DragData) components.TargetData {
	return components.TargetData{
		Position: components.Vec3{X: d.SceneX, Y: d.SceneY, Z: cfg.Drag.Depth},
		Rotation: DragTilt(components.Vec3{}, d, cfg.Drag.TiltFactor, cfg.Drag.RangeFactor),
		Order:    components.RotateXYZ,
		Scale:    cfg.Drag.Scale,
	}
}

// UpdateLayout rewrites every card's target pose. It only runs on logic
// ticks; between ticks the springs keep interpolating toward the last pose.
func UpdateLayout(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)
	if !clock.Ticked {
		return
	}

	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	deck := components.Deck.Get(deckEntry)

	mouseEntry, ok := components.Mouse.First(e.World)
	if !ok {
		return
	}
	mouse := components.Mouse.Get(mouseEntry)

	dragEntry, ok := components.Drag.First(e.World)
	if !ok {
		return
	}
	drag := components.Drag.Get(dragEntry)

	settings := GetOrCreateSettings(e)

	components.Card.Each(e.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		target := components.Target.Get(entry)
		hovered := mouse.HoverIndex == card.Index

		switch {
		case drag.Dragging && drag.TargetIndex == card.Index:
			*target = dragTarget(drag)
		case card.Index == deck.Focus && !hovered:
			*target = IdleTarget(clock.EffectiveTime(), settings.IdleSpeed)
		default:
			*target = CardTarget(card.Index, deck.Focus, len(deck.Cards), hovered, mouse)
		}
	})
}
