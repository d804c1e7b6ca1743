package systems

import (
	"math"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrag drains the gesture queue and runs the drag state machine. A
// press arms a card, crossing the slop distance starts the drag, and the
// release either drops onto the focus slot or falls through to a click.
func UpdateDrag(e *ecs.ECS) {
	dragEntry, ok := components.Drag.First(e.World)
	if !ok {
		return
	}
	drag := components.Drag.Get(dragEntry)

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	deck := components.Deck.Get(deckEntry)

	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)

	for _, g := range input.Drain() {
		switch g.Kind {
		case components.GesturePress:
			drag.Armed = true
			drag.ArmedIndex = g.Index
			drag.PressX, drag.PressY = g.X, g.Y

		case components.GestureMove:
			handleMove(drag, vp, g)

		case components.GestureRelease:
			handleRelease(e, drag, deck, clock, g)
		}
	}
}

// handleMove promotes an armed press to a drag once the pointer travels
// past the slop distance, then keeps the drag pose fields current. The
// table itself cannot be dragged.
func handleMove(d *components.DragData, vp *components.ViewportData, g components.Gesture) {
	if !d.Dragging {
		if !d.Armed || d.ArmedIndex < 0 {
			return
		}
		if math.Hypot(g.X-d.PressX, g.Y-d.PressY) < cfg.Drag.StartSlop {
			return
		}
		d.Dragging = true
		d.TargetIndex = d.ArmedIndex
	}
	d.SceneX, d.SceneY = vp.ToScene(g.X, g.Y)
	d.VelX, d.VelY = g.VelX, g.VelY
	d.DirX, d.DirY = g.DirX, g.DirY
}

// handleRelease ends an active drag, dropping the card onto the focus slot
// when it was let go high enough, then lets the release fall through to
// the click handler. The Dragged flag makes sure a finished drag never
// doubles as a click.
func handleRelease(e *ecs.ECS, d *components.DragData, deck *components.DeckData, clock *components.ClockData, g components.Gesture) {
	clicked := d.ArmedIndex
	if d.Dragging {
		if d.TargetIndex >= 0 && g.NormY > cfg.Drag.DropThreshold {
			deck.SetFocus(d.TargetIndex)
			PlaySound(e, cfg.SoundDrop)
		}
		d.Dragged = true
	}
	d.Reset()
	handleClick(e, d, deck, clock, clicked)
}

// handleClick dispatches the click a release produced. Clicking the focus
// card flips it, clicking any other card moves the focus there.
func handleClick(e *ecs.ECS, d *components.DragData, deck *components.DeckData, clock *components.ClockData, index int) {
	if d.ConsumeDragged() {
		return
	}
	if index < 0 || index >= len(deck.Cards) {
		return
	}
	if index == deck.Focus {
		deck.Flip(index, clock.Elapsed)
		PlaySound(e, cfg.SoundFlip)
		return
	}
	deck.SetFocus(index)
	PlaySound(e, cfg.SoundFocus)
}
