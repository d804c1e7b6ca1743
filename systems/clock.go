package systems

import (
	"github.com/palegrove/cardfan/components"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock moves the clock to now and decides whether this frame
// crosses a tick boundary. While paused the pause time is folded into
// AnimOffset so the idle timeline stands still without jumping on resume.
func AdvanceClock(c *components.ClockData, now float64, paused bool) bool {
	c.PrevElapsed = c.Elapsed
	c.Elapsed = now

	if paused {
		c.AnimOffset += c.Elapsed - c.PrevElapsed
	}

	c.Ticked = false
	if c.TicksPerSecond > 0 && c.Elapsed-c.LastTick >= 1.0/c.TicksPerSecond {
		c.Tick++
		c.LastTick = c.Elapsed
		c.Ticked = true
	}
	return c.Ticked
}

// FocusPaused reports whether the focus card is hovered or being dragged.
// Both pause its idle cycle.
func FocusPaused(deck *components.DeckData, mouse *components.MouseData, drag *components.DragData) bool {
	if len(deck.Cards) == 0 {
		return false
	}
	if drag.Dragging && drag.TargetIndex == deck.Focus {
		return true
	}
	return mouse.HoverIndex >= 0 && mouse.HoverIndex == deck.Focus
}

// UpdateClock advances the frame clock. It runs after the input systems so
// the pause state reflects this frame's hover and drag.
func UpdateClock(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	mouseEntry, ok := components.Mouse.First(e.World)
	if !ok {
		return
	}
	dragEntry, ok := components.Drag.First(e.World)
	if !ok {
		return
	}

	paused := FocusPaused(
		components.Deck.Get(deckEntry),
		components.Mouse.Get(mouseEntry),
		components.Drag.Get(dragEntry),
	)
	AdvanceClock(clock, clock.Seconds(), paused)
}
