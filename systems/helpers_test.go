package systems

import (
	"math"
	"time"

	"github.com/palegrove/cardfan/components"
	"github.com/palegrove/cardfan/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testTable is a table world on a scripted clock. Systems that poll real
// devices are left out; tests feed gestures straight into the input queue
// and hover state straight into the mouse component.
type testTable struct {
	ecs *ecs.ECS

	clock *components.ClockData
	deck  *components.DeckData
	mouse *components.MouseData
	drag  *components.DragData
	input *components.InputData
	vp    *components.ViewportData

	now float64
}

func newTestTable(cards int) *testTable {
	e := ecs.NewECS(donburi.NewWorld())

	vpEntry := factory.CreateViewport(e, 960, 640)
	clockEntry := factory.CreateClock(e)
	mouseEntry := factory.CreateMouse(e)
	dragEntry := factory.CreateDrag(e)
	inputEntry := factory.CreateInput(e)
	deckEntry := factory.CreateDeck(e, cards)
	factory.CreateCards(e, cards)

	tt := &testTable{
		ecs:   e,
		clock: components.Clock.Get(clockEntry),
		deck:  components.Deck.Get(deckEntry),
		mouse: components.Mouse.Get(mouseEntry),
		drag:  components.Drag.Get(dragEntry),
		input: components.Input.Get(inputEntry),
		vp:    components.Viewport.Get(vpEntry),
	}

	start := time.Unix(0, 0)
	tt.clock.Start = start
	tt.clock.Now = func() time.Time {
		// Round to the nearest nanosecond: truncating would land frames
		// that sum to an exact tick boundary a fraction short of it.
		return start.Add(time.Duration(math.Round(tt.now * float64(time.Second))))
	}
	return tt
}

// step advances the scripted clock by dt seconds and runs one frame in the
// scene's system order.
func (tt *testTable) step(dt float64) {
	tt.now += dt
	UpdateDrag(tt.ecs)
	UpdateClock(tt.ecs)
	UpdateIdle(tt.ecs)
	UpdateLayout(tt.ecs)
	UpdateDeck(tt.ecs)
	UpdateSprings(tt.ecs)
	UpdateDeal(tt.ecs)
}

// run steps the table for seconds of scripted time at 120 frames a second.
func (tt *testTable) run(seconds float64) {
	const dt = 1.0 / 120
	for t := 0.0; t < seconds; t += dt {
		tt.step(dt)
	}
}

// press, move and release feed one gesture each, mirroring what the pointer
// system would emit.
func (tt *testTable) press(index int, x, y float64) {
	tt.input.Push(components.Gesture{Kind: components.GesturePress, Index: index, X: x, Y: y})
}

func (tt *testTable) move(index int, x, y float64) {
	tt.input.Push(components.Gesture{Kind: components.GestureMove, Index: index, X: x, Y: y})
}

func (tt *testTable) release(index int, x, y float64) {
	_, ny := tt.vp.Norm(x, y)
	tt.input.Push(components.Gesture{Kind: components.GestureRelease, Index: index, X: x, Y: y, NormY: ny})
}

// cardEntry finds the card entity holding the given deck index.
func cardEntry(tt *testTable, index int) *donburi.Entry {
	var found *donburi.Entry
	components.Card.Each(tt.ecs.World, func(entry *donburi.Entry) {
		if components.Card.Get(entry).Index == index {
			found = entry
		}
	})
	return found
}

// countCards counts the live card entities.
func countCards(tt *testTable) int {
	n := 0
	components.Card.Each(tt.ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}
