package systems

import (
	"math"
	"testing"

	"github.com/palegrove/cardfan/components"
)

// TestSpringsWaitForFirstTarget verifies cards do not move before the layout
// has placed them.
func TestSpringsWaitForFirstTarget(t *testing.T) {
	tt := newTestTable(3)

	// One short frame, not enough for a logic tick.
	tt.step(1.0 / 240)

	entry := cardEntry(tt, 0)
	if components.Spring.Get(entry).Primed {
		t.Error("Expected springs unprimed before the first layout tick")
	}
	if got := components.Target.Get(entry).Scale; got != 0 {
		t.Errorf("Expected no target before the first tick, got scale %f", got)
	}
}

// TestSpringsSnapOnFirstTarget verifies the first written target is taken
// without a swing-in from the origin.
func TestSpringsSnapOnFirstTarget(t *testing.T) {
	tt := newTestTable(5)

	// Two fine frames cross one logic tick, which writes the first
	// targets and lets the springs snap onto them.
	tt.step(1.0 / 120)
	tt.step(1.0 / 120)

	entry := cardEntry(tt, 3)
	target := components.Target.Get(entry)
	tr := components.Transform.Get(entry)

	if target.Scale == 0 {
		t.Fatal("Expected the first tick to write a layout target")
	}
	if !components.Spring.Get(entry).Primed {
		t.Fatal("Expected the springs primed after the first target")
	}
	if math.Abs(tr.Position.X-target.Position.X) > 1e-9 ||
		math.Abs(tr.Position.Y-target.Position.Y) > 1e-9 ||
		math.Abs(tr.Position.Z-target.Position.Z) > 1e-9 {
		t.Errorf("Expected the first update to snap onto the target: %+v vs %+v", tr.Position, target.Position)
	}
}

// TestSpringsChaseFocusChange verifies a card's transform converges onto its
// new fan pose after the focus moves.
func TestSpringsChaseFocusChange(t *testing.T) {
	tt := newTestTable(5)
	tt.run(0.1)

	tt.deck.SetFocus(3)
	tt.run(2.0)

	entry := cardEntry(tt, 1)
	tr := components.Transform.Get(entry)
	want := CardTarget(1, 3, 5, false, nil)

	if math.Abs(tr.Position.X-want.Position.X) > 0.01 ||
		math.Abs(tr.Position.Y-want.Position.Y) > 0.01 {
		t.Errorf("Expected the transform settled on %+v, got %+v", want.Position, tr.Position)
	}
	if math.Abs(tr.Rotation.Z-want.Rotation.Z) > 0.01 {
		t.Errorf("Expected roll settled on %f, got %f", want.Rotation.Z, tr.Rotation.Z)
	}
	if math.Abs(tr.Scale-want.Scale) > 0.01 {
		t.Errorf("Expected scale settled on %f, got %f", want.Scale, tr.Scale)
	}
}

// TestFlipSpringChasesHalfTurn verifies a flipped card's flip spring heads
// for half a turn and settles there.
func TestFlipSpringChasesHalfTurn(t *testing.T) {
	tt := newTestTable(3)
	tt.run(0.1)

	tt.deck.Flip(1, tt.clock.Elapsed)
	tt.run(3.0)

	spring := components.Spring.Get(cardEntry(tt, 1))
	if math.Abs(spring.Flip.Pos-math.Pi) > 0.02 {
		t.Errorf("Expected the flip spring settled at pi, got %f", spring.Flip.Pos)
	}

	// Flip back: the spring returns to zero.
	tt.deck.Flip(1, tt.clock.Elapsed)
	tt.run(3.0)
	if math.Abs(spring.Flip.Pos) > 0.02 {
		t.Errorf("Expected the flip spring back at zero, got %f", spring.Flip.Pos)
	}
}
