package systems

import (
	"testing"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
)

// TestClickMovesFocus verifies a stationary press and release on a fanned
// card brings it into focus without flipping it.
func TestClickMovesFocus(t *testing.T) {
	tt := newTestTable(5)

	tt.press(2, 480, 500)
	tt.step(1.0 / 120)
	tt.release(2, 480, 500)
	tt.step(1.0 / 120)

	if tt.deck.Focus != 2 {
		t.Errorf("Expected focus 2 after clicking card 2, got %d", tt.deck.Focus)
	}
	if tt.deck.Cards[2].Flipped {
		t.Error("Expected a focus click not to flip the card")
	}
}

// TestClickFlipsFocusCard verifies clicking the card already in focus flips
// and bumps it, and the bump settles after its delay.
func TestClickFlipsFocusCard(t *testing.T) {
	tt := newTestTable(5)

	tt.press(0, 480, 200)
	tt.release(0, 480, 200)
	tt.step(1.0 / 120)

	if !tt.deck.Cards[0].Flipped {
		t.Fatal("Expected the focus card flipped after a click")
	}
	if got := tt.deck.Cards[0].Lift; got != cfg.Deck.LiftHeight {
		t.Errorf("Expected lift %f right after the flip, got %f", cfg.Deck.LiftHeight, got)
	}

	tt.run(cfg.Deck.LiftResetDelay + 0.05)
	if got := tt.deck.Cards[0].Lift; got != 0 {
		t.Errorf("Expected the lift settled after the reset delay, got %f", got)
	}
}

// TestDragUpFocuses verifies dragging a fanned card above the drop line
// focuses it and swallows the trailing click.
func TestDragUpFocuses(t *testing.T) {
	tt := newTestTable(5)

	tt.press(3, 600, 520)
	tt.step(1.0 / 120)
	tt.move(3, 600, 400)
	tt.step(1.0 / 120)

	if !tt.drag.Dragging {
		t.Fatal("Expected the drag to start after crossing the slop distance")
	}
	if tt.drag.TargetIndex != 3 {
		t.Fatalf("Expected drag target 3, got %d", tt.drag.TargetIndex)
	}

	tt.release(3, 600, 100)
	tt.step(1.0 / 120)

	if tt.deck.Focus != 3 {
		t.Errorf("Expected focus 3 after dropping high, got %d", tt.deck.Focus)
	}
	if tt.drag.Dragging {
		t.Error("Expected the drag cleared after its release")
	}
	if tt.deck.Cards[3].Flipped {
		t.Error("Expected the swallowed click not to flip the dropped card")
	}
	if tt.drag.Dragged {
		t.Error("Expected the suppression flag consumed by the click")
	}
}

// TestDragDownAborts verifies releasing below the drop line leaves the focus
// alone and still suppresses the click.
func TestDragDownAborts(t *testing.T) {
	tt := newTestTable(5)

	tt.press(3, 600, 520)
	tt.move(3, 580, 560)
	tt.release(3, 560, 600)
	tt.step(1.0 / 120)

	if tt.deck.Focus != 0 {
		t.Errorf("Expected focus unchanged after a low release, got %d", tt.deck.Focus)
	}
	if tt.deck.Cards[3].Flipped {
		t.Error("Expected no flip from an aborted drag")
	}
}

// TestDropThresholdBoundary verifies the drop decision sits exactly on the
// configured line.
func TestDropThresholdBoundary(t *testing.T) {
	tests := []struct {
		name  string
		normY float64
		want  int
	}{
		{"just above", cfg.Drag.DropThreshold + 0.01, 4},
		{"just below", cfg.Drag.DropThreshold - 0.01, 0},
	}
	for _, tc := range tests {
		tt := newTestTable(5)

		tt.press(4, 700, 520)
		tt.move(4, 700, 480)
		tt.input.Push(components.Gesture{
			Kind:  components.GestureRelease,
			Index: 4,
			X:     700,
			Y:     480,
			NormY: tc.normY,
		})
		tt.step(1.0 / 120)

		if tt.deck.Focus != tc.want {
			t.Errorf("%s: expected focus %d, got %d", tc.name, tc.want, tt.deck.Focus)
		}
	}
}

// TestSmallWiggleStaysAClick verifies pointer travel inside the slop never
// becomes a drag.
func TestSmallWiggleStaysAClick(t *testing.T) {
	tt := newTestTable(5)

	tt.press(1, 400, 500)
	tt.move(1, 402, 503)
	tt.step(1.0 / 120)

	if tt.drag.Dragging {
		t.Fatal("Expected a wiggle inside the slop not to start a drag")
	}

	tt.release(1, 402, 503)
	tt.step(1.0 / 120)

	if tt.deck.Focus != 1 {
		t.Errorf("Expected the wiggle to land as a click, got focus %d", tt.deck.Focus)
	}
}

// TestDragTargetStaysLocked verifies the dragged card does not change when
// the pointer crosses other cards mid-drag.
func TestDragTargetStaysLocked(t *testing.T) {
	tt := newTestTable(5)

	tt.press(1, 400, 520)
	tt.move(1, 400, 480)
	tt.step(1.0 / 120)
	tt.move(4, 700, 300)
	tt.step(1.0 / 120)

	if tt.drag.TargetIndex != 1 {
		t.Errorf("Expected the drag locked to card 1, got %d", tt.drag.TargetIndex)
	}

	tt.release(4, 700, 100)
	tt.step(1.0 / 120)

	if tt.deck.Focus != 1 {
		t.Errorf("Expected the locked card focused on drop, got %d", tt.deck.Focus)
	}
}

// TestTablePressDoesNothing verifies pressing the felt arms nothing and the
// release is ignored.
func TestTablePressDoesNothing(t *testing.T) {
	tt := newTestTable(5)

	tt.press(-1, 100, 100)
	tt.move(-1, 300, 300)
	tt.release(-1, 300, 300)
	tt.step(1.0 / 120)

	if tt.drag.Dragging {
		t.Error("Expected no drag from a table press")
	}
	if tt.deck.Focus != 0 {
		t.Errorf("Expected focus unchanged, got %d", tt.deck.Focus)
	}
	if tt.deck.Cards[0].Flipped {
		t.Error("Expected no flip from a table click")
	}
}

// TestRedealResets verifies a redeal clamps the hand size, rebuilds the card
// entities and abandons any drag in flight.
func TestRedealResets(t *testing.T) {
	tt := newTestTable(5)

	// Start a drag so the redeal has something to abandon.
	tt.press(2, 480, 520)
	tt.move(2, 480, 470)
	tt.step(1.0 / 120)
	if !tt.drag.Dragging {
		t.Fatal("Expected a drag in flight before the redeal")
	}

	Redeal(tt.ecs, 99)

	if got := len(tt.deck.Cards); got != cfg.Deck.MaxCards {
		t.Errorf("Expected the hand clamped to %d, got %d", cfg.Deck.MaxCards, got)
	}
	if got := countCards(tt); got != cfg.Deck.MaxCards {
		t.Errorf("Expected %d card entities, got %d", cfg.Deck.MaxCards, got)
	}
	if tt.drag.Dragging || tt.drag.Dragged {
		t.Error("Expected the redeal to abandon the drag")
	}
	if tt.deck.Focus != 0 {
		t.Errorf("Expected focus reset by the redeal, got %d", tt.deck.Focus)
	}

	Redeal(tt.ecs, 0)
	if got := len(tt.deck.Cards); got != cfg.Deck.MinCards {
		t.Errorf("Expected the hand clamped to %d, got %d", cfg.Deck.MinCards, got)
	}
	if got := countCards(tt); got != cfg.Deck.MinCards {
		t.Errorf("Expected %d card entities, got %d", cfg.Deck.MinCards, got)
	}
}
