package components

import "testing"

// TestDeckSetCards verifies a redeal replaces the store, resets the focus
// and discards pending lift resets.
func TestDeckSetCards(t *testing.T) {
	d := &DeckData{LiftHeight: 4.5, LiftResetDelay: 0.1}
	d.SetCards(5)
	d.SetFocus(3)
	d.Flip(3, 1.0)

	d.SetCards(2)

	if len(d.Cards) != 2 {
		t.Fatalf("Expected 2 cards, got %d", len(d.Cards))
	}
	if d.Focus != 0 {
		t.Errorf("Expected focus reset to 0, got %d", d.Focus)
	}
	for i, c := range d.Cards {
		if c.Flipped || c.Lift != 0 {
			t.Errorf("Expected card %d fresh, got %+v", i, c)
		}
	}
	if d.PendingLifts() != 0 {
		t.Errorf("Expected pending lifts discarded, got %d", d.PendingLifts())
	}
}

// TestDeckFocusBounds verifies out-of-range focus moves are ignored.
func TestDeckFocusBounds(t *testing.T) {
	d := &DeckData{}
	d.SetCards(3)
	d.SetFocus(2)

	d.SetFocus(-1)
	if d.Focus != 2 {
		t.Errorf("Expected a negative focus ignored, got %d", d.Focus)
	}
	d.SetFocus(3)
	if d.Focus != 2 {
		t.Errorf("Expected a focus past the end ignored, got %d", d.Focus)
	}
}

// TestDeckFlipBump verifies a flip toggles the face and re-arms the lift
// deadline instead of stacking a second one.
func TestDeckFlipBump(t *testing.T) {
	d := &DeckData{LiftHeight: 4.5, LiftResetDelay: 0.1}
	d.SetCards(3)

	d.Flip(1, 0)
	if !d.Cards[1].Flipped {
		t.Fatal("Expected the flip to show the back")
	}
	if d.Cards[1].Lift != 4.5 {
		t.Errorf("Expected the flip to bump the card, got lift %f", d.Cards[1].Lift)
	}

	// A second flip before the first deadline moves the reset later.
	d.Flip(1, 0.05)
	if d.Cards[1].Flipped {
		t.Error("Expected the second flip to toggle back")
	}
	if d.PendingLifts() != 1 {
		t.Errorf("Expected one pending reset, got %d", d.PendingLifts())
	}

	d.ExpireLifts(0.12)
	if d.Cards[1].Lift != 4.5 {
		t.Error("Expected the re-armed lift still up at the old deadline")
	}

	d.ExpireLifts(0.16)
	if d.Cards[1].Lift != 0 {
		t.Errorf("Expected the lift settled, got %f", d.Cards[1].Lift)
	}
	if d.PendingLifts() != 0 {
		t.Errorf("Expected no pending resets, got %d", d.PendingLifts())
	}
}

// TestDeckLiftDeadlineForGoneCard verifies a pending reset whose card index
// disappeared is dropped without touching anything.
func TestDeckLiftDeadlineForGoneCard(t *testing.T) {
	d := &DeckData{LiftHeight: 4.5, LiftResetDelay: 0.1}
	d.SetCards(5)
	d.Bump(4, 0)

	d.Cards = d.Cards[:3]

	d.ExpireLifts(1.0)
	if d.PendingLifts() != 0 {
		t.Errorf("Expected the orphaned deadline dropped, got %d pending", d.PendingLifts())
	}
}

// TestDeckIgnoresOutOfRange verifies flips and bumps reject bad indexes.
func TestDeckIgnoresOutOfRange(t *testing.T) {
	d := &DeckData{LiftHeight: 4.5, LiftResetDelay: 0.1}
	d.SetCards(2)

	d.Flip(-1, 0)
	d.Flip(2, 0)
	d.Bump(5, 0)

	for i, c := range d.Cards {
		if c.Flipped || c.Lift != 0 {
			t.Errorf("Expected card %d untouched, got %+v", i, c)
		}
	}
	if d.PendingLifts() != 0 {
		t.Errorf("Expected no pending resets, got %d", d.PendingLifts())
	}
}

// TestDeckNegativeCount verifies a negative redeal lands on an empty store.
func TestDeckNegativeCount(t *testing.T) {
	d := &DeckData{}
	d.SetCards(-3)

	if len(d.Cards) != 0 {
		t.Errorf("Expected an empty store, got %d cards", len(d.Cards))
	}
}
