package systems

import (
	"testing"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
)

// TestDealStagger verifies cards ease in one after another and all reach
// full presence.
func TestDealStagger(t *testing.T) {
	tt := newTestTable(3)

	// Half a stagger in: the first card is already easing, the last one
	// is still waiting out its delay.
	tt.run(cfg.Deal.Stagger / 2)

	first := components.Deal.Get(cardEntry(tt, 0))
	last := components.Deal.Get(cardEntry(tt, 2))
	if first.Progress <= 0 {
		t.Error("Expected the first card already easing in")
	}
	if last.Progress != 0 {
		t.Errorf("Expected the last card still waiting, got %f", last.Progress)
	}

	tt.run(2*cfg.Deal.Stagger + cfg.Deal.Duration + 0.1)

	if !first.Done || first.Progress != 1 {
		t.Errorf("Expected the first card fully dealt, got %f", first.Progress)
	}
	if !last.Done || last.Progress != 1 {
		t.Errorf("Expected the last card fully dealt, got %f", last.Progress)
	}
}

// TestDealProgressMonotonic verifies the entrance never runs backward.
func TestDealProgressMonotonic(t *testing.T) {
	tt := newTestTable(3)

	deal := components.Deal.Get(cardEntry(tt, 1))
	prev := deal.Progress
	for i := 0; i < 120; i++ {
		tt.step(1.0 / 120)
		if deal.Progress < prev {
			t.Fatalf("Progress went backward: %f after %f", deal.Progress, prev)
		}
		prev = deal.Progress
	}
	if !deal.Done {
		t.Error("Expected the card dealt after a full second")
	}
}
