package systems

import (
	"testing"

	cfg "github.com/palegrove/cardfan/config"
)

// TestApplySavedSettingsClamps verifies a stale save file cannot push the
// knobs out of range.
func TestApplySavedSettingsClamps(t *testing.T) {
	tt := newTestTable(5)

	ApplySavedSettings(tt.ecs, &SavedSettings{
		CardCount:      99,
		TicksPerSecond: 10000,
		IdleSpeed:      50,
		Volume:         3,
		Muted:          true,
		Debug:          true,
	})

	st := GetOrCreateSettings(tt.ecs)
	if st.CardCount != cfg.Deck.MaxCards {
		t.Errorf("Expected card count clamped to %d, got %d", cfg.Deck.MaxCards, st.CardCount)
	}
	if st.TicksPerSecond != cfg.Clock.MaxTicksPerSecond {
		t.Errorf("Expected tick rate clamped to %f, got %f", cfg.Clock.MaxTicksPerSecond, st.TicksPerSecond)
	}
	if st.IdleSpeed != cfg.UI.MaxIdleSpeed {
		t.Errorf("Expected idle speed clamped to %f, got %f", cfg.UI.MaxIdleSpeed, st.IdleSpeed)
	}
	if st.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", st.Volume)
	}
	if !st.Muted || !st.Debug {
		t.Error("Expected the toggles copied through")
	}
}

// TestApplySavedSettingsZeroValues verifies zero-valued knobs from an old
// file keep their defaults instead of zeroing the table.
func TestApplySavedSettingsZeroValues(t *testing.T) {
	tt := newTestTable(5)

	ApplySavedSettings(tt.ecs, &SavedSettings{Volume: 0.4})

	st := GetOrCreateSettings(tt.ecs)
	if st.CardCount != cfg.Deck.InitialCards {
		t.Errorf("Expected the default card count, got %d", st.CardCount)
	}
	if st.TicksPerSecond != cfg.Clock.TicksPerSecond {
		t.Errorf("Expected the default tick rate, got %f", st.TicksPerSecond)
	}
	if st.IdleSpeed != cfg.Idle.Speed {
		t.Errorf("Expected the default idle speed, got %f", st.IdleSpeed)
	}
	if st.Volume != 0.4 {
		t.Errorf("Expected the saved volume, got %f", st.Volume)
	}
}

// TestApplySavedSettingsNil verifies a missing save file changes nothing.
func TestApplySavedSettingsNil(t *testing.T) {
	tt := newTestTable(5)

	before := *GetOrCreateSettings(tt.ecs)
	ApplySavedSettings(tt.ecs, nil)
	after := *GetOrCreateSettings(tt.ecs)

	if before != after {
		t.Errorf("Expected settings untouched, got %+v from %+v", after, before)
	}
}
