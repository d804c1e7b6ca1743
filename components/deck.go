package components

import "github.com/yohamta/donburi"

// CardState is one entry of the deck store.
type CardState struct {
	Flipped bool
	Lift    float64
}

// DeckData is the card store (singleton component). The animation systems
// read it every tick and mutate it only through the methods below.
type DeckData struct {
	Cards []CardState
	Focus int

	LiftHeight     float64
	LiftResetDelay float64

	// liftDue holds one pending lift reset per card index. A newer bump
	// replaces the older deadline.
	liftDue map[int]float64
}

var Deck = donburi.NewComponentType[DeckData]()

// SetCards replaces the store with n fresh unflipped cards and resets the
// focus to the first card. Pending lift resets are discarded.
func (d *DeckData) SetCards(n int) {
	if n < 0 {
		n = 0
	}
	d.Cards = make([]CardState, n)
	d.Focus = 0
	d.liftDue = make(map[int]float64)
}

// SetFocus moves the focus to card i. Out-of-range indexes are ignored.
func (d *DeckData) SetFocus(i int) {
	if i < 0 || i >= len(d.Cards) {
		return
	}
	d.Focus = i
}

// Flip toggles card i and bumps it. Out-of-range indexes are ignored.
func (d *DeckData) Flip(i int, now float64) {
	if i < 0 || i >= len(d.Cards) {
		return
	}
	d.Cards[i].Flipped = !d.Cards[i].Flipped
	d.Bump(i, now)
}

// Bump raises card i and schedules its lift to settle back to zero. Bumping
// again before the deadline replaces the pending reset.
func (d *DeckData) Bump(i int, now float64) {
	if i < 0 || i >= len(d.Cards) {
		return
	}
	d.Cards[i].Lift = d.LiftHeight
	if d.liftDue == nil {
		d.liftDue = make(map[int]float64)
	}
	d.liftDue[i] = now + d.LiftResetDelay
}

// ExpireLifts settles every lift whose deadline has passed. Deadlines whose
// card index no longer exists are dropped without effect.
func (d *DeckData) ExpireLifts(now float64) {
	for i, due := range d.liftDue {
		if now < due {
			continue
		}
		if i >= 0 && i < len(d.Cards) {
			d.Cards[i].Lift = 0
		}
		delete(d.liftDue, i)
	}
}

// PendingLifts reports how many lift resets are still scheduled.
func (d *DeckData) PendingLifts() int {
	return len(d.liftDue)
}
