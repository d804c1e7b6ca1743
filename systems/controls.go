package systems

import (
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls turns keyboard actions into table operations.
func UpdateControls(e *ecs.ECS) {
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

	if GetAction(input, cfg.ActionFocusPrev).JustPressed {
		stepFocus(e, deck, -1)
	}
	if GetAction(input, cfg.ActionFocusNext).JustPressed {
		stepFocus(e, deck, +1)
	}
	if GetAction(input, cfg.ActionFlip).JustPressed && len(deck.Cards) > 0 {
		deck.Flip(deck.Focus, clock.Elapsed)
		PlaySound(e, cfg.SoundFlip)
	}
	if GetAction(input, cfg.ActionDeal).JustPressed {
		st := GetOrCreateSettings(e)
		Redeal(e, st.CardCount)
	}
	if GetAction(input, cfg.ActionTogglePanel).JustPressed {
		TogglePanel(e)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		ToggleDebug(e)
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		ToggleMute(e)
	}
}

// stepFocus moves the focus to a neighboring card, wrapping at the ends.
func stepFocus(e *ecs.ECS, deck *components.DeckData, dir int) {
	n := len(deck.Cards)
	if n == 0 {
		return
	}
	deck.SetFocus(((deck.Focus+dir)%n + n) % n)
	PlaySound(e, cfg.SoundFocus)
}
