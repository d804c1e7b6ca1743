package systems

import (
	"fmt"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// DrawHUD renders the table state in the corners and the key hints along
// the bottom edge.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	deckEntry, ok := components.Deck.First(e.World)
	if !ok {
		return
	}
	deck := components.Deck.Get(deckEntry)

	mouseEntry, ok := components.Mouse.First(e.World)
	if !ok {
		return
	}
	mouse := components.Mouse.Get(mouseEntry)

	dragEntry, ok := components.Drag.First(e.World)
	if !ok {
		return
	}
	drag := components.Drag.Get(dragEntry)

	st := GetOrCreateSettings(e)
	width := cfg.C.Width
	height := cfg.C.Height
	fontFace := fonts.Regular.Get()

	flipped := 0
	for _, c := range deck.Cards {
		if c.Flipped {
			flipped++
		}
	}

	text.Draw(screen, fmt.Sprintf("Cards: %d", len(deck.Cards)), fontFace, hudMargin, hudMargin+hudLineHeight, cfg.Parchment)
	text.Draw(screen, fmt.Sprintf("Focus: %d", deck.Focus), fontFace, hudMargin, hudMargin+2*hudLineHeight, cfg.Parchment)
	text.Draw(screen, fmt.Sprintf("Flipped: %d", flipped), fontFace, hudMargin, hudMargin+3*hudLineHeight, cfg.Parchment)

	tpsStr := fmt.Sprintf("%.0f tps", st.TicksPerSecond)
	tpsX := width - hudMargin - len(tpsStr)*8
	text.Draw(screen, tpsStr, fontFace, tpsX, hudMargin+hudLineHeight, cfg.Parchment)

	if FocusPaused(deck, mouse, drag) {
		text.Draw(screen, "idle held", fontFace, tpsX, hudMargin+2*hudLineHeight, cfg.Gold)
	}
	if st.Muted {
		text.Draw(screen, "muted", fontFace, tpsX, hudMargin+3*hudLineHeight, cfg.Gold)
	}

	hint := "[click] focus/flip  [drag up] focus  [arrows] focus  [F] flip  [R] redeal  [Tab] settings  [M] mute"
	hintWidth := len(hint) * 7
	hintX := width/2 - hintWidth/2
	vector.FillRect(screen, float32(hintX-6), float32(height-34), float32(hintWidth+12), 20, cfg.BlackOverlay, false)
	text.Draw(screen, hint, fonts.Small.Get(), hintX, height-20, cfg.Parchment)
}
