package systems

import (
	"fmt"
	"image/color"

	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/fonts"
	"github.com/palegrove/cardfan/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

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

	// Pick boxes, colored by state.
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			if !obj.HasTags(tags.ResolvCard) {
				continue
			}
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if entry, ok := obj.Data.(*donburi.Entry); ok && entry.Valid() {
				idx := components.Card.Get(entry).Index
				if drag.Dragging && drag.TargetIndex == idx {
					c = cfg.Yellow
				} else if mouse.HoverIndex == idx {
					c = cfg.Green
				}
			}

			x, y := obj.X, obj.Y
			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	// Tick-gated targets as crosses, so the spring lag is visible.
	if vpEntry, ok := components.Viewport.First(e.World); ok {
		vp := components.Viewport.Get(vpEntry)
		components.Card.Each(e.World, func(entry *donburi.Entry) {
			target := components.Target.Get(entry)
			if target.Scale == 0 {
				return
			}
			tx, ty := vp.ToScreen(target.Position)
			vector.FillRect(screen, float32(tx-5), float32(ty), 11, 1, cfg.Gold, false)
			vector.FillRect(screen, float32(tx), float32(ty-5), 1, 11, cfg.Gold, false)
		})
	}

	// Pointer cross.
	vector.FillRect(screen, float32(mouse.ScreenX-7), float32(mouse.ScreenY), 15, 1, cfg.Crimson, false)
	vector.FillRect(screen, float32(mouse.ScreenX), float32(mouse.ScreenY-7), 1, 15, cfg.Crimson, false)

	drawDebugText(e, screen, mouse, drag)
}

func drawDebugText(e *ecs.ECS, screen *ebiten.Image, mouse *components.MouseData, drag *components.DragData) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(clockEntry)

	fontFace := fonts.Small.Get()
	y := hudMargin + 5*hudLineHeight

	lines := []string{
		fmt.Sprintf("tick %d", clock.Tick),
		fmt.Sprintf("t %.2f  eff %.2f  off %.2f", clock.Elapsed, clock.EffectiveTime(), clock.AnimOffset),
		fmt.Sprintf("hover %d  norm (%.2f, %.2f)", mouse.HoverIndex, mouse.NormX, mouse.NormY),
		fmt.Sprintf("vel (%.2f, %.2f)  dir (%.0f, %.0f)", mouse.VelX, mouse.VelY, mouse.DirX, mouse.DirY),
	}
	if drag.Dragging {
		lines = append(lines, fmt.Sprintf("drag %d at (%.2f, %.2f)", drag.TargetIndex, drag.SceneX, drag.SceneY))
	}
	for i, line := range lines {
		text.Draw(screen, line, fontFace, hudMargin, y+i*hudLineHeight, cfg.Cyan)
	}
}
