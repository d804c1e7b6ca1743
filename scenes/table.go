package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/systems"
	"github.com/palegrove/cardfan/systems/factory"
	"github.com/palegrove/cardfan/ui"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TableScene runs the card table: one world, one deck, one settings panel.
type TableScene struct {
	ecs   *ecs.ECS
	panel *ui.PanelUI

	once sync.Once
}

func NewTableScene() *TableScene {
	return &TableScene{}
}

func (ts *TableScene) Update() {
	ts.once.Do(ts.configure)

	// Card picking is suppressed while the pointer sits on the panel.
	if entry, ok := components.Mouse.First(ts.ecs.World); ok {
		components.Mouse.Get(entry).UIHover = ts.panel.ContainsPointer()
	}

	ts.ecs.Update()
	ts.panel.Update()
}

func (ts *TableScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Felt)

	if ts.ecs == nil {
		return
	}

	ts.ecs.Draw(screen)
	ts.panel.Draw(screen)
}

func (ts *TableScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePointer)
	e.AddSystem(systems.UpdateDrag)
	e.AddSystem(systems.UpdateControls)
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateIdle)
	e.AddSystem(systems.UpdateLayout)
	e.AddSystem(systems.UpdateDeck)
	e.AddSystem(systems.UpdateSprings)
	e.AddSystem(systems.UpdateDeal)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawTable)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	factory.CreateViewport(e, cfg.C.Width, cfg.C.Height)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateClock(e)
	factory.CreateMouse(e)
	factory.CreateDrag(e)
	factory.CreateInput(e)

	settings := factory.CreateSettings(e)
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(e, saved)
	}

	st := components.Settings.Get(settings)
	if entry, ok := components.Clock.First(e.World); ok {
		components.Clock.Get(entry).TicksPerSecond = st.TicksPerSecond
	}

	factory.CreateDeck(e, st.CardCount)
	factory.CreateCards(e, st.CardCount)

	ts.ecs = e
	ts.panel = ui.NewPanelUI(e)
}
