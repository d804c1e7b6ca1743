package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// PanelUI holds the ebitenui settings panel. It floats over the table and
// edits the settings singleton through the systems package.
type PanelUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	panel       *widget.Container
	cardsLabel  *widget.Label
	tickLabel   *widget.Label
	idleLabel   *widget.Label
	volumeLabel *widget.Label
	muteButton  *widget.Button
	debugButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewPanelUI creates the settings panel bound to one ECS.
func NewPanelUI(e *ecs.ECS) *PanelUI {
	pui := &PanelUI{ecs: e}
	pui.loadFonts()
	pui.buildUI()
	return pui
}

func (pui *PanelUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	pui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	pui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (pui *PanelUI) buildUI() {
	// Root container with AnchorLayout; transparent so the table stays
	// visible behind the panel.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(16)),
		)),
	)

	pui.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{14, 40, 30, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.UI.PanelPad)),
			widget.RowLayoutOpts.Spacing(cfg.UI.RowSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
			widget.WidgetOpts.MinSize(cfg.UI.PanelWidth, 0),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("TABLE SETTINGS", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	pui.panel.AddChild(titleLabel)

	pui.cardsLabel = pui.addStepperRow("Cards",
		func() { systems.AdjustCards(pui.ecs, -cfg.UI.CardStep) },
		func() { systems.AdjustCards(pui.ecs, +cfg.UI.CardStep) },
	)
	pui.tickLabel = pui.addStepperRow("Tick rate",
		func() { systems.AdjustTickRate(pui.ecs, -cfg.UI.TickStep) },
		func() { systems.AdjustTickRate(pui.ecs, +cfg.UI.TickStep) },
	)
	pui.idleLabel = pui.addStepperRow("Idle speed",
		func() { systems.AdjustIdleSpeed(pui.ecs, -cfg.UI.IdleSpeedStep) },
		func() { systems.AdjustIdleSpeed(pui.ecs, +cfg.UI.IdleSpeedStep) },
	)
	pui.volumeLabel = pui.addStepperRow("Volume",
		func() { systems.AdjustVolume(pui.ecs, -cfg.UI.VolumeStep) },
		func() { systems.AdjustVolume(pui.ecs, +cfg.UI.VolumeStep) },
	)

	toggles := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	pui.muteButton = pui.newButton("Mute", 72, func() {
		systems.ToggleMute(pui.ecs)
	})
	pui.debugButton = pui.newButton("Debug", 72, func() {
		systems.ToggleDebug(pui.ecs)
	})
	closeButton := pui.newButton("Close", 72, func() {
		systems.TogglePanel(pui.ecs)
	})
	toggles.AddChild(pui.muteButton)
	toggles.AddChild(pui.debugButton)
	toggles.AddChild(closeButton)
	pui.panel.AddChild(toggles)

	rootContainer.AddChild(pui.panel)

	pui.UI = &ebitenui.UI{Container: rootContainer}
}

// addStepperRow builds one "label  value  [-] [+]" row and returns the
// value label for refreshes.
func (pui *PanelUI) addStepperRow(name string, dec, inc func()) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(name, &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 210, 200, 255},
		}),
	)
	row.AddChild(nameLabel)

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text("", &pui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(valueLabel)

	row.AddChild(pui.newButton("-", cfg.UI.ButtonWidth, dec))
	row.AddChild(pui.newButton("+", cfg.UI.ButtonWidth, inc))

	pui.panel.AddChild(row)
	return valueLabel
}

func (pui *PanelUI) newButton(label string, minWidth int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minWidth, 22)),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{220, 240, 220, 255},
			Pressed:  color.RGBA{170, 200, 170, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (pui *PanelUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{36, 78, 60, 255})
	hover := image.NewNineSliceColor(color.RGBA{48, 98, 76, 255})
	pressed := image.NewNineSliceColor(color.RGBA{26, 58, 44, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// refresh updates the value labels from the settings singleton.
func (pui *PanelUI) refresh() {
	st := systems.GetOrCreateSettings(pui.ecs)

	if pui.cardsLabel != nil {
		pui.cardsLabel.Label = fmt.Sprintf("%d", st.CardCount)
	}
	if pui.tickLabel != nil {
		pui.tickLabel.Label = fmt.Sprintf("%.0f", st.TicksPerSecond)
	}
	if pui.idleLabel != nil {
		pui.idleLabel.Label = fmt.Sprintf("%.2f", st.IdleSpeed)
	}
	if pui.volumeLabel != nil {
		pui.volumeLabel.Label = fmt.Sprintf("%.0f%%", st.Volume*100)
	}
	if pui.muteButton != nil {
		if textWidget := pui.muteButton.Text(); textWidget != nil {
			if st.Muted {
				textWidget.Label = "Unmute"
			} else {
				textWidget.Label = "Mute"
			}
		}
	}
	if pui.debugButton != nil {
		if textWidget := pui.debugButton.Text(); textWidget != nil {
			if st.Debug {
				textWidget.Label = "Debug *"
			} else {
				textWidget.Label = "Debug"
			}
		}
	}
}

// Visible reports whether the panel is currently shown.
func (pui *PanelUI) Visible() bool {
	return systems.GetOrCreateSettings(pui.ecs).PanelVisible
}

// ContainsPointer reports whether the cursor is over the panel, so the
// table can ignore presses that belong to the UI.
func (pui *PanelUI) ContainsPointer() bool {
	if !pui.Visible() || pui.panel == nil {
		return false
	}
	x, y := ebiten.CursorPosition()
	rect := pui.panel.GetWidget().Rect
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func (pui *PanelUI) Update() {
	if !pui.Visible() {
		return
	}
	pui.UI.Update()
	pui.refresh()
}

func (pui *PanelUI) Draw(screen *ebiten.Image) {
	if !pui.Visible() {
		return
	}
	pui.UI.Draw(screen)
}
