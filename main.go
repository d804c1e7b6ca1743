package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/fonts"
	"github.com/palegrove/cardfan/scenes"
	"github.com/palegrove/cardfan/systems"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	tuningPath = flag.String("tuning", "", "path to a yaml tuning overlay")
	debugFlag  = flag.Bool("debug", false, "start with the debug overlay on")
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.Label, goregular.TTF, 16)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 30)

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewTableScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.Parse()

	if *debugFlag {
		config.Debug.Overlay = true
	}
	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Printf("Warning: Could not load tuning file %s: %v", *tuningPath, err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// The simulation schedules its own ticks off the wall clock, so let
	// Update run once per displayed frame and the springs track the
	// display rate.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
