// cmd/comets/main.go
package main

import (
	"flag"
	"log"
	"time"

	"comet-sky/internal/app"
	"comet-sky/internal/assets"
	"comet-sky/internal/config"
	"comet-sky/internal/render"
	"comet-sky/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	surface        *render.EbitenSurface
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.surface.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "comets.json", "path to settings file")
	verbose := flag.Bool("v", false, "log every comet")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	sprite := assets.LoadSprite(assets.ResolveImagePath(settings.ImagePath), settings.SpriteSizePx)
	surface := render.NewEbitenSurface(ebiten.NewImageFromImage(sprite))
	sky := app.NewSky(settings, surface, *verbose)

	sm := state.NewStateMachine()
	sm.SetState(state.NewSkyState(sm, sky, surface))

	game := &AppGame{
		stateMachine:   sm,
		surface:        surface,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Comet Sky")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
