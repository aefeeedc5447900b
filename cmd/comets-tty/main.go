// cmd/comets-tty/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"comet-sky/internal/app"
	"comet-sky/internal/config"
	"comet-sky/internal/render"
	skyrender "comet-sky/pkg/render"

	"github.com/gdamore/tcell/v2"
)

type TerminalGame struct {
	screen  tcell.Screen
	surface *render.TerminalSurface
	sky     *app.Sky
}

func NewTerminalGame(settings config.Settings, verbose bool) (*TerminalGame, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	screen.HideCursor()

	surface := render.NewTerminalSurface(screen, skyrender.SkyColors{
		Background: config.BackgroundColor,
		Head:       config.CometHeadColor,
		Tail:       config.CometTailColor,
	})
	return &TerminalGame{
		screen:  screen,
		surface: surface,
		sky:     app.NewSky(settings, surface, verbose),
	}, nil
}

// handleInput возвращает false, когда пора выходить
func (g *TerminalGame) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *TerminalGame) run() {
	ticker := time.NewTicker(config.TerminalFrameInterval * time.Millisecond)
	defer ticker.Stop()

	// таймеры и отрисовка живут только в этом цикле
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	g.sky.Start()
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now
			g.sky.Update(deltaTime)
			g.surface.Draw(g.sky.Now())
		}
	}
}

func (g *TerminalGame) cleanup() {
	g.sky.Stop()
	g.screen.Fini()
}

func main() {
	configPath := flag.String("config", "comets.json", "path to settings file")
	logPath := flag.String("log", "", "write log to this file (terminal is busy)")
	verbose := flag.Bool("v", false, "log every comet")
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	game, err := NewTerminalGame(settings, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
