// internal/state/sky_state.go
package state

import (
	"comet-sky/internal/app"
	"comet-sky/internal/config"
	"comet-sky/internal/render"
	"comet-sky/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*SkyState)(nil)

// SkyState — основное состояние: кометы летят
type SkyState struct {
	sm      *StateMachine
	sky     *app.Sky
	surface *render.EbitenSurface
	overlay *ui.Overlay
}

func NewSkyState(sm *StateMachine, sky *app.Sky, surface *render.EbitenSurface) *SkyState {
	return &SkyState{
		sm:      sm,
		sky:     sky,
		surface: surface,
		overlay: ui.NewOverlay(config.OverlayOffsetX, config.OverlayOffsetY, sky.Settings.ShowOverlay, config.OverlayColor),
	}
}

// Enter запускает цикл; повторный вход после паузы ничего не перезапускает.
func (s *SkyState) Enter() {
	s.sky.Start()
}

func (s *SkyState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.overlay.Toggle()
	}
	if isPauseKeyPressed() {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}
	s.sky.Update(deltaTime)
}

func (s *SkyState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.surface.Draw(screen, s.sky.Now())
	s.overlay.Draw(screen, s.stats(false))
}

func (s *SkyState) Exit() {}

func (s *SkyState) stats(paused bool) ui.OverlayStats {
	spawner := s.sky.SpawnerSystem
	return ui.OverlayStats{
		State:       spawner.State().String(),
		Live:        spawner.Live(),
		Spawned:     s.sky.EventLogSystem.Spawned,
		NextSpawnIn: spawner.NextSpawnIn(),
		Paused:      paused,
	}
}

func isPauseKeyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
}
