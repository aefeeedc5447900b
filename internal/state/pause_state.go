// internal/state/pause_state.go
package state

import (
	"comet-sky/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает таймеры: кометы стоят, новые не появляются.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *SkyState
}

func NewPauseState(sm *StateMachine, prevState *SkyState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.previousState.overlay.Toggle()
	}
	if isPauseKeyPressed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	prev := s.previousState
	screen.Fill(config.BackgroundColor)
	prev.surface.Draw(screen, prev.sky.Now())

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PausedColor, false)
	prev.overlay.Draw(screen, prev.stats(true))
}

func (s *PauseState) Exit() {}
