// internal/ui/overlay.go
package ui

import (
	"fmt"
	"image/color"
	"time"

	skyrender "comet-sky/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// OverlayStats — то, что показывает оверлей
type OverlayStats struct {
	State       string
	Live        int
	Spawned     int
	NextSpawnIn time.Duration
	Paused      bool
}

// Overlay — маленькая панель состояния в углу экрана
type Overlay struct {
	X, Y    int
	Visible bool
	face    font.Face
	color   color.RGBA
}

func NewOverlay(x, y int, visible bool, textColor color.RGBA) *Overlay {
	return &Overlay{
		X:       x,
		Y:       y,
		Visible: visible,
		face:    basicfont.Face7x13,
		color:   textColor,
	}
}

// Toggle переключает видимость
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Lines форматирует строки панели
func (o *Overlay) Lines(stats OverlayStats) []string {
	lines := []string{
		fmt.Sprintf("state: %s", stats.State),
		fmt.Sprintf("live: %d  spawned: %d", stats.Live, stats.Spawned),
		fmt.Sprintf("next in: %.1fs", stats.NextSpawnIn.Seconds()),
	}
	if stats.Paused {
		lines = append(lines, "PAUSED")
	}
	return lines
}

// Draw рисует панель, если она включена
func (o *Overlay) Draw(screen *ebiten.Image, stats OverlayStats) {
	if !o.Visible {
		return
	}
	lines := o.Lines(stats)
	lineHeight := o.face.Metrics().Height.Ceil()

	backdrop := skyrender.DarkenColor(color.RGBA{40, 48, 80, 200})
	vector.DrawFilledRect(screen, float32(o.X-6), float32(o.Y-lineHeight), 180, float32(lineHeight*len(lines)+8), backdrop, false)
	for i, line := range lines {
		text.Draw(screen, line, o.face, o.X, o.Y+i*lineHeight, o.color)
	}
}
