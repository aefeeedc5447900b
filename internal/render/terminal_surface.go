// internal/render/terminal_surface.go
package render

import (
	"image/color"
	"math"
	"sort"
	"time"

	"comet-sky/internal/component"
	"comet-sky/internal/config"
	"comet-sky/internal/interfaces"
	"comet-sky/internal/utils"
	skyrender "comet-sky/pkg/render"

	"github.com/gdamore/tcell/v2"
)

var _ interfaces.Surface = (*TerminalSurface)(nil)

const cometHeadRune = '*'

// Глифы хвоста по секторам направления (ось Y вниз)
var trailRunes = [8]rune{'─', '╲', '│', '╱', '─', '╲', '│', '╱'}

type cell struct {
	x, y int
}

// cometTrail — буфер хвоста одной кометы
type cometTrail struct {
	comet  *component.Comet
	glyph  rune
	points []cell // от старых к новым, последний это голова
}

// TerminalSurface рисует кометы символами в терминале через tcell.
type TerminalSurface struct {
	screen   tcell.Screen
	colors   skyrender.SkyColors
	trailLen int
	trails   map[component.CometID]*cometTrail
}

func NewTerminalSurface(screen tcell.Screen, colors skyrender.SkyColors) *TerminalSurface {
	return &TerminalSurface{
		screen:   screen,
		colors:   colors,
		trailLen: config.TerminalTrailLength,
		trails:   make(map[component.CometID]*cometTrail),
	}
}

func (s *TerminalSurface) Ready() bool {
	if s.screen == nil {
		return false
	}
	w, h := s.screen.Size()
	return w > 0 && h > 0
}

func (s *TerminalSurface) Attach(c *component.Comet) {
	s.trails[c.ID] = &cometTrail{
		comet:  c,
		glyph:  trailGlyph(c.Trajectory.RawAngle),
		points: make([]cell, 0, s.trailLen+1),
	}
}

func (s *TerminalSurface) Detach(id component.CometID) {
	delete(s.trails, id)
}

// Live — сколько буферов хвостов сейчас выделено
func (s *TerminalSurface) Live() int {
	return len(s.trails)
}

// Draw перерисовывает экран на момент now.
func (s *TerminalSurface) Draw(now time.Duration) {
	w, h := s.screen.Size()
	bg := tcell.StyleDefault.Background(toTcell(s.colors.Background))
	s.screen.Fill(' ', bg)

	for _, tr := range s.ordered() {
		head := toCell(tr.comet.PositionAt(now), w, h)
		if n := len(tr.points); n == 0 || tr.points[n-1] != head {
			tr.points = append(tr.points, head)
			if len(tr.points) > s.trailLen+1 {
				tr.points = tr.points[1:]
			}
		}

		alpha := tr.comet.AlphaAt(now)
		last := len(tr.points) - 1
		for i, p := range tr.points[:last] {
			// хвост гаснет к концу
			fade := alpha * float64(i+1) / float64(last+1)
			c := skyrender.Blend(s.colors.Background, s.colors.Tail, fade)
			if i == 0 {
				c = skyrender.DarkenColor(c)
			}
			s.setCell(p, tr.glyph, bg.Foreground(toTcell(c)), w, h)
		}
		headColor := skyrender.Blend(s.colors.Background, s.colors.Head, alpha)
		s.setCell(tr.points[last], cometHeadRune, bg.Foreground(toTcell(headColor)).Bold(true), w, h)
	}
	s.screen.Show()
}

func (s *TerminalSurface) setCell(p cell, r rune, style tcell.Style, w, h int) {
	if p.x < 0 || p.y < 0 || p.x >= w || p.y >= h {
		return
	}
	s.screen.SetContent(p.x, p.y, r, nil, style)
}

func (s *TerminalSurface) ordered() []*cometTrail {
	out := make([]*cometTrail, 0, len(s.trails))
	for _, tr := range s.trails {
		out = append(out, tr)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].comet.SpawnedAt != out[j].comet.SpawnedAt {
			return out[i].comet.SpawnedAt < out[j].comet.SpawnedAt
		}
		return out[i].comet.ID < out[j].comet.ID
	})
	return out
}

func toCell(p component.Position, w, h int) cell {
	return cell{
		x: int(math.Floor(p.X / 100 * float64(w))),
		y: int(math.Floor(p.Y / 100 * float64(h))),
	}
}

func trailGlyph(rawAngle float64) rune {
	sector := int(math.Floor((utils.NormalizeDegrees(rawAngle)+22.5)/45)) % 8
	return trailRunes[sector]
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
