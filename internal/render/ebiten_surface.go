// internal/render/ebiten_surface.go
package render

import (
	"sort"
	"time"

	"comet-sky/internal/component"
	"comet-sky/internal/interfaces"
	"comet-sky/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ interfaces.Surface = (*EbitenSurface)(nil)

// cometSprite — ресурсы одной кометы на экране
type cometSprite struct {
	comet *component.Comet
	local ebiten.GeoM // поворот вокруг центра спрайта
}

// EbitenSurface рисует кометы спрайтом в окне ebiten.
type EbitenSurface struct {
	sprite        *ebiten.Image
	width, height int
	sprites       map[component.CometID]*cometSprite
}

func NewEbitenSurface(sprite *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{
		sprite:  sprite,
		sprites: make(map[component.CometID]*cometSprite),
	}
}

// Resize вызывается из Layout: первый ненулевой размер делает поверхность готовой.
func (s *EbitenSurface) Resize(width, height int) {
	s.width, s.height = width, height
}

func (s *EbitenSurface) Ready() bool {
	return s.width > 0 && s.height > 0
}

func (s *EbitenSurface) Attach(c *component.Comet) {
	w, h := 0, 0
	if s.sprite != nil {
		w, h = s.sprite.Bounds().Dx(), s.sprite.Bounds().Dy()
	}
	s.sprites[c.ID] = &cometSprite{
		comet: c,
		local: spriteGeoM(w, h, c.Trajectory.Rotation),
	}
}

func (s *EbitenSurface) Detach(id component.CometID) {
	delete(s.sprites, id)
}

// Live — сколько комет сейчас выделено на поверхности
func (s *EbitenSurface) Live() int {
	return len(s.sprites)
}

// Draw рисует все кометы на момент now по часам таймеров.
func (s *EbitenSurface) Draw(screen *ebiten.Image, now time.Duration) {
	if s.sprite == nil {
		return
	}
	for _, cs := range s.ordered() {
		x, y := ToPixels(cs.comet.PositionAt(now), s.width, s.height)

		op := &ebiten.DrawImageOptions{}
		op.GeoM = cs.local
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(float32(cs.comet.AlphaAt(now)))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(s.sprite, op)
	}
}

func (s *EbitenSurface) ordered() []*cometSprite {
	out := make([]*cometSprite, 0, len(s.sprites))
	for _, cs := range s.sprites {
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].comet.SpawnedAt != out[j].comet.SpawnedAt {
			return out[i].comet.SpawnedAt < out[j].comet.SpawnedAt
		}
		return out[i].comet.ID < out[j].comet.ID
	})
	return out
}

// spriteGeoM переносит центр спрайта в начало координат и поворачивает.
func spriteGeoM(w, h int, rotationDeg float64) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-float64(w)/2, -float64(h)/2)
	m.Rotate(utils.Radians(rotationDeg))
	return m
}

// ToPixels переводит проценты экрана в пиксели.
func ToPixels(p component.Position, width, height int) (float64, float64) {
	return p.X / 100 * float64(width), p.Y / 100 * float64(height)
}
