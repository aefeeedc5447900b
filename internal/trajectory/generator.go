// internal/trajectory/generator.go
package trajectory

import (
	"math"

	"comet-sky/internal/component"
	"comet-sky/internal/config"
	"comet-sky/internal/interfaces"
	"comet-sky/internal/utils"
)

// Edge — край экрана, с которого стартует комета
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
	edgeCount
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}

// Generator строит случайные траектории через экран.
type Generator struct {
	rng interfaces.Random
}

// NewGenerator создаёт генератор поверх переданного источника случайности.
func NewGenerator(rng interfaces.Random) *Generator {
	return &Generator{rng: rng}
}

// PickStart выбирает случайный край и точку чуть за ним.
func (g *Generator) PickStart() component.Position {
	pos, _ := g.pickStart()
	return pos
}

func (g *Generator) pickStart() (component.Position, Edge) {
	edge := Edge(g.rng.Intn(int(edgeCount)))
	along := g.rng.Float64() * 100

	switch edge {
	case EdgeTop:
		return component.Position{X: along, Y: config.EdgeOutsideNear}, edge
	case EdgeRight:
		return component.Position{X: config.EdgeOutsideFar, Y: along}, edge
	case EdgeBottom:
		return component.Position{X: along, Y: config.EdgeOutsideFar}, edge
	default:
		return component.Position{X: config.EdgeOutsideNear, Y: along}, EdgeLeft
	}
}

// PickEnd выбирает точку выхода на противоположной стороне.
// Оси обрабатываются независимо.
func (g *Generator) PickEnd(start component.Position) component.Position {
	return component.Position{
		X: g.opposite(start.X),
		Y: g.opposite(start.Y),
	}
}

func (g *Generator) opposite(v float64) float64 {
	switch {
	case v < config.NearEdgeBand:
		return config.EndOvershootFar + g.rng.Float64()*config.EndJitter
	case v > config.FarEdgeBand:
		return config.EndOvershootNear - g.rng.Float64()*config.EndJitter
	default:
		// середина края: без горизонтального/вертикального смещения
		return g.rng.Float64() * 100
	}
}

// ComputeRotation возвращает направление движения в градусах (atan2).
// Ось Y направлена вниз: вправо 0°, вниз 90°, влево 180°, вверх -90°.
func ComputeRotation(start, end component.Position) float64 {
	return utils.Degrees(math.Atan2(end.Y-start.Y, end.X-start.X))
}

// ApplyHeading добавляет поправку ориентации спрайта и нормализует угол.
func ApplyHeading(raw, headingOffset float64) float64 {
	return utils.NormalizeDegrees(raw + headingOffset)
}

// Generate строит полную траекторию для одной кометы.
func (g *Generator) Generate(headingOffset float64) component.Trajectory {
	start := g.PickStart()
	end := g.PickEnd(start)
	raw := ComputeRotation(start, end)
	return component.Trajectory{
		Start:    start,
		End:      end,
		RawAngle: raw,
		Rotation: ApplyHeading(raw, headingOffset),
	}
}
