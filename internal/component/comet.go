// internal/component/comet.go
package component

import (
	"math"
	"time"

	"comet-sky/internal/utils"
)

// CometID — непрозрачный идентификатор живой кометы
type CometID string

// Comet — одна временная комета на экране
type Comet struct {
	ID         CometID
	Trajectory Trajectory
	Duration   time.Duration
	SpawnedAt  time.Duration // время таймеров, когда комета появилась
}

// Progress возвращает долю пройденного пути в [0, 1].
func (c *Comet) Progress(now time.Duration) float64 {
	if c.Duration <= 0 {
		return 1
	}
	return utils.Clamp01(float64(now-c.SpawnedAt) / float64(c.Duration))
}

// PositionAt — линейная интерполяция от старта к финишу
func (c *Comet) PositionAt(now time.Duration) Position {
	p := c.Progress(now)
	return Position{
		X: utils.Lerp(c.Trajectory.Start.X, c.Trajectory.End.X, p),
		Y: utils.Lerp(c.Trajectory.Start.Y, c.Trajectory.End.Y, p),
	}
}

// AlphaAt — прозрачность: плавно проявляется и гаснет (ease-in-out).
func (c *Comet) AlphaAt(now time.Duration) float64 {
	return utils.SmoothStep(math.Sin(math.Pi * c.Progress(now)))
}

// Expired сообщает, что анимация закончилась
func (c *Comet) Expired(now time.Duration) bool {
	return c.Progress(now) >= 1
}
