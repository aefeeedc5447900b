package component

import (
	"math"
	"testing"
	"time"
)

func newTestComet() *Comet {
	return &Comet{
		ID: "c1",
		Trajectory: Trajectory{
			Start: Position{X: -5, Y: 50},
			End:   Position{X: 105, Y: 30},
		},
		Duration:  4 * time.Second,
		SpawnedAt: time.Second,
	}
}

func TestCometPositionInterpolatesLinearly(t *testing.T) {
	c := newTestComet()

	if got := c.PositionAt(time.Second); got != c.Trajectory.Start {
		t.Fatalf("start position = %+v, want %+v", got, c.Trajectory.Start)
	}
	mid := c.PositionAt(3 * time.Second)
	if math.Abs(mid.X-50) > 1e-9 || math.Abs(mid.Y-40) > 1e-9 {
		t.Fatalf("mid position = %+v, want {50 40}", mid)
	}
	if got := c.PositionAt(10 * time.Second); got != c.Trajectory.End {
		t.Fatalf("position after end = %+v, want %+v", got, c.Trajectory.End)
	}
}

func TestCometAlphaFadesInAndOut(t *testing.T) {
	c := newTestComet()

	if a := c.AlphaAt(time.Second); a != 0 {
		t.Fatalf("alpha at spawn = %v, want 0", a)
	}
	if a := c.AlphaAt(3 * time.Second); math.Abs(a-1) > 1e-9 {
		t.Fatalf("alpha at midpoint = %v, want 1", a)
	}
	if a := c.AlphaAt(5 * time.Second); a > 1e-9 {
		t.Fatalf("alpha at end = %v, want 0", a)
	}
}

func TestCometExpired(t *testing.T) {
	c := newTestComet()
	if c.Expired(4 * time.Second) {
		t.Fatal("comet expired too early")
	}
	if !c.Expired(5 * time.Second) {
		t.Fatal("comet must be expired after its duration")
	}
}
