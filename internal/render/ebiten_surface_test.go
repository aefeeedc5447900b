package render

import (
	"math"
	"testing"

	"comet-sky/internal/component"
)

func TestEbitenSurfaceReadyAfterLayout(t *testing.T) {
	s := NewEbitenSurface(nil)
	if s.Ready() {
		t.Fatal("surface must not be ready before the first layout")
	}
	s.Resize(1280, 720)
	if !s.Ready() {
		t.Fatal("surface must be ready after layout")
	}
}

func TestEbitenSurfaceAttachDetachIsPerComet(t *testing.T) {
	s := NewEbitenSurface(nil)
	a := &component.Comet{ID: "a"}
	b := &component.Comet{ID: "b"}
	s.Attach(a)
	s.Attach(b)
	s.Detach("a")

	if s.Live() != 1 {
		t.Fatalf("live = %d, want 1", s.Live())
	}
	if _, ok := s.sprites["b"]; !ok {
		t.Fatal("detaching a removed b")
	}
}

func TestSpriteGeoMRotatesAroundCentre(t *testing.T) {
	m := spriteGeoM(64, 64, 90)

	if x, y := m.Apply(32, 32); math.Abs(x) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("centre maps to (%v, %v), want origin", x, y)
	}
	// голова спрайта сверху после поворота на 90° смотрит вправо
	if x, y := m.Apply(32, 0); math.Abs(x-32) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Fatalf("head maps to (%v, %v), want (32, 0)", x, y)
	}
}

func TestToPixels(t *testing.T) {
	x, y := ToPixels(component.Position{X: 50, Y: -5}, 1280, 720)
	if x != 640 || y != -36 {
		t.Fatalf("ToPixels = (%v, %v), want (640, -36)", x, y)
	}
}
