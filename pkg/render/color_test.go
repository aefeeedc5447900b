package render

import (
	"image/color"
	"testing"
)

func TestBlend(t *testing.T) {
	bg := color.RGBA{0, 0, 0, 255}
	fg := color.RGBA{200, 100, 50, 255}

	if got := Blend(bg, fg, 0); got != bg {
		t.Fatalf("alpha 0 = %v, want background", got)
	}
	if got := Blend(bg, fg, 1); got != fg {
		t.Fatalf("alpha 1 = %v, want foreground", got)
	}
	if got, want := Blend(bg, fg, 0.5), (color.RGBA{100, 50, 25, 255}); got != want {
		t.Fatalf("alpha 0.5 = %v, want %v", got, want)
	}
}

func TestDarkenColorKeepsAlpha(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 128})
	if got != (color.RGBA{100, 50, 25, 128}) {
		t.Fatalf("DarkenColor = %v", got)
	}
}
