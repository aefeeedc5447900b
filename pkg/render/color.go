// pkg/render/color.go
package render

import "image/color"

// SkyColors holds the colors shared by every comet surface.
type SkyColors struct {
	Background color.RGBA
	Head       color.RGBA
	Tail       color.RGBA
}

// Blend mixes fg over bg with the given opacity in [0, 1].
func Blend(bg, fg color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return bg
	}
	if alpha >= 1 {
		return fg
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*alpha + 0.5)
	}
	return color.RGBA{
		R: mix(bg.R, fg.R),
		G: mix(bg.G, fg.G),
		B: mix(bg.B, fg.B),
		A: 255,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
