// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06 // секунды, ограничение шага кадра

	// Терминальный хост
	TerminalFrameInterval = 33 // мс между кадрами
	TerminalTrailLength   = 6  // длина хвоста в клетках

	OverlayOffsetX = 12
	OverlayOffsetY = 20

	// Геометрия траекторий в процентах от размера экрана
	EdgeOutsideNear  = -5.0  // старт за левым/верхним краем
	EdgeOutsideFar   = 105.0 // старт за правым/нижним краем
	NearEdgeBand     = 10.0  // старт ближе этого к краю считается «у края»
	FarEdgeBand      = 90.0
	EndJitter        = 10.0 // разброс точки выхода за противоположным краем
	EndOvershootFar  = 100.0
	EndOvershootNear = -10.0
)

var (
	BackgroundColor = color.RGBA{5, 8, 24, 255}
	OverlayColor    = color.RGBA{200, 210, 240, 255}
	PausedColor     = color.RGBA{0, 0, 0, 128}
	CometHeadColor  = color.RGBA{255, 244, 214, 255}
	CometTailColor  = color.RGBA{120, 170, 255, 255}
)
