// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp01 ограничивает t диапазоном [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Degrees переводит радианы в градусы
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians переводит градусы в радианы
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeDegrees нормализует угол в диапазон [0, 360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod(-1e-15, 360) + 360 округляется ровно до 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// SmoothStep — кубическое сглаживание ease-in-out на [0, 1]
func SmoothStep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}
