// internal/interfaces/random.go
package interfaces

// Random — источник случайности для генератора траекторий
type Random interface {
	Intn(n int) int
	Float64() float64
}
