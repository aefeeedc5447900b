// internal/interfaces/surface.go
package interfaces

import "comet-sky/internal/component"

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

// Surface — поверхность хоста, на которой живут кометы.
// Attach получает комету с готовой траекторией и сам анимирует её
// по времени таймеров; Detach освобождает всё, что было выделено под ID.
type Surface interface {
	Ready() bool
	Attach(c *component.Comet)
	Detach(id component.CometID)
}
