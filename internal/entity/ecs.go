// internal/entity/ecs.go
package entity

import (
	"sort"

	"comet-sky/internal/component"

	"github.com/google/uuid"
)

// Registry — единственный контейнер живых комет.
// Все изменения идут из одного потока цикла хоста, блокировки не нужны.
type Registry struct {
	Comets map[component.CometID]*component.Comet
}

func NewRegistry() *Registry {
	return &Registry{
		Comets: make(map[component.CometID]*component.Comet),
	}
}

// NewID выдаёт новый уникальный идентификатор кометы.
func (r *Registry) NewID() component.CometID {
	return component.CometID(uuid.NewString())
}

// Add добавляет комету.
func (r *Registry) Add(c *component.Comet) {
	r.Comets[c.ID] = c
}

// Remove удаляет комету и сообщает, была ли она.
func (r *Registry) Remove(id component.CometID) bool {
	if _, ok := r.Comets[id]; !ok {
		return false
	}
	delete(r.Comets, id)
	return true
}

// Get возвращает комету по ID.
func (r *Registry) Get(id component.CometID) (*component.Comet, bool) {
	c, ok := r.Comets[id]
	return c, ok
}

// Len — количество живых комет
func (r *Registry) Len() int {
	return len(r.Comets)
}

// Ordered возвращает кометы в порядке появления, чтобы отрисовка была стабильной.
func (r *Registry) Ordered() []*component.Comet {
	out := make([]*component.Comet, 0, len(r.Comets))
	for _, c := range r.Comets {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SpawnedAt != out[j].SpawnedAt {
			return out[i].SpawnedAt < out[j].SpawnedAt
		}
		return out[i].ID < out[j].ID
	})
	return out
}
