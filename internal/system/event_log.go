// internal/system/event_log.go
package system

import (
	"log"

	"comet-sky/internal/component"
	"comet-sky/internal/event"
)

// EventLogSystem пишет в лог жизненный цикл комет и считает их.
type EventLogSystem struct {
	Spawned int
	Removed int
	verbose bool
}

func NewEventLogSystem(eventDispatcher *event.Dispatcher, verbose bool) *EventLogSystem {
	s := &EventLogSystem{verbose: verbose}
	eventDispatcher.Subscribe(event.SpawnerStarted, s)
	eventDispatcher.Subscribe(event.CometSpawned, s)
	eventDispatcher.Subscribe(event.CometRemoved, s)
	return s
}

func (s *EventLogSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.SpawnerStarted:
		log.Println("Surface ready, spawner started")
	case event.CometSpawned:
		s.Spawned++
		if c, ok := e.Data.(*component.Comet); ok && s.verbose {
			tr := c.Trajectory
			log.Printf("Comet %s spawned: (%.1f, %.1f) -> (%.1f, %.1f), rotation %.1f°",
				c.ID, tr.Start.X, tr.Start.Y, tr.End.X, tr.End.Y, tr.Rotation)
		}
	case event.CometRemoved:
		s.Removed++
		if c, ok := e.Data.(*component.Comet); ok && s.verbose {
			log.Printf("Comet %s removed", c.ID)
		}
	}
}
