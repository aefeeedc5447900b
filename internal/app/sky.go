// internal/app/sky.go
package app

import (
	"log"
	"time"

	"comet-sky/internal/config"
	"comet-sky/internal/entity"
	"comet-sky/internal/event"
	"comet-sky/internal/interfaces"
	"comet-sky/internal/system"
	"comet-sky/internal/trajectory"
	"comet-sky/internal/utils"
)

// Sky собирает все системы эффекта вокруг одной поверхности хоста.
type Sky struct {
	Settings        config.Settings
	Timers          *system.TimerQueue
	Registry        *entity.Registry
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	SpawnerSystem   *system.SpawnerSystem
	EventLogSystem  *system.EventLogSystem
}

// NewSky создаёт эффект. Запускается отдельным вызовом Start.
func NewSky(settings config.Settings, surface interfaces.Surface, verbose bool) *Sky {
	eventDispatcher := event.NewDispatcher()
	registry := entity.NewRegistry()
	timers := system.NewTimerQueue()
	rng := utils.NewPRNGService(settings.Seed)

	s := &Sky{
		Settings:        settings,
		Timers:          timers,
		Registry:        registry,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		EventLogSystem:  system.NewEventLogSystem(eventDispatcher, verbose),
	}
	s.SpawnerSystem = system.NewSpawnerSystem(
		settings,
		surface,
		timers,
		trajectory.NewGenerator(rng),
		registry,
		eventDispatcher,
	)
	log.Printf("Comet sky created: duration=%dms delay=%dms heading=%.0f° seed=%d",
		settings.DurationMs, settings.PostExitDelayMs, settings.HeadingOffsetDeg, rng.Seed())
	return s
}

// Start — единственная точка входа цикла появления комет.
func (s *Sky) Start() {
	s.SpawnerSystem.Start()
}

// Stop убирает все кометы и таймеры.
func (s *Sky) Stop() {
	s.SpawnerSystem.Stop()
}

// Update двигает время эффекта на deltaTime секунд.
func (s *Sky) Update(deltaTime float64) {
	s.Timers.Advance(time.Duration(deltaTime * float64(time.Second)))
}

// Now — время эффекта для отрисовки
func (s *Sky) Now() time.Duration {
	return s.Timers.Now()
}
