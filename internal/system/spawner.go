// internal/system/spawner.go
package system

import (
	"log"
	"time"

	"comet-sky/internal/component"
	"comet-sky/internal/config"
	"comet-sky/internal/entity"
	"comet-sky/internal/event"
	"comet-sky/internal/interfaces"
	"comet-sky/internal/trajectory"
)

// SpawnerState — состояние цикла появления комет
type SpawnerState int

const (
	SpawnerIdle SpawnerState = iota
	SpawnerSpawning
	SpawnerWaiting
)

func (s SpawnerState) String() string {
	switch s {
	case SpawnerIdle:
		return "idle"
	case SpawnerSpawning:
		return "spawning"
	case SpawnerWaiting:
		return "waiting"
	}
	return "unknown"
}

// SpawnerSystem запускает кометы и убирает их по истечении времени.
// Удаление через Duration от старта кометы, следующая комета через
// Duration + PostExitDelay от того же старта.
type SpawnerSystem struct {
	settings        config.Settings
	surface         interfaces.Surface
	timers          *TimerQueue
	generator       *trajectory.Generator
	registry        *entity.Registry
	eventDispatcher *event.Dispatcher

	state       SpawnerState
	started     bool
	nextSpawnAt time.Duration
	nextSpawnID TimerID
	pollID      TimerID
	removals    map[component.CometID]TimerID
}

func NewSpawnerSystem(
	settings config.Settings,
	surface interfaces.Surface,
	timers *TimerQueue,
	generator *trajectory.Generator,
	registry *entity.Registry,
	eventDispatcher *event.Dispatcher,
) *SpawnerSystem {
	return &SpawnerSystem{
		settings:        settings,
		surface:         surface,
		timers:          timers,
		generator:       generator,
		registry:        registry,
		eventDispatcher: eventDispatcher,
		state:           SpawnerIdle,
		removals:        make(map[component.CometID]TimerID),
	}
}

// Start запускает цикл. Если поверхность ещё не готова, ждёт её,
// периодически проверяя Ready. Повторный вызов ничего не делает.
func (s *SpawnerSystem) Start() {
	if s.started {
		return
	}
	s.started = true
	s.waitForSurface()
}

func (s *SpawnerSystem) waitForSurface() {
	s.pollID = 0
	if !s.surface.Ready() {
		s.pollID = s.timers.After(s.settings.ReadyPoll(), s.waitForSurface)
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.SpawnerStarted})
	s.spawnAndScheduleNext()
}

func (s *SpawnerSystem) spawnAndScheduleNext() {
	s.nextSpawnID = 0
	s.spawn()
	s.nextSpawnAt = s.timers.Now() + s.settings.SpawnPeriod()
	s.nextSpawnID = s.timers.After(s.settings.SpawnPeriod(), s.spawnAndScheduleNext)
	s.state = SpawnerWaiting
}

func (s *SpawnerSystem) spawn() *component.Comet {
	s.state = SpawnerSpawning

	comet := &component.Comet{
		ID:         s.registry.NewID(),
		Trajectory: s.generator.Generate(s.settings.HeadingOffsetDeg),
		Duration:   s.settings.Duration(),
		SpawnedAt:  s.timers.Now(),
	}
	s.registry.Add(comet)
	s.surface.Attach(comet)

	id := comet.ID
	s.removals[id] = s.timers.After(comet.Duration, func() { s.remove(id) })

	s.eventDispatcher.Dispatch(event.Event{Type: event.CometSpawned, Data: comet})
	return comet
}

func (s *SpawnerSystem) remove(id component.CometID) {
	comet, ok := s.registry.Get(id)
	if !ok {
		return
	}
	delete(s.removals, id)
	s.surface.Detach(id)
	s.registry.Remove(id)
	s.eventDispatcher.Dispatch(event.Event{Type: event.CometRemoved, Data: comet})
}

// Stop снимает все таймеры и сразу убирает живые кометы.
func (s *SpawnerSystem) Stop() {
	if !s.started {
		return
	}
	s.timers.Cancel(s.pollID)
	s.timers.Cancel(s.nextSpawnID)
	for id, timerID := range s.removals {
		s.timers.Cancel(timerID)
		s.remove(id)
	}
	s.started = false
	s.state = SpawnerIdle
	log.Println("Spawner stopped")
}

// State — текущее состояние цикла
func (s *SpawnerSystem) State() SpawnerState {
	return s.state
}

// Live — число комет на экране
func (s *SpawnerSystem) Live() int {
	return s.registry.Len()
}

// NextSpawnIn возвращает время до следующей кометы или 0, если цикл не идёт
func (s *SpawnerSystem) NextSpawnIn() time.Duration {
	if s.state != SpawnerWaiting {
		return 0
	}
	left := s.nextSpawnAt - s.timers.Now()
	if left < 0 {
		return 0
	}
	return left
}
