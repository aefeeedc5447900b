// internal/event/types.go
package event

const (
	SpawnerStarted EventType = "SpawnerStarted" // поверхность готова, первый запуск
	CometSpawned   EventType = "CometSpawned"   // комета появилась
	CometRemoved   EventType = "CometRemoved"   // комета удалена
)
