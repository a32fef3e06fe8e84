package event

import (
	"castle-defense/internal/component"
	"castle-defense/internal/types"
)

const (
	EntitySpawned  EventType = "EntitySpawned"  // Сущность появилась
	EntityDamaged  EventType = "EntityDamaged"  // Сущность получила урон
	EntityDefeated EventType = "EntityDefeated" // Сущность убрана из ростера
	WaveStarted    EventType = "WaveStarted"    // Началась волна врагов
	GameOver       EventType = "GameOver"       // База разрушена
	PauseToggled   EventType = "PauseToggled"
)

// EntityInfo is the payload of EntitySpawned and EntityDefeated.
type EntityInfo struct {
	ID   types.EntityID
	Kind component.Kind
}

// DamageInfo is the payload of EntityDamaged.
type DamageInfo struct {
	ID     types.EntityID
	Kind   component.Kind
	Damage float64
	HP     float64
}

// WaveInfo is the payload of WaveStarted.
type WaveInfo struct {
	Number int
	Count  int
}
