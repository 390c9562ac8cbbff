// internal/event/types.go
package event

import "go-survivors/internal/types"

// События симуляции
const (
	WeaponFired     EventType = "WeaponFired"     // Оружие выстрелило
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен
	PlayerDamaged   EventType = "PlayerDamaged"   // Игрок получил урон
	PlayerHealed    EventType = "PlayerHealed"    // Игрок восстановил здоровье
	PlayerDied      EventType = "PlayerDied"      // Здоровье игрока закончилось
	PlayerLeveledUp EventType = "PlayerLeveledUp" // Новый уровень
	LightningHit    EventType = "LightningHit"    // Шаровая молния попала во врага
)

// События интерфейса
const (
	ButtonClicked  EventType = "ButtonClicked"
	UpgradeChosen  EventType = "UpgradeChosen"  // Выбрано улучшение оружия
	StatIncreased  EventType = "StatIncreased"  // Выбрано улучшение характеристики
	MusicRequested EventType = "MusicRequested" // Экран просит сменить музыку
)

type WeaponFiredData struct {
	Weapon string
	Shots  int
}

type EnemyKilledData struct {
	EnemyID types.EntityID
	Reward  float64
}

type PlayerDamagedData struct {
	Amount int
	Health int
}

type PlayerDiedData struct {
	Level int
}

type PlayerLeveledUpData struct {
	Level int
}

type LightningHitData struct {
	EnemyID types.EntityID
	Killed  bool
}

type UpgradeChosenData struct {
	Option string
}

type MusicRequestedData struct {
	Track string // пустая строка — тишина
}

type PlayerHealedData struct {
	Amount int
	Health int
}

type StatIncreasedData struct {
	Stat string // "speed" или "health"
}
