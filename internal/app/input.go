package app

import "go-survivors/pkg/utils"

// Input — состояние управления на один тик.
type Input struct {
	Up, Down, Left, Right bool
	Slot                  int        // 1..3 — выбранный слот, 0 — без изменений
	Cursor                utils.Vec2 // экранные координаты курсора
}

// Status — итог тика симуляции.
type Status int

const (
	Running Status = iota
	// LevelUp — тик не выполнялся: игрок должен выбрать улучшение.
	LevelUp
	// Over — забег окончен.
	Over
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case LevelUp:
		return "level_up"
	case Over:
		return "over"
	default:
		return "unknown"
	}
}
