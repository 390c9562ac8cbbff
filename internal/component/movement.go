// internal/component/movement.go
package component

import "go-survivors/pkg/utils"

// Position — точная позиция сущности в мировых координатах.
// Вся физика и коллизии работают с float-значениями; целые координаты
// нужны только для отрисовки.
type Position struct {
	X, Y float64
}

// At создаёт позицию из вектора.
func At(v utils.Vec2) Position {
	return Position{X: v.X, Y: v.Y}
}

func (p Position) Vec() utils.Vec2 {
	return utils.Vec2{X: p.X, Y: p.Y}
}

// Move сдвигает позицию на dir*speed (скорость в пикселях за тик).
func (p *Position) Move(dir utils.Vec2, speed float64) {
	p.X += dir.X * speed
	p.Y += dir.Y * speed
}

// Display возвращает позицию для отрисовки (усечение к нулю).
func (p Position) Display() (int, int) {
	return int(p.X), int(p.Y)
}
