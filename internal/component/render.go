// internal/component/render.go
package component

import (
	"image/color"

	"go-survivors/pkg/utils"
)

// Renderable — цвет и размер для отрисовки.
type Renderable struct {
	Color  color.RGBA
	Width  float64
	Height float64
}

// Rect — прямоугольник столкновений (X, Y — левый верхний угол).
type Rect struct {
	X, Y, W, H float64
}

// RectAround строит прямоугольник с центром в c.
func RectAround(c utils.Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Overlaps — строгое пересечение: касание краями не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Offset сдвигает прямоугольник (например, на смещение камеры).
func (r Rect) Offset(d utils.Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

func (r Rect) Center() utils.Vec2 {
	return utils.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains проверяет, лежит ли точка внутри.
func (r Rect) Contains(p utils.Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}
