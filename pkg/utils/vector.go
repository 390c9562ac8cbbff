// pkg/utils/vector.go
package utils

import "math"

// Vec2 — двумерный вектор (x, y) на float64.
type Vec2 struct {
	X, Y float64
}

// V — короткий конструктор.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len возвращает длину вектора.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize возвращает единичный вектор того же направления.
// Вектор нулевой длины остаётся нулевым: это "нет движения", а не ошибка.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Dist — евклидово расстояние между двумя точками.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// IsZero сообщает, является ли вектор нулевым.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle возвращает угол вектора в радианах (экранная система, Y вниз).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
