// internal/utils/math.go
package utils

import "math"

// RotatedBounds возвращает размеры ограничивающего прямоугольника
// для прямоугольника w×h, повёрнутого на angle радиан.
func RotatedBounds(w, h, angle float64) (float64, float64) {
	sin, cos := math.Abs(math.Sin(angle)), math.Abs(math.Cos(angle))
	return w*cos + h*sin, w*sin + h*cos
}
