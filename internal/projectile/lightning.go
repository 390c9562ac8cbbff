package projectile

import (
	"math"

	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/types"
	iutils "go-survivors/internal/utils"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Размер спрайта молнии до поворота (остриё смотрит вверх).
const (
	LightningWidth  = 12
	LightningHeight = 20
)

// зигзаг молнии в локальных координатах спрайта
var boltShape = []utils.Vec2{
	{X: 0, Y: -10},
	{X: 6, Y: -3},
	{X: -1, Y: 1},
	{X: 5, Y: 10},
	{X: -6, Y: 2},
	{X: 1, Y: -1},
	{X: -6, Y: -4},
	{X: 0, Y: -10},
}

// Lightning — прямой снаряд жезла молний. Хитбокс — ограничивающий
// прямоугольник спрайта, повёрнутого по направлению полёта.
type Lightning struct {
	straight
	rotation float64
}

func NewLightning(id types.EntityID, pos, dir utils.Vec2, speed float64, damage int, lifetime float64) *Lightning {
	// спрайт смотрит вверх, поворачиваем его к направлению полёта
	rotation := dir.Angle() + math.Pi/2
	w, h := iutils.RotatedBounds(LightningWidth, LightningHeight, rotation)
	return &Lightning{
		straight: straight{
			id:     id,
			pos:    component.At(pos),
			dir:    dir,
			speed:  speed,
			damage: damage,
			life:   component.Lifetime{Max: lifetime},
			w:      w,
			h:      h,
		},
		rotation: rotation,
	}
}

func (l *Lightning) Draw(screen *ebiten.Image, camera utils.Vec2) {
	c := l.pos.Vec().Add(camera)
	sin, cos := math.Sincos(l.rotation)
	prev := utils.Vec2{}
	for i, pt := range boltShape {
		p := utils.V(c.X+pt.X*cos-pt.Y*sin, c.Y+pt.X*sin+pt.Y*cos)
		if i > 0 {
			vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(p.X), float32(p.Y), 2, config.LightningColor, true)
		}
		prev = p
	}
}
