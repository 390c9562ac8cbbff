// Package projectile содержит снаряды оружия: пулю, молнию,
// шаровую молнию и магическое облако. Каждый снаряд принадлежит
// оружию, которое его выпустило; позиции хранятся в мировых координатах.
package projectile

import (
	"go-survivors/internal/types"
	"go-survivors/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Projectile — общий контракт снарядов.
type Projectile interface {
	ID() types.EntityID
	Pos() utils.Vec2
	Alive() bool
	Update(dt float64)
	Draw(screen *ebiten.Image, camera utils.Vec2)
}

// Compact убирает погибшие снаряды, сохраняя порядок остальных.
func Compact[T Projectile](ps []T) []T {
	kept := ps[:0]
	for _, p := range ps {
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	// обнуляем хвост, чтобы не держать ссылки на мёртвые снаряды
	var zero T
	for i := len(kept); i < len(ps); i++ {
		ps[i] = zero
	}
	return kept
}
