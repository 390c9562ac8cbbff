// internal/entity/enemy_group.go
package entity

import "go-survivors/internal/types"

// EnemyGroup — упорядоченный набор живых врагов.
// Kill — единственная точка удаления: враг покидает и список, и индекс,
// после чего вызывается хук (награда, событие, звук).
type EnemyGroup struct {
	items  []*Enemy
	index  map[types.EntityID]*Enemy
	onKill func(*Enemy)
}

func NewEnemyGroup() *EnemyGroup {
	return &EnemyGroup{index: make(map[types.EntityID]*Enemy)}
}

// OnKill задаёт хук, вызываемый ровно один раз для каждого убитого врага.
func (g *EnemyGroup) OnKill(fn func(*Enemy)) {
	g.onKill = fn
}

func (g *EnemyGroup) Add(e *Enemy) {
	if _, dup := g.index[e.ID]; dup {
		return
	}
	g.items = append(g.items, e)
	g.index[e.ID] = e
}

// All возвращает врагов в порядке появления. Срез нельзя менять;
// Kill во время обхода безопасен: он строит новый срез, а не сдвигает старый.
func (g *EnemyGroup) All() []*Enemy {
	return g.items
}

func (g *EnemyGroup) Len() int {
	return len(g.items)
}

// Get ищет живого (ещё не удалённого) врага по ID.
func (g *EnemyGroup) Get(id types.EntityID) (*Enemy, bool) {
	e, ok := g.index[id]
	return e, ok
}

// Kill удаляет врага. Повторный вызов для того же ID ничего не делает
// и возвращает false.
func (g *EnemyGroup) Kill(id types.EntityID) bool {
	e, ok := g.index[id]
	if !ok {
		return false
	}
	delete(g.index, id)

	kept := make([]*Enemy, 0, len(g.items))
	for _, other := range g.items {
		if other.ID != id {
			kept = append(kept, other)
		}
	}
	g.items = kept

	if g.onKill != nil {
		g.onKill(e)
	}
	return true
}

// KillAll убивает врагов из списка (после завершения прохода коллизий).
func (g *EnemyGroup) KillAll(defeated []*Enemy) {
	for _, e := range defeated {
		g.Kill(e.ID)
	}
}

// ClearTargeting снимает отметку пистолета со всех врагов.
func (g *EnemyGroup) ClearTargeting() {
	for _, e := range g.items {
		e.RecentlyTargeted = false
	}
}
