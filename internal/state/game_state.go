// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-survivors/internal/app"
	"go-survivors/internal/ui"
)

// GameState — экран забега: симуляция и HUD поверх неё.
type GameState struct {
	ctx    *Context
	sim    *app.Simulation
	health *ui.PlayerHealthIndicator
	level  *ui.PlayerLevelIndicator
	slots  *ui.WeaponSlots
}

func NewGameState(ctx *Context, sim *app.Simulation) *GameState {
	return &GameState{
		ctx:    ctx,
		sim:    sim,
		health: ui.NewPlayerHealthIndicator(20, 20, ctx.Fonts),
		level:  ui.NewPlayerLevelIndicator(ctx.Fonts),
		slots:  ui.NewWeaponSlots(20, 70, ctx.Fonts),
	}
}

func (g *GameState) Enter() {
	g.ctx.requestMusic("battle")
}

func (g *GameState) Update(deltaTime float64, in Input) {
	if in.Escape && !g.sim.GameOver() {
		g.ctx.Stack.Push(NewPauseState(g.ctx))
		return
	}

	switch g.sim.Update(deltaTime, in.Game) {
	case app.LevelUp:
		g.ctx.Stack.Push(NewLevelUpState(g.ctx, g.sim))
	case app.Over:
		g.ctx.Stack.Push(NewGameOverState(g.ctx, g.sim.Player().Level()))
	}
}

func (g *GameState) Sim() *app.Simulation { return g.sim }

func (g *GameState) Draw(screen *ebiten.Image) {
	g.sim.Draw(screen)

	p := g.sim.Player()
	center := g.sim.View().PlayerScreen
	g.level.Draw(screen, p.Progress, center, p.Size)
	g.health.Draw(screen, p.Health)
	g.slots.Draw(screen, p)
}

// Exit отключает забег от диспетчера.
func (g *GameState) Exit() {
	g.sim.Close()
}
