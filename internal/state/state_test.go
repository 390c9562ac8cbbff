package state

import (
	"image/color"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivors/internal/app"
	"go-survivors/internal/component"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/entity"
	"go-survivors/internal/event"
	"go-survivors/internal/ui"
	"go-survivors/internal/utils"
	"go-survivors/pkg/logger"
	vec "go-survivors/pkg/utils"
)

func TestMain(m *testing.M) {
	logger.Discard()
	os.Exit(m.Run())
}

// fakeState записывает вызовы жизненного цикла.
type fakeState struct {
	name    string
	log     *[]string
	overlay bool
	updates int
}

func (f *fakeState) Enter()                         { *f.log = append(*f.log, "enter "+f.name) }
func (f *fakeState) Exit()                          { *f.log = append(*f.log, "exit "+f.name) }
func (f *fakeState) Update(float64, Input)          { f.updates++ }
func (f *fakeState) Draw(*ebiten.Image)             { *f.log = append(*f.log, "draw "+f.name) }
func (f *fakeState) Overlay() bool                  { return f.overlay }
func (f *fakeState) Resume()                        { *f.log = append(*f.log, "resume "+f.name) }
func newFake(name string, log *[]string) *fakeState { return &fakeState{name: name, log: log} }

func TestStackLifecycle(t *testing.T) {
	var log []string
	s := NewStack()
	a, b, c := newFake("a", &log), newFake("b", &log), newFake("c", &log)

	s.Push(a)
	s.Push(b)
	s.Replace(c)
	assert.Equal(t, c, s.Top())
	assert.Equal(t, 2, s.Len())

	s.Pop()
	assert.Equal(t, []string{"enter a", "enter b", "exit b", "enter c", "exit c", "resume a"}, log)
	assert.False(t, s.Done())

	s.Pop()
	assert.True(t, s.Done())
	assert.Nil(t, s.Pop())
}

func TestStackUpdatesOnlyTop(t *testing.T) {
	var log []string
	s := NewStack()
	a, b := newFake("a", &log), newFake("b", &log)
	s.Push(a)
	s.Push(b)

	s.Update(0.016, Input{})
	assert.Zero(t, a.updates)
	assert.Equal(t, 1, b.updates)
}

func TestStackDrawsOverlaysOnTopOfOpaque(t *testing.T) {
	var log []string
	s := NewStack()
	root, game := newFake("root", &log), newFake("game", &log)
	pause, opts := newFake("pause", &log), newFake("options", &log)
	pause.overlay = true
	s.Push(root)
	s.Push(game)
	s.Push(pause)

	log = nil
	s.Draw(nil)
	assert.Equal(t, []string{"draw game", "draw pause"}, log)

	s.Push(opts)
	log = nil
	s.Draw(nil)
	assert.Equal(t, []string{"draw options"}, log)
}

func TestPopToRootKeepsBottom(t *testing.T) {
	var log []string
	s := NewStack()
	s.Push(newFake("menu", &log))
	s.Push(newFake("game", &log))
	s.Push(newFake("pause", &log))

	log = nil
	s.PopToRoot()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"exit pause", "exit game", "resume menu"}, log)
}

func TestQuit(t *testing.T) {
	var log []string
	s := NewStack()
	s.Push(newFake("menu", &log))
	s.Quit()
	assert.True(t, s.Done())
}

// --- экраны ---

type music struct{ tracks []string }

func (m *music) OnEvent(e event.Event) {
	m.tracks = append(m.tracks, e.Data.(event.MusicRequestedData).Track)
}

func quietBalance() *defs.Balance {
	b := defs.Default()
	b.Spawn.InitialEnemies = 0
	b.Spawn.BaseChance = 0
	b.Spawn.ChancePerLevel = 0
	return b
}

func newContext(t *testing.T) (*Context, *music) {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Seed = 7
	d := event.NewDispatcher()
	m := &music{}
	d.Subscribe(m, event.MusicRequested)
	return &Context{
		Stack:    NewStack(),
		Balance:  quietBalance(),
		Settings: &settings,
		Events:   d,
		Fonts:    ui.BitmapFonts(),
		Width:    config.ScreenWidth,
		Height:   config.ScreenHeight,
	}, m
}

// click — нажать и отпустить в центре прямоугольника за два кадра.
func click(st State, r component.Rect) {
	p := ui.Pointer{Pos: r.Center(), Pressed: true, Down: true}
	st.Update(0, Input{Pointer: p})
	p = ui.Pointer{Pos: r.Center(), Released: true}
	st.Update(0, Input{Pointer: p})
}

func escape() Input { return Input{Escape: true} }

func TestMenuLoadsThenOffersCharacters(t *testing.T) {
	ctx, m := newContext(t)
	menu := NewMenuState(ctx)
	ctx.Stack.Push(menu)
	assert.Equal(t, []string{"menu"}, m.tracks)

	click(menu, menu.buttons[0].Rect)
	require.True(t, menu.Loading())

	menu.Update(0.5, Input{})
	assert.IsType(t, &MenuState{}, ctx.Stack.Top())
	menu.Update(0.25, Input{})
	assert.False(t, menu.Loading())
	assert.IsType(t, &SelectCharacterState{}, ctx.Stack.Top())
}

func TestMenuQuit(t *testing.T) {
	ctx, _ := newContext(t)
	menu := NewMenuState(ctx)
	ctx.Stack.Push(menu)
	click(menu, menu.buttons[2].Rect)
	assert.True(t, ctx.Stack.Done())
}

func TestSelectCharacterStartsRun(t *testing.T) {
	ctx, m := newContext(t)
	ctx.Stack.Push(NewMenuState(ctx))
	sel := NewSelectCharacterState(ctx)
	ctx.Stack.Push(sel)
	require.Len(t, sel.buttons, len(ctx.Balance.Characters))

	click(sel, sel.buttons[3].Rect) // электромаг
	game, ok := ctx.Stack.Top().(*GameState)
	require.True(t, ok)
	assert.Equal(t, 2, ctx.Stack.Len())
	assert.Equal(t, 2, game.Sim().Player().SlotCount())
	assert.Equal(t, []string{"menu", "battle"}, m.tracks)
}

func TestSelectCharacterEscapeReturnsToMenu(t *testing.T) {
	ctx, _ := newContext(t)
	ctx.Stack.Push(NewMenuState(ctx))
	sel := NewSelectCharacterState(ctx)
	ctx.Stack.Push(sel)

	sel.Update(0, escape())
	assert.IsType(t, &MenuState{}, ctx.Stack.Top())
}

func newGame(t *testing.T, ctx *Context, maxHealth int) *GameState {
	t.Helper()
	pd := ctx.Balance.Player
	pd.MaxHealth = maxHealth
	sim := app.NewSimulationWithPlayer(ctx.Balance, entity.NewPlayer(pd), utils.NewPRNGService(1), ctx.Events, ctx.Width, ctx.Height)
	ctx.Stack.Push(NewMenuState(ctx))
	g := NewGameState(ctx, sim)
	ctx.Stack.Push(g)
	return g
}

func TestPauseAndBackToMenu(t *testing.T) {
	ctx, m := newContext(t)
	g := newGame(t, ctx, 100)

	g.Update(1.0/60, escape())
	pause, ok := ctx.Stack.Top().(*PauseState)
	require.True(t, ok)

	pause.Update(0, escape())
	assert.Equal(t, g, ctx.Stack.Top())

	g.Update(1.0/60, escape())
	pause = ctx.Stack.Top().(*PauseState)
	click(pause, pause.buttons[2].Rect)
	assert.Equal(t, 1, ctx.Stack.Len())
	assert.Equal(t, []string{"menu", "battle", "menu"}, m.tracks)

	// закрытый забег больше не получает награды
	ctx.Events.Emit(event.EnemyKilled, event.EnemyKilledData{Reward: 500})
	assert.Equal(t, 1, g.Sim().Player().Level())
}

func TestLevelUpPushesUpgradeChoice(t *testing.T) {
	ctx, _ := newContext(t)
	g := newGame(t, ctx, 100)
	p := g.Sim().Player()
	p.AddScore(150)

	g.Update(1.0/60, Input{})
	lvl, ok := ctx.Stack.Top().(*LevelUpState)
	require.True(t, ok)
	// без оружия: случайное оружие (уровень 2 чётный), скорость, здоровье
	require.Len(t, lvl.Options(), 3)
	assert.Equal(t, app.UpgradeSpeed, lvl.Options()[1].Kind)

	speed := p.Speed
	click(lvl, lvl.buttons[1].Rect)
	assert.Equal(t, speed+ctx.Balance.Player.SpeedStep, p.Speed)
	assert.Equal(t, g, ctx.Stack.Top())
}

func TestDeathShowsGameOver(t *testing.T) {
	ctx, _ := newContext(t)
	g := newGame(t, ctx, 10)
	sim := g.Sim()
	sim.Enemies().Add(entity.NewEnemy(100, sim.View().PlayerWorld(),
		defs.EnemyStats{Speed: 0, MaxHealth: 50, Damage: 20}, ctx.Balance.Enemy, color.RGBA{255, 0, 0, 255}))

	g.Update(0.6, Input{})
	g.Update(0.1, Input{})
	over, ok := ctx.Stack.Top().(*GameOverState)
	require.True(t, ok)
	assert.Equal(t, 1, over.level)

	over.Update(0, Input{})
	assert.Equal(t, over, ctx.Stack.Top())
	over.Update(0, escape())
	assert.IsType(t, &MenuState{}, ctx.Stack.Top())
}

type volume struct{ music, sfx float64 }

func (v *volume) SetMusicVolume(x float64) { v.music = x }
func (v *volume) SetSFXVolume(x float64)   { v.sfx = x }

func TestOptionsSlidersSetVolume(t *testing.T) {
	ctx, _ := newContext(t)
	vol := &volume{}
	ctx.Volume = vol
	opts := NewOptionsState(ctx)
	ctx.Stack.Push(NewMenuState(ctx))
	ctx.Stack.Push(opts)

	r := opts.music.Rect
	opts.Update(0, Input{Pointer: ui.Pointer{Pos: vec.V(r.X+r.W*0.75, r.Y+5), Pressed: true, Down: true}})
	opts.Update(0, Input{Pointer: ui.Pointer{Pos: vec.V(r.X+r.W*0.75, r.Y+5), Released: true}})
	assert.InDelta(t, 0.75, vol.music, 1e-9)

	r = opts.sfx.Rect
	opts.Update(0, Input{Pointer: ui.Pointer{Pos: vec.V(r.X, r.Y+5), Pressed: true, Down: true}})
	assert.Equal(t, 0.0, vol.sfx)

	opts.Update(0, escape())
	assert.IsType(t, &MenuState{}, ctx.Stack.Top())
}

func TestOptionsWithoutAudioWriteSettings(t *testing.T) {
	ctx, _ := newContext(t)
	opts := NewOptionsState(ctx)
	ctx.Stack.Push(opts)

	r := opts.sfx.Rect
	opts.Update(0, Input{Pointer: ui.Pointer{Pos: vec.V(r.X+r.W*0.2, r.Y+5), Pressed: true, Down: true}})
	assert.InDelta(t, 0.2, ctx.Settings.SFXVolume, 1e-9)
}
