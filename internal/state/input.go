// internal/state/input.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivors/internal/app"
	"go-survivors/internal/ui"
)

// Input — ввод за кадр для экранов.
type Input struct {
	Pointer ui.Pointer
	Escape  bool // ESC нажата в этом кадре
	Game    app.Input
}

var slotKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// ReadInput снимает клавиатуру и мышь у ebiten.
func ReadInput() Input {
	p := ui.ReadPointer()
	in := Input{
		Pointer: p,
		Escape:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Game: app.Input{
			Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
			Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
			Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
			Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
			Cursor: p.Pos,
		},
	}
	for i, k := range slotKeys {
		if inpututil.IsKeyJustPressed(k) {
			in.Game.Slot = i + 1
		}
	}
	return in
}
