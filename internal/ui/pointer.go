// internal/ui/pointer.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivors/pkg/utils"
)

// Pointer — состояние мыши в текущем кадре.
type Pointer struct {
	Pos      utils.Vec2
	Down     bool
	Pressed  bool // левая кнопка нажата в этом кадре
	Released bool // левая кнопка отпущена в этом кадре
}

// ReadPointer снимает состояние мыши у ebiten.
func ReadPointer() Pointer {
	x, y := ebiten.CursorPosition()
	return Pointer{
		Pos:      utils.V(float64(x), float64(y)),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}
