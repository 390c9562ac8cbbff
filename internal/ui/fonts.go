// internal/ui/fonts.go
package ui

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"go-survivors/pkg/logger"
	"go-survivors/pkg/utils"
)

// Размеры шрифтов
const (
	TitleSize = 48
	TextSize  = 24
	SmallSize = 16
)

// Fonts — шрифты интерфейса трёх размеров.
type Fonts struct {
	Title text.Face
	Text  text.Face
	Small text.Face
}

// LoadFonts читает TTF из path. Без файла используется встроенный Go Regular.
func LoadFonts(path string) (*Fonts, error) {
	data, err := os.ReadFile(path)
	switch {
	case path == "" || errors.Is(err, fs.ErrNotExist):
		if path != "" {
			logger.Log.WithField("path", path).Warn("Шрифт не найден, используется встроенный")
		}
		data = goregular.TTF
	case err != nil:
		return nil, fmt.Errorf("failed to read font %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	return &Fonts{
		Title: &text.GoTextFace{Source: source, Size: TitleSize},
		Text:  &text.GoTextFace{Source: source, Size: TextSize},
		Small: &text.GoTextFace{Source: source, Size: SmallSize},
	}, nil
}

// BitmapFonts — растровый шрифт 7x13 на все размеры.
func BitmapFonts() *Fonts {
	face := text.NewGoXFace(basicfont.Face7x13)
	return &Fonts{Title: face, Text: face, Small: face}
}

// DrawText рисует строку с левым верхним углом в (x, y).
func DrawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// DrawCentered рисует строку с центром в c.
func DrawCentered(screen *ebiten.Image, s string, face text.Face, c utils.Vec2, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(c.X, c.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
