// internal/state/context.go
package state

import (
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/ui"
	"go-survivors/internal/utils"
)

// VolumeControl меняет громкость. Звуковой менеджер реализует его,
// без звука подойдёт nil.
type VolumeControl interface {
	SetSFXVolume(v float64)
	SetMusicVolume(v float64)
}

// Context — общее для всех экранов.
type Context struct {
	Stack    *Stack
	Balance  *defs.Balance
	Settings *config.Settings
	Volume   VolumeControl
	Events   *event.Dispatcher
	Fonts    *ui.Fonts
	Width    float64
	Height   float64
}

// NewRng — генератор для нового забега. Ненулевой сид из настроек
// делает забеги воспроизводимыми.
func (c *Context) NewRng() *utils.PRNGService {
	return utils.NewPRNGService(c.Settings.Seed)
}

func (c *Context) requestMusic(track string) {
	c.Events.Emit(event.MusicRequested, event.MusicRequestedData{Track: track})
}
