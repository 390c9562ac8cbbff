// cmd/game/main.go
package main

import (
	"context"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"go-survivors/internal/audio"
	"go-survivors/internal/config"
	"go-survivors/internal/defs"
	"go-survivors/internal/event"
	"go-survivors/internal/state"
	"go-survivors/internal/ui"
	"go-survivors/pkg/logger"
)

// AppGame — адаптер стека экранов к ebiten.Game.
type AppGame struct {
	stack          *state.Stack
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.stack.Update(deltaTime, state.ReadInput())
	if a.stack.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stack.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	logger.Init()

	settings, err := config.SettingsFromEnv()
	if err != nil {
		logger.Log.WithError(err).Fatal("Некорректные настройки")
	}

	balance, found, err := defs.LoadOrDefault(settings.BalancePath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Не удалось загрузить баланс")
	}
	if !found {
		logger.Log.WithField("path", settings.BalancePath).Warn("Файл баланса не найден, используются значения по умолчанию")
	}

	fonts, err := ui.LoadFonts(settings.FontPath)
	if err != nil {
		logger.Log.WithError(err).Warn("Шрифт не загружен, используется растровый")
		fonts = ui.BitmapFonts()
	}

	events := event.NewDispatcher()
	registry := audio.NewRegistry(config.AudioSampleRate)
	if err := registry.Load(context.Background(), settings.AssetsDir); err != nil {
		logger.Log.WithError(err).Error("Звуки не загружены, игра будет без звука")
	}
	sink := audio.NewEbitenSink(ebitenaudio.NewContext(config.AudioSampleRate), registry)
	sounds := audio.NewManager(sink, &settings)
	sounds.Subscribe(events)

	stack := state.NewStack()
	ctx := &state.Context{
		Stack:    stack,
		Balance:  balance,
		Settings: &settings,
		Volume:   sounds,
		Events:   events,
		Fonts:    fonts,
		Width:    config.ScreenWidth,
		Height:   config.ScreenHeight,
	}
	stack.Push(state.NewMenuState(ctx))

	logger.Log.WithFields(logrus.Fields{
		"characters": len(balance.Characters),
		"seed":       settings.Seed,
	}).Info("Игра запущена")

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	app := &AppGame{stack: stack, lastUpdateTime: time.Now()}
	if err := ebiten.RunGame(app); err != nil {
		logger.Log.WithError(err).Fatal("Игра завершилась с ошибкой")
	}
}
