package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init работает с настройками logrus по умолчанию.
var Log = logrus.New()

// Init настраивает глобальный логгер.
// Должна быть вызвана один раз при старте приложения в main.go.
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

// Configure задаёт уровень, формат ("json" или текст) и вывод.
// Неизвестный уровень превращается в info.
func Configure(logLevel, logFormat string, out io.Writer) {
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(logFormat) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// Discard глушит лог (для тестов).
func Discard() {
	Log.SetOutput(io.Discard)
}
