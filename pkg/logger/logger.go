package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr с уровнем info, чтобы пакеты можно было
// использовать в тестах и утилитах без явной инициализации.
var Log = logrus.New()

// Init инициализирует глобальный логгер из переменных окружения.
// Вызывается один раз при старте приложения.
//
//   - LOG_LEVEL  - уровень (по умолчанию "info")
//   - LOG_FORMAT - "json" или текст
//   - LOG_FILE   - путь к файлу; терминал занят рендером, поэтому без файла пишем в stderr
func Init() {
	Log = logrus.New()

	// 1. Уровень логирования
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// 2. Вывод
	var (
		out     io.Writer = os.Stderr
		fileErr error
	)
	path := os.Getenv("LOG_FILE")
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fileErr = err
		} else {
			out = f
		}
	}
	Log.SetOutput(out)

	// 3. Форматтер. Цвета только для stderr, в файле они превращаются в мусор
	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   logFormat != "plain" && out == os.Stderr,
		})
	}

	if fileErr != nil {
		Log.WithError(fileErr).WithField("path", path).Warn("Cannot open log file, falling back to stderr.")
	}
}

// SetOutput перенаправляет вывод глобального логгера.
// Используется фронтендом, пока tcell владеет терминалом.
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}
