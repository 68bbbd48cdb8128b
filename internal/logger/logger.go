package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New, servis genelinde kullanılacak zerolog logger'ını oluşturur.
// Development ortamında okunabilir konsol çıktısı, diğer ortamlarda JSON üretir.
func New(serviceName, env, levelStr string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if env == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		l = zerolog.New(output)
	} else {
		l = zerolog.New(os.Stderr)
	}

	return l.Level(level).With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
