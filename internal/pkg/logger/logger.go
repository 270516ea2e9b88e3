// Package logger holds the process-wide zerolog logger. Packages log
// through the level helpers so output format and level are decided in
// one place.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel names a zerolog level in configuration.
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	FatalLevel LogLevel = "fatal"
)

// Config controls the global logger.
type Config struct {
	Level LogLevel
	// Pretty switches to the human-readable console writer.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var global zerolog.Logger

// Configure replaces the global logger. Unknown levels fall back to
// info.
func Configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	switch cfg.Level {
	case DebugLevel:
		level = zerolog.DebugLevel
	case InfoLevel:
		level = zerolog.InfoLevel
	case WarnLevel:
		level = zerolog.WarnLevel
	case ErrorLevel:
		level = zerolog.ErrorLevel
	case FatalLevel:
		level = zerolog.FatalLevel
	}
	zerolog.SetGlobalLevel(level)

	writer := cfg.Output
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	global = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = global
}

func Debug() *zerolog.Event { return global.Debug() }

func Info() *zerolog.Event { return global.Info() }

func Warn() *zerolog.Event { return global.Warn() }

func Error() *zerolog.Event { return global.Error() }

// Fatal logs and then exits the process.
func Fatal() *zerolog.Event { return global.Fatal() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
