package logger

import (
	"go-admin-dashboard/internal/config"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger defines a standard interface for logging.
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error, msg string)
	Fatal(err error, msg string)
	With(fields map[string]interface{}) Logger
}

type zerologLogger struct {
	zl zerolog.Logger
}

// New builds a Logger from cfg writing to out, or stdout when out is nil.
// Format "console" gives human-readable lines; anything else is JSON.
// An unknown or empty level falls back to info and says so once.
func New(cfg config.LogConfig, out io.Writer) Logger {
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, NoColor: out != os.Stdout, TimeFormat: "15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	badLevel := err != nil || level == zerolog.NoLevel
	if badLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Str("app", "dashboard").Logger()
	if badLevel && cfg.Level != "" {
		zl.Warn().Str("level", cfg.Level).Msg("Unknown log level, using info")
	}
	return &zerologLogger{zl: zl}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return &zerologLogger{zl: zerolog.Nop()}
}

func (l *zerologLogger) Debug(msg string) { l.zl.Debug().Msg(msg) }
func (l *zerologLogger) Info(msg string)  { l.zl.Info().Msg(msg) }
func (l *zerologLogger) Warn(msg string)  { l.zl.Warn().Msg(msg) }

func (l *zerologLogger) Error(err error, msg string) {
	l.zl.Error().Err(err).Msg(msg)
}

func (l *zerologLogger) Fatal(err error, msg string) {
	l.zl.Fatal().Err(err).Msg(msg)
}

// With returns a child logger that adds fields to every line.
func (l *zerologLogger) With(fields map[string]interface{}) Logger {
	return &zerologLogger{zl: l.zl.With().Fields(fields).Logger()}
}
