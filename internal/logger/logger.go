// Package logger provides the viewer's zap loggers: a colored console core,
// an optional rotating file core, and per-component level overrides applied
// to the loggers handed out by Named.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance. It discards everything until Init runs.
var Log = zap.NewNop()

// Sugar is the sugared form of Log.
var Sugar = Log.Sugar()

var (
	// root carries no level filter of its own beyond the cores' floor.
	root = Log

	// levels holds the per-component overrides from the last Init.
	levels map[string]zapcore.Level
)

// Log file rotation.
const (
	fileMaxSizeMB  = 50
	fileMaxBackups = 3
	fileMaxAgeDays = 7
)

// Options configures Init.
type Options struct {
	// Level applies to Log and to components without an override.
	// Empty means info.
	Level string

	// Components maps a Named component to its own level.
	Components map[string]string

	// LogFile enables the rotating file core when set.
	LogFile string

	// Console enables colored output on stdout.
	Console bool
}

// Init builds the global loggers. An unknown level name is an error.
func Init(opts Options) error {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return err
	}

	overrides := make(map[string]zapcore.Level, len(opts.Components))
	floor := level
	for name, s := range opts.Components {
		lvl, err := parseLevel(s)
		if err != nil {
			return fmt.Errorf("component %q: %w", name, err)
		}
		overrides[name] = lvl
		floor = min(floor, lvl)
	}

	// Cores admit the most verbose level any component asked for; each
	// logger then narrows itself with IncreaseLevel.
	var cores []zapcore.Core
	if opts.Console {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(zapcore.TimeEncoderOfLayout("15:04:05"), zapcore.CapitalColorLevelEncoder)),
			zapcore.Lock(os.Stdout),
			floor,
		))
	}
	if opts.LogFile != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(zapcore.ISO8601TimeEncoder, zapcore.CapitalLevelEncoder)),
			zapcore.AddSync(rotatingFile(opts.LogFile)),
			floor,
		))
	}

	root = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	levels = overrides
	Log = root.WithOptions(zap.IncreaseLevel(level))
	Sugar = Log.Sugar()
	return nil
}

// Named returns a child logger for a component such as "window",
// "renderer" or "viewer". A level set for the component in Options replaces
// the global level, in either direction.
func Named(component string) *zap.Logger {
	lvl, ok := levels[component]
	if !ok {
		return Log.Named(component)
	}
	return root.Named(component).WithOptions(zap.IncreaseLevel(lvl))
}

func encoderConfig(timeEnc zapcore.TimeEncoder, levelEnc zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      levelEnc,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
}

func rotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxBackups,
		MaxAge:     fileMaxAgeDays,
		Compress:   true,
		LocalTime:  true,
	}
}

func parseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}
