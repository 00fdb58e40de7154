// Package logger holds the process-wide zap logger. Terminals get a short
// coloured console line; an optional log file receives JSON lines and is
// rotated by lumberjack so a long tuning session cannot fill the disk.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var ErrUnknownLevel = errors.New("unknown log level")

// Log discards everything until Init or Install runs, so packages can log
// from tests without setup. Loggers taken with Named before that stay silent.
var Log = zap.NewNop()

var Sugar = Log.Sugar()

// FileConfig sets the log file path and its rotation limits.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig keeps a few days of sessions next to path.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  8,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

func (f FileConfig) writer() *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   f.Path,
		MaxSize:    f.MaxSizeMB,
		MaxBackups: f.MaxBackups,
		MaxAge:     f.MaxAgeDays,
		Compress:   f.Compress,
		LocalTime:  true,
	}
}

// Options selects the level and the sinks. A nil Console or an empty
// File.Path disables that sink; with neither the logger is a no-op.
type Options struct {
	Level   string
	Console io.Writer
	File    FileConfig
}

// ParseLevel accepts the zap level names. An empty string means info.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w %q", ErrUnknownLevel, level)
	}
	return lvl, nil
}

func encoderConfig(console bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.MillisDurationEncoder,
		ConsoleSeparator: " ",
	}
	if console {
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}

// New builds a logger from opts without installing it.
func New(opts Options) (*zap.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core
	if opts.Console != nil {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig(true)),
			zapcore.AddSync(opts.Console),
			lvl,
		))
	}
	if opts.File.Path != "" {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig(false)),
			zapcore.AddSync(opts.File.writer()),
			lvl,
		))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// Install replaces the global logger. On error the previous one stays.
func Install(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	Log = l
	Sugar = l.Sugar()
	return nil
}

// Init logs to stdout and, when logFile is set, to a rotated file there.
func Init(level, logFile string) error {
	opts := Options{Level: level, Console: os.Stdout}
	if logFile != "" {
		opts.File = DefaultFileConfig(logFile)
	}
	return Install(opts)
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}

// Named returns a child of the current global logger.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}
