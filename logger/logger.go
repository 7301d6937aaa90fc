// Package logger is the diagnostics logger of logrotee.
// Diagnostics never go to stdout, which is reserved for the passthrough stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu  sync.RWMutex
	std = New(DefaultConfig())
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel parses a level name. Unknown names fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New creates a logger from config, ignoring any file sink.
func New(config Config) zerolog.Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	w := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	return zerolog.New(w).Level(ParseLevel(config.Level)).With().Timestamp().Logger()
}

// NewWithFile creates a logger from config. When config.FileConfig is set records are
// written as JSON to a lumberjack rotated file and the returned closer closes it.
func NewWithFile(config Config) (zerolog.Logger, io.Closer, error) {
	if config.FileConfig == nil {
		return New(config), nopCloser{}, nil
	}
	fc := config.FileConfig
	if err := os.MkdirAll(filepath.Dir(fc.Filename), 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("logger: failed to create log directory: %w", err)
	}
	fw := &lumberjack.Logger{
		Filename:   fc.Filename,
		MaxSize:    fc.MaxSize,
		MaxAge:     fc.MaxAge,
		MaxBackups: fc.MaxBackups,
		Compress:   fc.Compress,
		LocalTime:  true,
	}
	l := zerolog.New(fw).Level(ParseLevel(config.Level)).With().Timestamp().Logger()
	return l, fw, nil
}

// Init replaces the package logger. The returned closer releases the file sink, if any.
func Init(config Config) (io.Closer, error) {
	l, c, err := NewWithFile(config)
	if err != nil {
		return nil, err
	}
	Set(l)
	return c, nil
}

// Set replaces the package logger
func Set(l zerolog.Logger) {
	mu.Lock()
	std = l
	mu.Unlock()
}

// L returns the package logger
func L() *zerolog.Logger {
	mu.RLock()
	l := std
	mu.RUnlock()
	return &l
}

// Println logs at error level, formatting like fmt.Sprint
func Println(v ...interface{}) {
	L().Error().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// Printf logs at error level, formatting like fmt.Sprintf
func Printf(format string, v ...interface{}) {
	L().Error().Msgf(format, v...)
}
