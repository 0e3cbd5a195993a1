// Package logger wires logrus to a rotating log file.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/b3/b3t/internal/config/data"
)

// TimestampFormat is the log line time layout.
const TimestampFormat = "15:04:05 MST 2006/01/02"

var (
	sink *lumberjack.Logger
	mx   sync.Mutex
)

// ParseLevel converts a level name, falling back to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

// Init points the standard logrus logger at the configured file. The terminal
// is owned by the UI so nothing is ever written to stdout.
func Init(cfg data.Logger) (*logrus.Logger, error) {
	mx.Lock()
	defer mx.Unlock()

	l := logrus.StandardLogger()
	l.SetLevel(ParseLevel(cfg.Level))
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})

	if cfg.File == "" {
		l.SetOutput(io.Discard)
		return l, nil
	}
	if err := data.EnsureFullPath(cfg.File); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	if sink != nil {
		_ = sink.Close()
	}
	sink = &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	l.SetOutput(sink)

	return l, nil
}

// Close flushes and closes the log file.
func Close() error {
	mx.Lock()
	defer mx.Unlock()

	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}
