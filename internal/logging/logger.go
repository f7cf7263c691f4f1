// Package logging is a small structured logger for the primiter tooling.
// Entries are written as one JSON object per line.
package logging

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// Level is the logging level.
	// The default Level is LevelInfo.
	Level Level
	// Separator is used to separate log entries from each other.
	// By default, it is a new line.
	Separator string
	// MarshalFunc is used to serialise the logging event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)

	outLock sync.Mutex
}

func (l *Logger) Debug(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelDebug, msg, ds...)
}

func (l *Logger) Info(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelInfo, msg, ds...)
}

func (l *Logger) Warn(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelWarn, msg, ds...)
}

func (l *Logger) Error(ctx context.Context, msg string, ds ...Detail) {
	l.Log(ctx, LevelError, msg, ds...)
}

// Log writes a single entry when level is enabled.
// A nil Logger discards everything, so callers can pass it around as an optional dependency.
func (l *Logger) Log(ctx context.Context, level Level, msg string, ds ...Detail) {
	if l == nil {
		return
	}
	if !isLevelEnabled(l.getLevel(), level) {
		return
	}
	e := make(entry)
	for _, d := range ds {
		if d != nil {
			d.addTo(e)
		}
	}
	e[l.getLevelKey()] = level
	e[l.getMessageKey()] = msg
	e[l.getTimestampKey()] = clock.Now().Format(time.RFC3339)
	_ = l.write(e)
}

func (l *Logger) write(e entry) error {
	bs, err := l.marshalFunc()(e)
	if err != nil {
		return err
	}
	l.outLock.Lock()
	defer l.outLock.Unlock()
	_, err = l.writer().Write(append(bs, []byte(l.separator())...))
	return err
}

func (l *Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stderr
}

func (l *Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l *Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	return "\n"
}

func (l *Logger) getLevel() Level {
	if len(l.Level) == 0 {
		return defaultLevel
	}
	return l.Level
}

func (l *Logger) getTimestampKey() string {
	return coalesce(l.TimestampKey, "timestamp")
}

func (l *Logger) getMessageKey() string {
	return coalesce(l.MessageKey, "message")
}

func (l *Logger) getLevelKey() string {
	return coalesce(l.LevelKey, "level")
}

func coalesce(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
