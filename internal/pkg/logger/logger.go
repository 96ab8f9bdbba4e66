package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	global = newDefault()
)

func newDefault() *zap.SugaredLogger {
	l, err := zap.NewProduction(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}

// Replace swaps the process-wide logger. Intended for main() and tests.
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l.Sugar()
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func Debugf(_ context.Context, format string, args ...interface{}) {
	get().Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...interface{}) {
	get().Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...interface{}) {
	get().Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...interface{}) {
	get().Errorf(format, args...)
}

func Error(_ context.Context, msg string) {
	get().Error(msg)
}

func Fatal(_ context.Context, err error) {
	get().Fatal(err)
}
