package gen

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger atomic.Pointer[zap.Logger]
	nop    = zap.NewNop()
)

// Logger returns the gen package's logger instance.
// It uses a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nop
}

// SetLogger configures the gen package's logger. A nil l restores the no-op logger.
// It is safe to call while Generate is running.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}
