// FILE: compat/gnet.go
package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/console"
)

const gnetTarget = "gnet"

// GnetAdapter routes gnet's internal logging through a console.Logger
// under a fixed "gnet" target.
type GnetAdapter struct {
	logger       *console.Logger
	fatalHandler func(msg string)
}

// GnetOption customizes adapter behavior.
type GnetOption func(*GnetAdapter)

// WithFatalHandler replaces the process exit triggered by Fatalf. Tests
// and supervised servers use this to turn fatals into errors.
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// NewGnetAdapter creates a gnet-compatible logger adapter.
func NewGnetAdapter(logger *console.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		// gnet expects Fatalf to not return
		fatalHandler: func(msg string) { os.Exit(1) },
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

func (a *GnetAdapter) logf(level int64, format string, args ...any) {
	a.logger.Log(level, gnetTarget, fmt.Sprintf(format, args...))
}

// Debugf implements gnet's logging.Logger
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logf(console.LevelDebug, format, args...)
}

// Infof implements gnet's logging.Logger
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logf(console.LevelInfo, format, args...)
}

// Warnf implements gnet's logging.Logger
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logf(console.LevelWarn, format, args...)
}

// Errorf implements gnet's logging.Logger
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logf(console.LevelError, format, args...)
}

// Fatalf logs at error level, pushes the line out past the hand-off
// queue, then invokes the fatal handler.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.Error(gnetTarget, msg, "fatal", true)

	// The line must reach the stream before the handler can exit
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
