// FILE: compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/console"
)

const fasthttpTarget = "fasthttp"

// FastHTTPAdapter routes fasthttp's Printf-style logging through a
// console.Logger under a fixed "fasthttp" target. Since fasthttp's
// Logger interface carries no level, one is inferred from the message.
type FastHTTPAdapter struct {
	logger        *console.Logger
	defaultLevel  int64
	levelDetector func(string) int64
}

// FastHTTPOption customizes adapter behavior.
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the level used when no detector is configured
// or detection is inconclusive.
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector replaces the message-content level heuristic. A nil
// detector disables detection; every line logs at the default level.
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// NewFastHTTPAdapter creates a fasthttp-compatible logger adapter.
func NewFastHTTPAdapter(logger *console.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  console.LevelInfo,
		levelDetector: DetectLogLevel,
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		level = a.levelDetector(msg)
	}

	a.logger.Log(level, fasthttpTarget, msg)
}

// levelKeywords maps message fragments to levels, checked most severe
// first so "failed ... retrying" still surfaces as an error.
var levelKeywords = []struct {
	level int64
	words []string
}{
	{console.LevelError, []string{"error", "failed", "fatal", "panic"}},
	{console.LevelWarn, []string{"warn", "deprecated"}},
	{console.LevelDebug, []string{"debug", "trace"}},
}

// DetectLogLevel infers a log level from message content. Unrecognized
// messages default to info.
func DetectLogLevel(msg string) int64 {
	lower := strings.ToLower(msg)
	for _, group := range levelKeywords {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.level
			}
		}
	}
	return console.LevelInfo
}
