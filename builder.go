// FILE: builder.go
package console

import "os"

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg    *Config
	output *os.File // explicit destination override, mainly for tests
	err    error    // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build validates the configuration and returns a running Logger with its
// writer task started.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newLogger(b.cfg, b.output)
}

// Level sets the default log level threshold.
func (b *Builder) Level(level int64) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the default log level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// ModuleLevel overrides the level threshold for targets matching prefix.
// The most specific prefix wins when several match.
func (b *Builder) ModuleLevel(prefix string, level int64) *Builder {
	b.cfg.ModuleLevels = append(b.cfg.ModuleLevels, ModuleLevel{Prefix: prefix, Level: level})
	return b
}

// ChannelSize sets the hand-off queue capacity. Must be positive.
func (b *Builder) ChannelSize(size int64) *Builder {
	b.cfg.ChannelSize = size
	return b
}

// Backpressure selects the policy for a full queue: BackpressureBlock
// suspends the producer, BackpressureDrop rejects the newest record and
// increments the dropped counter.
func (b *Builder) Backpressure(policy string) *Builder {
	b.cfg.Backpressure = policy
	return b
}

// Target selects the destination stream, TargetStdout or TargetStderr.
func (b *Builder) Target(target string) *Builder {
	b.cfg.Target = target
	return b
}

// Output routes the logger to an explicit file, overriding Target.
// Intended for tests and embedding; the file descriptor is still put into
// non-blocking mode when Nonblock is enabled.
func (b *Builder) Output(f *os.File) *Builder {
	b.output = f
	return b
}

// Nonblock controls whether the destination descriptor is switched to
// non-blocking mode at construction.
func (b *Builder) Nonblock(enable bool) *Builder {
	b.cfg.Nonblock = enable
	return b
}

// Colors controls whether level labels are colored. Colors are dropped
// automatically when the destination is not a terminal.
func (b *Builder) Colors(enable bool) *Builder {
	b.cfg.Colors = enable
	return b
}

// WithUTCTimestamps enables ISO-8601 UTC timestamps with a literal Z suffix.
func (b *Builder) WithUTCTimestamps() *Builder {
	b.cfg.Timestamps = TimestampsUTC
	return b
}

// WithUTCOffset enables timestamps at a fixed offset from UTC, rendered
// with an explicit numeric offset.
func (b *Builder) WithUTCOffset(minutes int64) *Builder {
	b.cfg.Timestamps = TimestampsOffset
	b.cfg.UTCOffsetMinutes = minutes
	return b
}

// WithoutTimestamps disables the timestamp field entirely.
func (b *Builder) WithoutTimestamps() *Builder {
	b.cfg.Timestamps = TimestampsNone
	return b
}

// TimestampFormat sets a custom Go time layout, replacing the per-mode
// default layout.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// ShowGoroutine annotates each line's target with the producing goroutine id.
func (b *Builder) ShowGoroutine(enable bool) *Builder {
	b.cfg.ShowGoroutine = enable
	return b
}

// SanitizeControl hex-encodes non-printable runes in string arguments,
// preventing terminal escape injection through logged values.
func (b *Builder) SanitizeControl(enable bool) *Builder {
	b.cfg.SanitizeControl = enable
	return b
}

// InternalErrorsToStderr controls the side-channel diagnostic reporter.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Example usage:
// logger, err := console.NewBuilder().
//
//	LevelString("debug").
//	ModuleLevel("db", console.LevelInfo).
//	Target(console.TargetStderr).
//	ChannelSize(4096).
//	Build()
//
// if err == nil {
//
//	 defer logger.Shutdown()
//	 logger.Info("app", "logger initialized")
//
// }
