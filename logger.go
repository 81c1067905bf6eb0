// FILE: logger.go
package console

import (
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Record is a single log entry handed to the facade. A zero Time is
// stamped at acceptance.
type Record struct {
	Time   time.Time
	Level  int64
	Target string
	Args   []any
}

// Logger is the public entry point of the pipeline. Producers format and
// enqueue through it; a single background writer task owns the destination
// stream. All methods are safe for concurrent use.
type Logger struct {
	cfg       *Config
	formatter *lineFormatter
	overrides []ModuleLevel // sorted by descending prefix length
	minLevel  int64         // most verbose threshold across default and overrides

	q      *queue
	out    *os.File
	waiter writeWaiter

	state    state
	done     chan struct{}
	flushMu  sync.Mutex
	reporter *reporter
}

// New creates a running Logger from cfg. A nil cfg uses defaults. The
// configuration is cloned, so later mutation of cfg has no effect.
func New(cfg *Config) (*Logger, error) {
	return newLogger(cfg, nil)
}

// newLogger validates the configuration, prepares the destination
// descriptor and starts the writer task.
func newLogger(cfg *Config, output *os.File) (*Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	out := output
	if out == nil {
		if cfg.Target == TargetStderr {
			out = os.Stderr
		} else {
			out = os.Stdout
		}
	}

	rep := newReporter(cfg.InternalErrorsToStderr, cfg.InternalErrorRatePerSec)

	if cfg.Nonblock {
		if err := setNonblocking(out.Fd()); err != nil {
			// The queue and writer task still provide asynchrony
			rep.reportf("%v", err)
		}
	}

	overrides := append([]ModuleLevel(nil), cfg.ModuleLevels...)
	sort.SliceStable(overrides, func(i, j int) bool {
		return len(overrides[i].Prefix) > len(overrides[j].Prefix)
	})

	minLevel := cfg.Level
	for _, ml := range overrides {
		if ml.Level < minLevel {
			minLevel = ml.Level
		}
	}

	l := &Logger{
		cfg:       cfg,
		formatter: newLineFormatter(cfg, cfg.Colors && isCharDevice(out)),
		overrides: overrides,
		minLevel:  minLevel,
		q:         newQueue(cfg.ChannelSize, cfg.Backpressure),
		out:       out,
		waiter:    newWriteWaiter(out.Fd()),
		done:      make(chan struct{}),
		reporter:  rep,
	}

	l.state.Running.Store(true)
	go l.process(l.q.ch)

	return l, nil
}

// isCharDevice reports whether f is a terminal-like device; colors are
// suppressed for pipes and files.
func isCharDevice(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// Enabled reports whether a record at level for target would be accepted.
// Overrides are pre-sorted by descending prefix length, so the first
// prefix match is the most specific one.
func (l *Logger) Enabled(level int64, target string) bool {
	if level < l.minLevel {
		return false
	}
	for _, ml := range l.overrides {
		if strings.HasPrefix(target, ml.Prefix) {
			return level >= ml.Level
		}
	}
	return level >= l.cfg.Level
}

// LogRecord formats rec into a single line and hands it to the writer
// task. Failures never propagate to the caller: rejected records are
// counted, and a dead pipeline is reported through the stderr side
// channel.
func (l *Logger) LogRecord(rec Record) {
	if !l.state.Running.Load() {
		l.state.Dropped.Add(1)
		return
	}
	if !l.Enabled(rec.Level, rec.Target) {
		return
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}

	var gid uint64
	if l.cfg.ShowGoroutine {
		gid = goroutineID()
	}

	line := l.formatter.appendLine(make([]byte, 0, 128), rec.Time, rec.Level, rec.Target, gid, rec.Args)

	switch err := l.q.enqueue(message{payload: line}); err {
	case nil:
		l.state.Enqueued.Add(1)
	case errQueueFull:
		l.state.Dropped.Add(1)
	default:
		l.state.Dropped.Add(1)
		l.reporter.reportf("failed to schedule log: %v", err)
	}
}

// Log records args at the given level for target.
func (l *Logger) Log(level int64, target string, args ...any) {
	l.LogRecord(Record{Level: level, Target: target, Args: args})
}

// Trace logs a message at trace level
func (l *Logger) Trace(target string, args ...any) {
	l.LogRecord(Record{Level: LevelTrace, Target: target, Args: args})
}

// Debug logs a message at debug level
func (l *Logger) Debug(target string, args ...any) {
	l.LogRecord(Record{Level: LevelDebug, Target: target, Args: args})
}

// Info logs a message at info level
func (l *Logger) Info(target string, args ...any) {
	l.LogRecord(Record{Level: LevelInfo, Target: target, Args: args})
}

// Warn logs a message at warning level
func (l *Logger) Warn(target string, args ...any) {
	l.LogRecord(Record{Level: LevelWarn, Target: target, Args: args})
}

// Error logs a message at error level
func (l *Logger) Error(target string, args ...any) {
	l.LogRecord(Record{Level: LevelError, Target: target, Args: args})
}

// Flush enqueues a flush barrier and blocks until every message accepted
// before it has been written to the OS stream and synced, or until
// timeout. A non-positive timeout waits indefinitely. Flush barriers share
// the hand-off queue with log messages, so ordering across the barrier is
// strict.
func (l *Logger) Flush(timeout time.Duration) error {
	l.flushMu.Lock()
	defer l.flushMu.Unlock()

	if !l.state.Running.Load() {
		return ErrAlreadyShutdown
	}

	ack := make(chan struct{})
	if err := l.q.enqueueBlocking(message{flush: ack}); err != nil {
		return err
	}

	if timeout <= 0 {
		<-ack
		return nil
	}

	select {
	case <-ack:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Shutdown transitions the running flag from true to false exactly once
// and closes the hand-off queue, which is the writer task's termination
// signal; pending messages are drained first. A second call fails with
// ErrAlreadyShutdown. There is no restart: build and install a new logger
// instead.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.state.Running.CompareAndSwap(true, false) {
		return ErrAlreadyShutdown
	}

	l.q.close()

	effectiveTimeout := 5 * time.Second
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	}

	select {
	case <-l.done:
		return nil
	case <-time.After(effectiveTimeout):
		return fmtErrorf("writer task did not exit within timeout (%v)", effectiveTimeout)
	}
}
