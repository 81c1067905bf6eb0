// FILE: default.go
package console

import "time"

// Package-level registry and functions that delegate to the installed
// global logger. All logging functions are silent no-ops until Install
// succeeds.

var defaultRegistry = NewRegistry()

// Install registers l as the process-wide logger. A second call fails
// with ErrLoggerSet until Reset is called.
func Install(l *Logger) error {
	return defaultRegistry.Install(l)
}

// Active returns the installed global logger, or nil.
func Active() *Logger {
	return defaultRegistry.Active()
}

// Reset clears the global registration, allowing a replacement logger to
// be installed after shutdown.
func Reset() {
	defaultRegistry.Reset()
}

// Trace logs a message at trace level via the global logger
func Trace(target string, args ...any) {
	if l := defaultRegistry.Active(); l != nil {
		l.Trace(target, args...)
	}
}

// Debug logs a message at debug level via the global logger
func Debug(target string, args ...any) {
	if l := defaultRegistry.Active(); l != nil {
		l.Debug(target, args...)
	}
}

// Info logs a message at info level via the global logger
func Info(target string, args ...any) {
	if l := defaultRegistry.Active(); l != nil {
		l.Info(target, args...)
	}
}

// Warn logs a message at warning level via the global logger
func Warn(target string, args ...any) {
	if l := defaultRegistry.Active(); l != nil {
		l.Warn(target, args...)
	}
}

// Error logs a message at error level via the global logger
func Error(target string, args ...any) {
	if l := defaultRegistry.Active(); l != nil {
		l.Error(target, args...)
	}
}

// Flush blocks until output enqueued before the call has reached the OS
// stream, or until timeout.
func Flush(timeout time.Duration) error {
	l := defaultRegistry.Active()
	if l == nil {
		return fmtErrorf("no global logger installed")
	}
	return l.Flush(timeout)
}

// Shutdown stops the global logger. The registration is left in place so
// a second Shutdown reports ErrAlreadyShutdown; call Reset to install a
// replacement.
func Shutdown(timeout ...time.Duration) error {
	l := defaultRegistry.Active()
	if l == nil {
		return fmtErrorf("no global logger installed")
	}
	return l.Shutdown(timeout...)
}
