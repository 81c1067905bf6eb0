// FILE: errors.go
package console

import "errors"

// Sentinel errors returned by setup and lifecycle paths. Errors on the hot
// logging path are never surfaced to callers; they are downgraded to
// best-effort diagnostics on stderr.
var (
	// ErrInvalidConfig indicates a configuration that fails validation,
	// such as a non-positive channel size.
	ErrInvalidConfig = errors.New("console: invalid configuration")

	// ErrAlreadyShutdown is returned by a second Shutdown call. Shutdown is
	// one-shot; construct and install a new logger to resume logging.
	ErrAlreadyShutdown = errors.New("console: logger already shut down")

	// ErrLoggerSet is returned when installing a logger into a registry
	// that already holds an active one.
	ErrLoggerSet = errors.New("console: global logger already installed")

	// ErrQueueClosed indicates the hand-off queue has been closed and the
	// writer task is draining or gone.
	ErrQueueClosed = errors.New("console: log queue closed")
)

// errQueueFull is the internal signal for a rejected enqueue under the
// "drop" back-pressure policy. It never escapes the package; drops are
// counted, not reported per message.
var errQueueFull = errors.New("console: log queue full")
