// FILE: registry.go
package console

import "sync/atomic"

// Registry holds the process-wide log sink. Installation is init-once:
// a second Install fails rather than silently replacing the active logger.
// Tests can construct their own Registry instead of going through the
// package-level default.
type Registry struct {
	active atomic.Pointer[Logger]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Install makes l the registry's active logger. Fails with ErrLoggerSet
// when one is already installed; Reset first to replace it.
func (r *Registry) Install(l *Logger) error {
	if l == nil {
		return fmtErrorf("cannot install nil logger")
	}
	if !r.active.CompareAndSwap(nil, l) {
		return ErrLoggerSet
	}
	return nil
}

// Active returns the installed logger, or nil when none is installed.
func (r *Registry) Active() *Logger {
	return r.active.Load()
}

// Reset clears the registry. The previous logger is not shut down; that
// remains the caller's responsibility.
func (r *Registry) Reset() {
	r.active.Store(nil)
}
