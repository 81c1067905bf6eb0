// FILE: reporter.go
package console

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/time/rate"
)

// reporter is the side-channel for pipeline diagnostics. It writes
// directly to stderr with its own retry path, bypassing the queue so a
// broken destination can never wedge error reporting, and never feeding
// back into the logger. Output is rate limited to keep a persistently
// failing destination from flooding the terminal.
type reporter struct {
	enabled bool
	limiter *rate.Limiter

	mu     sync.Mutex
	out    *os.File
	waiter writeWaiter
}

func newReporter(enabled bool, perSec float64) *reporter {
	if perSec <= 0 {
		perSec = 1.0
	}
	return &reporter{
		enabled: enabled,
		limiter: rate.NewLimiter(rate.Limit(perSec), 5),
		out:     os.Stderr,
		waiter:  newWriteWaiter(os.Stderr.Fd()),
	}
}

// reportf emits one diagnostic line, best effort. Failures are discarded;
// there is no further fallback.
func (r *reporter) reportf(format string, args ...any) {
	if !r.enabled || !r.limiter.Allow() {
		return
	}

	msg := fmt.Sprintf("console: "+format+"\n", args...)

	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = writeAllRetrying(r.out, []byte(msg), r.waiter)
}
