// FILE: fd_other.go
//go:build !unix

package console

import "time"

// Descriptor-level non-blocking control is not available; asynchrony comes
// entirely from the queue and writer task.
func setNonblocking(fd uintptr) error {
	return nil
}

// sleepWaiter is the fallback wait strategy for platforms without
// writability polling: a short fixed-interval sleep between retries.
type sleepWaiter struct {
	interval time.Duration
}

func (w sleepWaiter) wait() error {
	time.Sleep(w.interval)
	return nil
}

func newWriteWaiter(fd uintptr) writeWaiter {
	return sleepWaiter{interval: time.Millisecond}
}

func isWouldBlock(err error) bool {
	return false
}

func isSyncUnsupported(err error) bool {
	// Console handles generally cannot sync; treat all failures as benign.
	return true
}
