// FILE: write.go
package console

import "io"

// writeWaiter blocks until another write attempt is worth making. The unix
// implementation polls the descriptor for writability; the fallback sleeps
// a fixed interval.
type writeWaiter interface {
	wait() error
}

// writeAllRetrying writes every byte of buf to w, absorbing partial
// writes, zero-byte acceptance and would-block errors by waiting for
// writability and retrying. It returns the byte count delivered so far and
// a non-nil error only for hard failures, wrapping the OS cause. This is
// the only place back-pressure from a slow consumer is absorbed; all
// output must go through it rather than raw Write calls.
func writeAllRetrying(w io.Writer, buf []byte, waiter writeWaiter) (int, error) {
	written := 0
	for written < len(buf) {
		n, err := w.Write(buf[written:])
		if n > 0 {
			written += n
		}

		switch {
		case err == nil && n == 0:
			// Nothing accepted; wait rather than spin
			if werr := waiter.wait(); werr != nil {
				return written, werr
			}
		case err == nil:
			// Progress; keep going
		case isWouldBlock(err):
			if werr := waiter.wait(); werr != nil {
				return written, werr
			}
		default:
			return written, fmtErrorf("write failed after %d of %d bytes: %w", written, len(buf), err)
		}
	}
	return written, nil
}
