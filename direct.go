// FILE: direct.go
package console

import "os"

// Direct print helpers for callers that need console output without a
// logger. They bypass the queue and writer task entirely and perform a
// synchronous retry-write, so they remain usable before a logger exists
// and after one has shut down.

// WriteStdout writes msg to stdout to completion, waiting out would-block
// conditions. The message is emitted verbatim; no prefix or terminator is
// added.
func WriteStdout(msg string) {
	_, _ = writeAllRetrying(os.Stdout, []byte(msg), newWriteWaiter(os.Stdout.Fd()))
}

// WriteStderr writes msg to stderr to completion, waiting out would-block
// conditions.
func WriteStderr(msg string) {
	_, _ = writeAllRetrying(os.Stderr, []byte(msg), newWriteWaiter(os.Stderr.Fd()))
}
