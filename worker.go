// FILE: worker.go
package console

// process is the writer task: the sole consumer of the hand-off queue and
// the only goroutine permitted to touch the destination stream. It blocks
// for the first message, then opportunistically drains whatever else has
// arrived into a pending buffer before writing, so bursts coalesce into
// few write calls. Queue closure is the termination signal; the running
// flag only stops new enqueues.
func (l *Logger) process(ch <-chan message) {
	defer close(l.done)

	buf := make([]byte, 0, 8*inlineBatchLimit)

	for {
		msg, ok := <-ch
		if !ok {
			// End of stream: deliver whatever is pending and exit
			buf = l.writePending(buf)
			l.syncOutput()
			return
		}

		buf = l.consume(buf, msg)

		// Opportunistic drain, stop at the first empty poll
		draining := true
		for draining {
			select {
			case msg, more := <-ch:
				if !more {
					buf = l.writePending(buf)
					l.syncOutput()
					return
				}
				buf = l.consume(buf, msg)
			default:
				draining = false
			}
		}

		buf = l.writePending(buf)
	}
}

// consume folds one message into the pending buffer. Flush barriers drain
// the buffer, sync the stream and signal their waiter exactly once, even
// when the write failed, so the flush caller never blocks forever.
// Oversized payloads bypass batching: the buffer is drained first to keep
// FIFO order, then the payload is written directly.
func (l *Logger) consume(buf []byte, msg message) []byte {
	if msg.flush != nil {
		buf = l.writePending(buf)
		l.syncOutput()
		close(msg.flush)
		l.state.Flushes.Add(1)
		return buf
	}

	if len(msg.payload) > inlineBatchLimit {
		buf = l.writePending(buf)
		l.write(msg.payload)
		return buf
	}

	return append(buf, msg.payload...)
}

// writePending flushes the batching buffer and resets it. The buffer is
// cleared even after a hard error; the failed remainder is reported, not
// retried forever.
func (l *Logger) writePending(buf []byte) []byte {
	if len(buf) == 0 {
		return buf
	}
	l.write(buf)
	return buf[:0]
}

// write delivers data through the retry-write primitive. A hard I/O error
// is reported on the side channel and the writer task keeps running; one
// failed write must not silence all future logging.
func (l *Logger) write(data []byte) {
	n, err := writeAllRetrying(l.out, data, l.waiter)
	l.state.WrittenBytes.Add(uint64(n))
	if err != nil {
		l.state.WriteErrors.Add(1)
		l.reporter.reportf("failed to write to %s: %v", l.cfg.Target, err)
	}
}

// syncOutput pushes kernel buffers to the backing object where the
// destination supports it; terminals and pipes report unsupported, which
// counts as success.
func (l *Logger) syncOutput() {
	if err := l.out.Sync(); err != nil && !isSyncUnsupported(err) {
		l.reporter.reportf("failed to sync %s: %v", l.cfg.Target, err)
	}
}
