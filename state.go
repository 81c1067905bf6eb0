// FILE: state.go
package console

import "sync/atomic"

// state holds the runtime flag and counters of a logger instance. Running
// is the only field mutated from multiple goroutines with CAS semantics;
// the counters are monotonic and read via Stats.
type state struct {
	Running atomic.Bool

	Enqueued     atomic.Uint64
	Dropped      atomic.Uint64
	WrittenBytes atomic.Uint64
	WriteErrors  atomic.Uint64
	Flushes      atomic.Uint64
}

// Stats is a point-in-time snapshot of the pipeline counters.
type Stats struct {
	Enqueued     uint64 // records accepted onto the hand-off queue
	Dropped      uint64 // records rejected (full queue under drop policy, or after shutdown)
	WrittenBytes uint64 // bytes delivered to the OS stream
	WriteErrors  uint64 // hard write failures absorbed by the writer task
	Flushes      uint64 // flush barriers honored
}

// Stats returns a snapshot of the logger's counters.
func (l *Logger) Stats() Stats {
	return Stats{
		Enqueued:     l.state.Enqueued.Load(),
		Dropped:      l.state.Dropped.Load(),
		WrittenBytes: l.state.WrittenBytes.Load(),
		WriteErrors:  l.state.WriteErrors.Load(),
		Flushes:      l.state.Flushes.Load(),
	}
}
