// FILE: queue.go
package console

// message is the tagged union carried by the hand-off queue: either a
// formatted log line or a flush barrier. A non-nil flush channel marks the
// flush variant; the writer task closes it exactly once after the pending
// output has been written and synced.
type message struct {
	payload []byte
	flush   chan struct{}
}

// queue is the bounded multi-producer single-consumer hand-off channel
// between the logger facade and the writer task. Capacity is fixed for the
// queue's lifetime. Closing the queue is the writer task's termination
// signal; sends racing with close are absorbed via recover and surface as
// ErrQueueClosed to internal handling only, never to callers.
type queue struct {
	ch    chan message
	block bool
}

func newQueue(size int64, policy string) *queue {
	return &queue{
		ch:    make(chan message, size),
		block: policy == BackpressureBlock,
	}
}

// enqueue hands a message to the writer task under the configured
// back-pressure policy. With the block policy a full queue suspends the
// caller; with the drop policy it returns errQueueFull and the message is
// discarded.
func (q *queue) enqueue(msg message) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrQueueClosed
		}
	}()

	if q.block {
		q.ch <- msg
		return nil
	}

	select {
	case q.ch <- msg:
		return nil
	default:
		return errQueueFull
	}
}

// enqueueBlocking always blocks until the message is accepted or the queue
// closes. Flush barriers use this regardless of the drop policy, since a
// dropped flush would strand its waiter.
func (q *queue) enqueueBlocking(msg message) (err error) {
	defer func() {
		if recover() != nil {
			err = ErrQueueClosed
		}
	}()

	q.ch <- msg
	return nil
}

// close ends the stream. Called exactly once, guarded by the logger's
// running CAS.
func (q *queue) close() {
	close(q.ch)
}
