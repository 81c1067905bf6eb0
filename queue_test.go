// FILE: queue_test.go
package console

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDropPolicy(t *testing.T) {
	q := newQueue(2, BackpressureDrop)

	require.NoError(t, q.enqueue(message{payload: []byte("a")}))
	require.NoError(t, q.enqueue(message{payload: []byte("b")}))

	// Queue full: the drop policy rejects instead of blocking
	err := q.enqueue(message{payload: []byte("c")})
	assert.ErrorIs(t, err, errQueueFull)

	// Space frees up after the consumer takes one
	<-q.ch
	assert.NoError(t, q.enqueue(message{payload: []byte("d")}))
}

func TestQueueBlockPolicy(t *testing.T) {
	q := newQueue(1, BackpressureBlock)
	require.NoError(t, q.enqueue(message{payload: []byte("a")}))

	unblocked := make(chan struct{})
	go func() {
		_ = q.enqueue(message{payload: []byte("b")})
		close(unblocked)
	}()

	// The producer must be suspended while the queue is full
	select {
	case <-unblocked:
		t.Fatal("enqueue returned while queue was full")
	case <-time.After(50 * time.Millisecond):
	}

	<-q.ch
	select {
	case <-unblocked:
	case <-time.After(time.Second):
		t.Fatal("enqueue did not resume after space freed up")
	}
}

func TestQueueClosedEnqueue(t *testing.T) {
	q := newQueue(4, BackpressureBlock)
	q.close()

	// Sends racing with close surface as ErrQueueClosed, not a panic
	assert.ErrorIs(t, q.enqueue(message{payload: []byte("late")}), ErrQueueClosed)
	assert.ErrorIs(t, q.enqueueBlocking(message{flush: make(chan struct{})}), ErrQueueClosed)
}

func TestQueueFlushBypassesDropPolicy(t *testing.T) {
	q := newQueue(1, BackpressureDrop)
	require.NoError(t, q.enqueue(message{payload: []byte("a")}))

	accepted := make(chan error, 1)
	go func() {
		accepted <- q.enqueueBlocking(message{flush: make(chan struct{})})
	}()

	// enqueueBlocking waits for space rather than dropping the barrier
	select {
	case <-accepted:
		t.Fatal("flush enqueue returned while queue was full")
	case <-time.After(50 * time.Millisecond):
	}

	<-q.ch
	require.NoError(t, <-accepted)

	msg := <-q.ch
	assert.NotNil(t, msg.flush)
}
