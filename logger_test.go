// FILE: logger_test.go
package console

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileLogger builds a logger writing to a fresh temp file with
// deterministic formatting, returning the logger and the file path.
func newFileLogger(t *testing.T, mutate func(*Builder)) (*Logger, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)

	b := NewBuilder().
		Output(f).
		Nonblock(false).
		Colors(false).
		WithoutTimestamps()
	if mutate != nil {
		mutate(b)
	}

	logger, err := b.Build()
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = logger.Shutdown(2 * time.Second)
		_ = f.Close()
	})

	return logger, path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	if len(content) == 0 {
		return nil
	}
	text := strings.TrimSuffix(string(content), "\r\n")
	return strings.Split(text, "\r\n")
}

func TestPipelineFIFO(t *testing.T) {
	logger, path := newFileLogger(t, nil)

	const n = 1000
	for i := 0; i < n; i++ {
		logger.Info("app", "seq", i)
	}
	require.NoError(t, logger.Flush(5*time.Second))

	lines := readLines(t, path)
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("INFO  [app] seq %d", i), line)
	}
}

func TestFlushBarrierVisibility(t *testing.T) {
	// Everything enqueued before Flush must be on the stream when Flush
	// returns, without shutting the logger down
	logger, path := newFileLogger(t, nil)

	for i := 0; i < 1000; i++ {
		logger.Info("app", "line", i)
	}
	require.NoError(t, logger.Flush(5*time.Second))

	assert.Len(t, readLines(t, path), 1000)

	// The pipeline stays usable after the barrier
	logger.Info("app", "after flush")
	require.NoError(t, logger.Flush(5*time.Second))
	assert.Len(t, readLines(t, path), 1001)
}

func TestConcurrentProducers(t *testing.T) {
	logger, path := newFileLogger(t, nil)

	const producers = 8
	const perProducer = 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				logger.Info("app", "producer", p, "seq", i)
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, logger.Flush(5*time.Second))

	lines := readLines(t, path)
	require.Len(t, lines, producers*perProducer)

	// Per-producer order is preserved even though global interleaving
	// is arbitrary
	next := make([]int, producers)
	for _, line := range lines {
		var p, seq int
		_, err := fmt.Sscanf(line, "INFO  [app] producer %d seq %d", &p, &seq)
		require.NoError(t, err, "line: %q", line)
		assert.Equal(t, next[p], seq, "producer %d out of order", p)
		next[p]++
	}
}

func TestModuleOverrides(t *testing.T) {
	logger, path := newFileLogger(t, func(b *Builder) {
		b.Level(LevelWarn).
			ModuleLevel("db", LevelInfo).
			ModuleLevel("db::pool", LevelTrace)
	})

	t.Run("Enabled", func(t *testing.T) {
		// Most specific prefix wins
		assert.True(t, logger.Enabled(LevelTrace, "db::pool"))
		assert.True(t, logger.Enabled(LevelDebug, "db::pool::acquire"))

		// Falls back to the shorter prefix
		assert.False(t, logger.Enabled(LevelDebug, "db::other"))
		assert.True(t, logger.Enabled(LevelInfo, "db::other"))

		// Unmatched targets use the default level
		assert.False(t, logger.Enabled(LevelInfo, "api"))
		assert.True(t, logger.Enabled(LevelWarn, "api"))
	})

	t.Run("EndToEnd", func(t *testing.T) {
		logger.Debug("db::pool", "kept")
		logger.Debug("db::other", "filtered")
		logger.Info("api", "filtered")
		logger.Error("api", "kept")
		require.NoError(t, logger.Flush(5*time.Second))

		lines := readLines(t, path)
		require.Len(t, lines, 2)
		assert.Equal(t, "DEBUG [db::pool] kept", lines[0])
		assert.Equal(t, "ERROR [api] kept", lines[1])
	})
}

func TestLevelOffSilencesTarget(t *testing.T) {
	logger, path := newFileLogger(t, func(b *Builder) {
		b.Level(LevelInfo).ModuleLevel("noisy", LevelOff)
	})

	logger.Error("noisy", "suppressed")
	logger.Error("app", "kept")
	require.NoError(t, logger.Flush(5*time.Second))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[app]")
}

func TestShutdownSemantics(t *testing.T) {
	logger, path := newFileLogger(t, nil)

	logger.Info("app", "before shutdown")
	require.NoError(t, logger.Shutdown(2*time.Second))

	// Pending output is drained before the writer task exits
	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "INFO  [app] before shutdown", lines[0])

	// One-shot: the second call reports, not repeats
	assert.ErrorIs(t, logger.Shutdown(time.Second), ErrAlreadyShutdown)
	assert.ErrorIs(t, logger.Flush(time.Second), ErrAlreadyShutdown)

	// Logging after shutdown is counted, never delivered
	pre := logger.Stats().Dropped
	logger.Info("app", "too late")
	assert.Equal(t, pre+1, logger.Stats().Dropped)
	assert.Len(t, readLines(t, path), 1)
}

func TestShutdownDefaultTimeout(t *testing.T) {
	logger, _ := newFileLogger(t, nil)
	logger.Info("app", "x")
	assert.NoError(t, logger.Shutdown())
}

func TestOversizedPayloadKeepsOrder(t *testing.T) {
	logger, path := newFileLogger(t, nil)

	big := strings.Repeat("x", 2*inlineBatchLimit)
	logger.Info("app", "first")
	logger.Info("app", big)
	logger.Info("app", "last")
	require.NoError(t, logger.Flush(5*time.Second))

	lines := readLines(t, path)
	require.Len(t, lines, 3)
	assert.Equal(t, "INFO  [app] first", lines[0])
	assert.Equal(t, "INFO  [app] "+big, lines[1])
	assert.Equal(t, "INFO  [app] last", lines[2])
}

func TestShowGoroutineAnnotation(t *testing.T) {
	logger, path := newFileLogger(t, func(b *Builder) {
		b.ShowGoroutine(true)
	})

	logger.Info("app", "annotated")
	require.NoError(t, logger.Flush(5*time.Second))

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^INFO  \[app@g\d+\] annotated$`, lines[0])
}

func TestStatsCounters(t *testing.T) {
	logger, path := newFileLogger(t, nil)

	for i := 0; i < 3; i++ {
		logger.Info("app", "line", i)
	}
	require.NoError(t, logger.Flush(5*time.Second))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	stats := logger.Stats()
	assert.Equal(t, uint64(3), stats.Enqueued)
	assert.Equal(t, uint64(0), stats.Dropped)
	assert.Equal(t, uint64(len(content)), stats.WrittenBytes)
	assert.Equal(t, uint64(0), stats.WriteErrors)
	assert.Equal(t, uint64(1), stats.Flushes)
}

func TestNilConfigUsesDefaults(t *testing.T) {
	f, err := os.OpenFile(filepath.Join(t.TempDir(), "out.log"), os.O_CREATE|os.O_WRONLY, 0644)
	require.NoError(t, err)
	defer f.Close()

	logger, err := newLogger(nil, f)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(LevelTrace, "any"))
	assert.Equal(t, DefaultChannelSize, logger.cfg.ChannelSize)
	assert.NoError(t, logger.Shutdown(time.Second))
}

func TestDropPolicyCountsDrops(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	logger, err := NewBuilder().
		Output(w).
		ChannelSize(4).
		Backpressure(BackpressureDrop).
		Nonblock(true).
		Colors(false).
		WithoutTimestamps().
		Build()
	require.NoError(t, err)

	// Nothing reads the pipe yet: the writer task wedges once the pipe
	// buffer fills, the queue fills behind it, and further records drop
	payload := strings.Repeat("y", 8*1024)
	for i := 0; i < 200; i++ {
		logger.Info("app", payload)
	}

	stats := logger.Stats()
	assert.Greater(t, stats.Dropped, uint64(0))
	assert.Greater(t, stats.Enqueued, uint64(0))
	assert.Equal(t, uint64(200), stats.Enqueued+stats.Dropped)

	// Drain so the writer task can finish, then shut down
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(io.Discard, r)
		close(done)
	}()

	require.NoError(t, logger.Shutdown(5*time.Second))
	require.NoError(t, w.Close())
	<-done
	_ = r.Close()
}

func TestSlowConsumerBackpressure(t *testing.T) {
	if testing.Short() {
		t.Skip("slow consumer test skipped in short mode")
	}

	r, w, err := os.Pipe()
	require.NoError(t, err)

	logger, err := NewBuilder().
		Output(w).
		ChannelSize(64).
		Backpressure(BackpressureBlock).
		Nonblock(true).
		Colors(false).
		WithoutTimestamps().
		Build()
	require.NoError(t, err)

	// Throttled consumer: small reads with a pause, roughly 2MB total
	var received bytes.Buffer
	done := make(chan struct{})
	go func() {
		defer close(done)
		chunk := make([]byte, 8*1024)
		for {
			n, rerr := r.Read(chunk)
			if n > 0 {
				received.Write(chunk[:n])
				time.Sleep(200 * time.Microsecond)
			}
			if rerr != nil {
				return
			}
		}
	}()

	const n = 2000
	payload := strings.Repeat("z", 1024)
	for i := 0; i < n; i++ {
		logger.Info("app", i, payload)
	}

	require.NoError(t, logger.Flush(30*time.Second))
	require.NoError(t, logger.Shutdown(10*time.Second))
	require.NoError(t, w.Close())
	<-done
	_ = r.Close()

	stats := logger.Stats()
	assert.Equal(t, uint64(n), stats.Enqueued)
	assert.Equal(t, uint64(0), stats.Dropped)

	text := strings.TrimSuffix(received.String(), "\r\n")
	lines := strings.Split(text, "\r\n")
	require.Len(t, lines, n)
	for i, line := range lines {
		prefix := "INFO  [app] " + strconv.Itoa(i) + " "
		assert.True(t, strings.HasPrefix(line, prefix), "line %d: %q", i, line[:min(len(line), 40)])
	}
}

func TestFlushTimeout(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	logger, err := NewBuilder().
		Output(w).
		ChannelSize(8).
		Nonblock(true).
		Build()
	require.NoError(t, err)

	// Fill the pipe so the writer task cannot complete the barrier
	payload := strings.Repeat("q", 32*1024)
	logger.Info("app", payload)
	logger.Info("app", payload)
	logger.Info("app", payload)

	err = logger.Flush(100 * time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")

	// Unblock the writer and shut down cleanly
	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(io.Discard, r)
		close(done)
	}()
	require.NoError(t, logger.Shutdown(5*time.Second))
	require.NoError(t, w.Close())
	<-done
}
