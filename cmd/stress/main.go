package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/console"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 2000
	numWorkers     = 50
	metricsAddr    = ":2112"
)

var levels = []int64{
	console.LevelDebug,
	console.LevelInfo,
	console.LevelWarn,
	console.LevelError,
}

var logger *console.Logger

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

// logBurst simulates a burst of logging activity
func logBurst(burstID int) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.Intn(len(levels))]
		msgSize := rand.Intn(maxMessageSize) + 10
		logger.Log(level, "stress::burst", generateRandomMessage(msgSize),
			"wkr", burstID%numWorkers,
			"bst", burstID,
			"seq", i,
		)
	}
}

func worker(burstChan chan int, wg *sync.WaitGroup, completedBursts *atomic.Int64) {
	defer wg.Done()
	for burstID := range burstChan {
		logBurst(burstID)
		completed := completedBursts.Add(1)
		if completed%10 == 0 || completed == totalBursts {
			fmt.Fprintf(os.Stderr, "\rProgress: %d/%d bursts completed", completed, totalBursts)
		}
	}
}

func main() {
	fmt.Fprintln(os.Stderr, "--- Console Pipeline Stress Test ---")

	var err error
	logger, err = console.NewBuilder().
		Level(console.LevelDebug).
		ChannelSize(4096).
		Backpressure(console.BackpressureDrop).
		Target(console.TargetStdout).
		Nonblock(true).
		WithUTCTimestamps().
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	// Expose pipeline counters while the test runs
	reg := prometheus.NewRegistry()
	reg.MustRegister(console.NewCollector(logger))
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		_ = http.ListenAndServe(metricsAddr, mux)
	}()
	fmt.Fprintf(os.Stderr, "Metrics on %s/metrics\n", metricsAddr)

	fmt.Fprintf(os.Stderr, "Starting stress test: %d workers, %d bursts, %d logs/burst.\n",
		numWorkers, totalBursts, logsPerBurst)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop early.")

	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	completedBursts := atomic.Int64{}
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[Signal Received] Stopping burst generation...")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(burstChan, &wg, &completedBursts)
	}

	startTime := time.Now()
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			goto endLoop
		}
	}
endLoop:
	close(burstChan)

	fmt.Fprintln(os.Stderr, "\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(startTime)
	finalCompleted := completedBursts.Load()

	fmt.Fprintf(os.Stderr, "\nCompleted %d/%d bursts in %v\n", finalCompleted, totalBursts, duration.Round(time.Millisecond))
	if finalCompleted > 0 && duration.Seconds() > 0 {
		logsPerSec := float64(finalCompleted*logsPerBurst) / duration.Seconds()
		fmt.Fprintf(os.Stderr, "Approximate Logs/sec: %.2f\n", logsPerSec)
	}

	stats := logger.Stats()
	fmt.Fprintf(os.Stderr, "Enqueued: %d  Dropped: %d  Written bytes: %d  Write errors: %d\n",
		stats.Enqueued, stats.Dropped, stats.WrittenBytes, stats.WriteErrors)

	fmt.Fprintln(os.Stderr, "Shutting down logger (allowing up to 10s)...")
	if err := logger.Shutdown(10 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Fprintln(os.Stderr, "Logger shutdown complete.")
	}
}
