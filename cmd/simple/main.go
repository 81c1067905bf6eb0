package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/console"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[console]
  level = -4 # Debug
  channel_size = 1024
  backpressure = "block"
  target = "stdout"
  nonblock = true
  colors = true
  timestamps = "utc"
  show_goroutine = true
  sanitize_control = true
`

func main() {
	fmt.Println("--- Simple Console Logger Example ---")

	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := console.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = console.DefaultConfig()
	}

	logger, err := console.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}

	if err := console.Install(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to install global logger: %v\n", err)
		os.Exit(1)
	}

	console.Debug("app", "this is a debug message", "user_id", 123)
	console.Info("app", "application starting...")
	console.Warn("app", "potential issue detected", "threshold", 0.95)
	console.Error("app", "an error occurred", "code", 500)

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			console.Info("app::worker", "goroutine started", "id", id)
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			console.Info("app::worker", "goroutine finished", "id", id)
		}(i)
	}
	wg.Wait()

	if err := console.Flush(time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Flush error: %v\n", err)
	}

	fmt.Println("Shutting down logger...")
	if err := console.Shutdown(2 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
}
