// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/console"
	"github.com/lixenwraith/console/compat"
)

func main() {
	logger, err := console.NewBuilder().
		Level(console.LevelInfo).
		ModuleLevel("fasthttp", console.LevelWarn).
		Target(console.TargetStderr).
		ChannelSize(2048).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(console.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	logger.Info("app", "starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// Inspect specific fasthttp message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return console.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return console.LevelError
	}

	return compat.DetectLogLevel(msg)
}
