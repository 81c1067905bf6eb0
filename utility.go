// FILE: utility.go
package console

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "console: ") {
		format = "console: " + format
	}
	return fmt.Errorf(format, args...)
}

// ParseLevel converts a level string to its numeric constant.
func ParseLevel(levelStr string) (int64, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "off":
		return LevelOff, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error, off)", levelStr)
	}
}

// levelLabel returns the level name padded to 5 characters, matching the
// fixed-width wire format.
func levelLabel(level int64) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO "
	case LevelWarn:
		return "WARN "
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("%-5d", level)
	}
}

var goroutinePrefix = []byte("goroutine ")

// goroutineID parses the current goroutine id out of the runtime stack
// header. Used only when goroutine annotation is enabled.
func goroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	head := bytes.TrimPrefix(buf[:n], goroutinePrefix)
	if i := bytes.IndexByte(head, ' '); i > 0 {
		id, err := strconv.ParseUint(string(head[:i]), 10, 64)
		if err == nil {
			return id
		}
	}
	return 0
}
