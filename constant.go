// FILE: constant.go
package console

// Log level constants. A record is accepted when its level is at or above
// the threshold selected for its target.
const (
	LevelTrace int64 = -8
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
	LevelOff   int64 = 16
)

// Timestamp modes
const (
	TimestampsNone   = "none"
	TimestampsUTC    = "utc"
	TimestampsOffset = "offset"
)

// Back-pressure policies for a full hand-off queue
const (
	BackpressureBlock = "block"
	BackpressureDrop  = "drop"
)

// Destination targets
const (
	TargetStdout = "stdout"
	TargetStderr = "stderr"
)

// DefaultChannelSize is the hand-off queue capacity used when none is
// configured.
const DefaultChannelSize int64 = 16384

const (
	// Payloads at or below this size are appended to the writer task's
	// pending buffer; larger ones are written directly so a single huge
	// record cannot balloon the buffer.
	inlineBatchLimit = 1280

	// Default timestamp layouts, millisecond precision
	timestampLayoutUTC    = "2006-01-02T15:04:05.000Z"
	timestampLayoutOffset = "2006-01-02T15:04:05.000-07:00"
)

// ANSI SGR sequences for colored level labels
const (
	ansiReset   = "\x1b[0m"
	ansiRed     = "\x1b[31m"
	ansiYellow  = "\x1b[33m"
	ansiCyan    = "\x1b[36m"
	ansiMagenta = "\x1b[35m"
)
