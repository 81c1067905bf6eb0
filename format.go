// FILE: format.go
package console

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/console/sanitizer"
)

// lineFormatter renders one log record into the wire format:
//
//	[<timestamp> ]<LEVEL padded to 5> [<target>[@g<id>]] <args...>\r\n
//
// All options are fixed at construction, so a formatter is shared safely
// by every producer goroutine.
type lineFormatter struct {
	colors        bool
	timestamps    string
	layout        string
	loc           *time.Location
	showGoroutine bool
	san           *sanitizer.Sanitizer
}

func newLineFormatter(cfg *Config, colors bool) *lineFormatter {
	f := &lineFormatter{
		colors:        colors,
		timestamps:    cfg.Timestamps,
		showGoroutine: cfg.ShowGoroutine,
	}

	switch cfg.Timestamps {
	case TimestampsUTC:
		f.layout = timestampLayoutUTC
		f.loc = time.UTC
	case TimestampsOffset:
		f.layout = timestampLayoutOffset
		f.loc = time.FixedZone("", int(cfg.UTCOffsetMinutes)*60)
	}
	if cfg.TimestampFormat != "" {
		f.layout = cfg.TimestampFormat
	}

	policy := sanitizer.PolicyRaw
	if cfg.SanitizeControl {
		policy = sanitizer.PolicyTerminal
	}
	f.san = sanitizer.New(policy)

	return f
}

// appendLine renders the record into dst and returns the grown slice.
// gid is the producing goroutine id; zero omits the annotation.
func (f *lineFormatter) appendLine(dst []byte, t time.Time, level int64, target string, gid uint64, args []any) []byte {
	if f.timestamps != TimestampsNone {
		dst = t.In(f.loc).AppendFormat(dst, f.layout)
		dst = append(dst, ' ')
	}

	if c := levelColor(level); f.colors && c != "" {
		dst = append(dst, c...)
		dst = append(dst, levelLabel(level)...)
		dst = append(dst, ansiReset...)
	} else {
		dst = append(dst, levelLabel(level)...)
	}

	dst = append(dst, ' ', '[')
	dst = append(dst, f.san.Clean(target)...)
	if gid != 0 {
		dst = append(dst, "@g"...)
		dst = strconv.AppendUint(dst, gid, 10)
	}
	dst = append(dst, ']')

	for _, arg := range args {
		dst = append(dst, ' ')
		dst = f.appendValue(dst, arg)
	}

	return append(dst, '\r', '\n')
}

// appendValue converts any value to its text representation.
func (f *lineFormatter) appendValue(dst []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		dst = append(dst, f.san.Clean(val)...)
	case int:
		dst = strconv.AppendInt(dst, int64(val), 10)
	case int64:
		dst = strconv.AppendInt(dst, val, 10)
	case uint:
		dst = strconv.AppendUint(dst, uint64(val), 10)
	case uint64:
		dst = strconv.AppendUint(dst, val, 10)
	case float32:
		dst = strconv.AppendFloat(dst, float64(val), 'f', -1, 32)
	case float64:
		dst = strconv.AppendFloat(dst, val, 'f', -1, 64)
	case bool:
		dst = strconv.AppendBool(dst, val)
	case nil:
		dst = append(dst, "nil"...)
	case time.Time:
		dst = val.AppendFormat(dst, time.RFC3339Nano)
	case error:
		dst = append(dst, f.san.Clean(val.Error())...)
	case fmt.Stringer:
		dst = append(dst, f.san.Clean(val.String())...)
	case []byte:
		dst = append(dst, f.san.CleanBytes(val)...)
	default:
		// Structs, maps, pointers and the rest go through spew for a
		// compact, deterministic dump.
		var b bytes.Buffer
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(&b, val)
		dst = append(dst, f.san.Clean(string(bytes.TrimSpace(b.Bytes())))...)
	}
	return dst
}

func levelColor(level int64) string {
	switch {
	case level >= LevelError:
		return ansiRed
	case level >= LevelWarn:
		return ansiYellow
	case level >= LevelInfo:
		return ansiCyan
	case level >= LevelDebug:
		return ansiMagenta
	default:
		return ""
	}
}
