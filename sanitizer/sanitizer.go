// FILE: sanitizer/sanitizer.go
// Package sanitizer rewrites strings so they are safe to emit on a
// terminal, hex-encoding runes that could otherwise smuggle escape
// sequences or corrupt the display.
package sanitizer

import (
	"strconv"
	"unicode/utf8"
)

// Policy selects which runes are rewritten.
type Policy uint8

const (
	// PolicyRaw is a no-op passthrough.
	PolicyRaw Policy = iota
	// PolicyTerminal hex-encodes every rune that strconv.IsPrint rejects,
	// which covers C0/C1 controls and therefore ANSI escape introducers.
	PolicyTerminal
)

const hexChars = "0123456789abcdef"

// Sanitizer applies a fixed policy. It carries no mutable state and is
// safe for concurrent use by multiple producers.
type Sanitizer struct {
	policy Policy
}

// New creates a Sanitizer for the given policy.
func New(policy Policy) *Sanitizer {
	return &Sanitizer{policy: policy}
}

// Clean returns in with non-printable runes replaced by "<hex>" of their
// UTF-8 bytes. The input is returned unchanged (no allocation) when it is
// already clean or the policy is PolicyRaw.
func (s *Sanitizer) Clean(in string) string {
	if s.policy == PolicyRaw {
		return in
	}

	dirty := -1
	for i, r := range in {
		if !printable(r) {
			dirty = i
			break
		}
	}
	if dirty < 0 {
		return in
	}

	buf := make([]byte, 0, len(in)+8)
	buf = append(buf, in[:dirty]...)
	for _, r := range in[dirty:] {
		if printable(r) {
			buf = utf8.AppendRune(buf, r)
			continue
		}
		buf = appendHexEncoded(buf, r)
	}
	return string(buf)
}

// CleanBytes is the []byte variant of Clean.
func (s *Sanitizer) CleanBytes(in []byte) string {
	return s.Clean(string(in))
}

func printable(r rune) bool {
	return strconv.IsPrint(r)
}

// appendHexEncoded writes the rune's UTF-8 bytes as "<XX...>".
func appendHexEncoded(dst []byte, r rune) []byte {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)

	dst = append(dst, '<')
	for _, b := range enc[:n] {
		dst = append(dst, hexChars[b>>4], hexChars[b&0xF])
	}
	return append(dst, '>')
}
