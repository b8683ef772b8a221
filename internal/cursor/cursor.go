// Package cursor implements ByteCursor, a 1-based movable cursor over an
// immutable byte buffer, plus the handful of primitive integer/ASCII/hex
// conversions the MPEG and ID3v2 decoders build on. It carries no knowledge
// of MPEG or ID3 semantics.
package cursor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aidanlind/mp3scan/internal/parseerr"
)

// ByteCursor wraps an input byte buffer with a 1-origin position. It never
// fails: reads past the end of the buffer are silently truncated, and
// InBounds reports whether the cursor has walked off the end.
type ByteCursor struct {
	buffer   []byte
	position int
}

// New creates a cursor positioned at the first byte of buffer.
func New(buffer []byte) *ByteCursor {
	return &ByteCursor{buffer: buffer, position: 1}
}

// Position returns the current 1-based position.
func (c *ByteCursor) Position() int {
	return c.position
}

// Len returns the length of the underlying buffer.
func (c *ByteCursor) Len() int {
	return len(c.buffer)
}

// InBounds reports whether the cursor still points inside (or one past the
// end of) the buffer. It latches false once the position has walked beyond
// that boundary.
func (c *ByteCursor) InBounds() bool {
	return c.position <= len(c.buffer)+1
}

// Rewind moves the position back by n. Used exactly once, by the frame-sync
// alignment step, to re-read the 4 sync bytes as the first frame header.
func (c *ByteCursor) Rewind(n int) {
	c.position -= n
}

// Read returns up to n+1 successive octets starting at the current
// position (inclusive endpoints: position..position+n) -- callers that want
// k bytes ask for Read(k-1). If the window crosses the end of the buffer,
// the read is silently truncated at the last valid octet. The cursor
// advances by the number of octets actually returned.
func (c *ByteCursor) Read(n int) []byte {
	return c.read(n, false)
}

// Peek is Read with stay=true: it returns the same bytes Read(n) would, but
// leaves the position unchanged.
func (c *ByteCursor) Peek(n int) []byte {
	return c.read(n, true)
}

func (c *ByteCursor) read(n int, stay bool) []byte {
	start := c.position
	end := start + n // inclusive

	var out []byte
	for i := start; i <= end; i++ {
		if i < 1 || i > len(c.buffer) {
			break
		}
		out = append(out, c.buffer[i-1])
	}

	if !stay {
		c.position += len(out)
	}

	return out
}

// ByteArrToBinary concatenates each octet's 8-bit big-endian binary
// rendering, MSB first, zero-padded.
func ByteArrToBinary(bs []byte) string {
	var sb strings.Builder
	for _, b := range bs {
		sb.WriteString(DecimalToBinary(int(b), 8))
	}
	return sb.String()
}

// DecimalToBinary renders n in big-endian binary using exactly bits
// characters, zero-padded on the left.
func DecimalToBinary(n, bits int) string {
	s := strconv.FormatInt(int64(n), 2)
	if len(s) < bits {
		s = strings.Repeat("0", bits-len(s)) + s
	}
	return s
}

// Get32BitInt assembles up to four octets into a big-endian integer by
// concatenating their lowercase hex renderings and converting hex to
// decimal -- a roundabout but correct path to the same result as a direct
// shift-and-or assembly.
func Get32BitInt(bs []byte) (int, error) {
	limit := len(bs)
	if limit > 4 {
		limit = 4
	}

	var hex strings.Builder
	for i := 0; i < limit; i++ {
		fmt.Fprintf(&hex, "%02x", bs[i])
	}

	return HexToDecimal(hex.String())
}

// ByteArrToASCII maps each octet to the character of that code point.
func ByteArrToASCII(bs []byte) string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		sb.WriteByte(b)
	}
	return sb.String()
}

// ByteArrToDecimal sums the octets rather than assembling them as a
// big-endian integer. This is only correct for single-octet inputs and is
// not a general-purpose conversion; the frame and tag decoders do not call it.
func ByteArrToDecimal(bs []byte) int {
	sum := 0
	for _, b := range bs {
		sum += int(b)
	}
	return sum
}

// HexToDecimal converts a case-insensitive hex string to its decimal value.
func HexToDecimal(hex string) (int, error) {
	result := 0
	for _, c := range strings.ToLower(hex) {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'a' && c <= 'f':
			v = int(c-'a') + 10
		default:
			return 0, parseerr.New(parseerr.InvalidHexCharacter, fmt.Sprintf("character %q", c))
		}
		result = result*16 + v
	}
	return result, nil
}
