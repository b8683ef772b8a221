package id3

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const (
	encISO88591  = 0x00
	encUTF16BOM  = 0x01
	encUTF16BE   = 0x02
	encUTF8      = 0x03
)

// Text decodes a text-frame's Value as UTF-8, dispatching on the leading
// encoding-description byte (ID3v2.4 §4: 0 ISO-8859-1, 1 UTF-16 with BOM,
// 2 UTF-16BE without BOM, 3 UTF-8). Frames whose identifier does not start
// with 'T' or 'W' are not text frames and return an error, matching the
// source's own hasText() restriction.
func (t Tag) Text() (string, error) {
	if len(t.Identifier) == 0 || (t.Identifier[0] != 'T' && t.Identifier[0] != 'W') {
		return "", fmt.Errorf("id3: tag %q does not carry text content", t.Identifier)
	}
	if len(t.Value) == 0 {
		return "", nil
	}

	encByte := t.Value[0]
	body := t.Value[1:]

	var enc encoding.Encoding
	switch encByte {
	case encISO88591:
		enc = charmap.ISO8859_1
	case encUTF16BOM:
		enc = unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case encUTF16BE:
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case encUTF8:
		return trimNul(body), nil
	default:
		return "", fmt.Errorf("id3: tag %q has undefined text encoding byte %#x", t.Identifier, encByte)
	}

	decoded, err := enc.NewDecoder().Bytes(trimNulWide(body, encByte))
	if err != nil {
		return "", fmt.Errorf("id3: decoding tag %q: %w", t.Identifier, err)
	}
	return string(decoded), nil
}

// trimNul cuts b at its first NUL byte, if any: the terminator and anything
// after it are dropped.
func trimNul(b []byte) string {
	if i := bytes.IndexByte(b, 0x00); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// trimNulWide cuts b at its first terminator sized for the given encoding:
// one NUL byte for single-byte encodings, a 0x00 0x00 pair at an even offset
// for UTF-16 variants. The terminator and anything after it are dropped.
func trimNulWide(b []byte, encByte byte) []byte {
	if encByte == encISO88591 {
		if i := bytes.IndexByte(b, 0x00); i >= 0 {
			return b[:i]
		}
		return b
	}
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0x00 && b[i+1] == 0x00 {
			return b[:i]
		}
	}
	return b
}
