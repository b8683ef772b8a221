// Package id3 decodes the ID3v2.x tag container that may precede the first
// MPEG audio frame: a fixed 10-octet header followed by a variable number of
// tag frames. It has no knowledge of MPEG frame headers; that lives in the
// sibling mpeg package.
package id3

import (
	"fmt"

	"github.com/aidanlind/mp3scan/internal/cursor"
	"github.com/aidanlind/mp3scan/internal/parseerr"
)

const headerLen = 10

// Header is the fixed 10-octet ID3v2 preamble, decoded but not validated
// against the literal "ID3" signature -- this parser, like its source,
// trusts the alignment stage to have found a real tag and does not reject
// on a mismatched signature.
type Header struct {
	TagVersion        string // "ID3V2.X.Y"
	VersionMajor      int
	VersionRevision   int
	Unsynchronisation int // 0 or 1, per the data model; the bit is carried, never acted on
	Extended          bool
	Experimental      bool
	HasFooter         bool
	TagSize           int // synchsafe 28-bit size, header/footer excluded
}

// Tag is one decoded ID3v2 tag frame.
type Tag struct {
	Identifier string // 4-char ASCII
	Value      []byte
	Flags      [2]byte
}

// ReadHeader decodes the 10-octet ID3v2 header and the tag frames that
// follow it off cur, which must be positioned at the first byte of the
// accumulator handed over by the alignment step. If the accumulator is
// empty, both the header and the tag list come back empty -- a valid,
// tag-less result, not an error.
func ReadHeader(cur *cursor.ByteCursor) (*Header, []Tag, error) {
	if cur.Len() == 0 {
		return nil, nil, nil
	}

	hb := cur.Read(headerLen - 1) // off-by-one: Read(n) yields n+1 bytes
	if len(hb) < headerLen {
		return nil, nil, parseerr.New(parseerr.TagSizeMismatch, fmt.Sprintf("header truncated at %d bytes", len(hb)))
	}

	flagsByte := hb[5]
	header := &Header{
		VersionMajor:      int(hb[3]),
		VersionRevision:   int(hb[4]),
		TagVersion:        fmt.Sprintf("ID3V2.%d.%d", hb[3], hb[4]),
		Unsynchronisation: int(flagsByte >> 7 & 0x01),
		Extended:          flagsByte>>6&0x01 == 1,
		Experimental:      flagsByte>>5&0x01 == 1,
		HasFooter:         flagsByte>>4&0x01 == 1,
	}

	header.TagSize = decodeSynchsafeSize(hb[6:10])

	actual := cur.Len() - headerLen
	if header.TagSize != actual {
		return nil, nil, parseerr.New(parseerr.TagSizeMismatch, fmt.Sprintf("declared %d, actual %d", header.TagSize, actual))
	}

	tags, err := readTags(cur, header.TagSize)
	if err != nil {
		return nil, nil, err
	}

	return header, tags, nil
}

// decodeSynchsafeSize reassembles a 28-bit synchsafe integer from four
// octets whose MSB is always 0: (b0<<21)|(b1<<14)|(b2<<7)|b3.
func decodeSynchsafeSize(b []byte) int {
	return int(b[0])<<21 | int(b[1])<<14 | int(b[2])<<7 | int(b[3])
}
