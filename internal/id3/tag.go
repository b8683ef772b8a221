package id3

import (
	"fmt"
	"runtime"

	"github.com/aidanlind/mp3scan/internal/cursor"
	"github.com/aidanlind/mp3scan/internal/parseerr"
)

const tagFrameHeaderLen = 10

// readTags decodes tag frames off cur until expectedSize bytes of the tag
// area have been consumed. Per-tag-frame sizes are read as plain big-endian
// 32-bit integers, not the synchsafe encoding used for the outer header --
// a deliberate mismatch against the ID3v2.4 standard, not a bug.
func readTags(cur *cursor.ByteCursor, expectedSize int) ([]Tag, error) {
	tags := make([]Tag, 0)

	offset := 0
	for offset < expectedSize {
		fh := cur.Read(tagFrameHeaderLen - 1) // off-by-one: Read(n) yields n+1 bytes
		if len(fh) < tagFrameHeaderLen {
			return nil, parseerr.New(parseerr.TagSizeMismatch, fmt.Sprintf("tag frame header truncated at offset %d", offset))
		}

		identifier := cursor.ByteArrToASCII(fh[0:4])
		size, err := cursor.Get32BitInt(fh[4:8])
		if err != nil {
			return nil, err
		}

		var flags [2]byte
		copy(flags[:], fh[8:10])

		if offset+tagFrameHeaderLen+size > expectedSize {
			return nil, parseerr.New(parseerr.TagSizeMismatch, fmt.Sprintf("tag %q declares size %d past end of tag area", identifier, size))
		}

		var value []byte
		if size > 0 {
			value = cur.Read(size - 1) // off-by-one: Read(n) yields n+1 bytes
		}

		if len(value) != size {
			return nil, parseerr.New(parseerr.TagSizeMismatch, fmt.Sprintf("tag %q wanted %d value bytes, got %d", identifier, size, len(value)))
		}

		offset += tagFrameHeaderLen + size

		if size == 0 && fh[0] == 0x00 {
			// Padding slot: dropped, not appended. Scanning continues --
			// padding can appear before the end of the declared tag area.
			runtime.Gosched()
			continue
		}

		tags = append(tags, Tag{Identifier: identifier, Value: value, Flags: flags})
		runtime.Gosched()
	}

	return tags, nil
}
