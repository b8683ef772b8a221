package id3

import (
	"testing"

	"github.com/aler9/writerseeker"

	"github.com/aidanlind/mp3scan/internal/cursor"
)

// encodeSynchsafe mirrors decodeSynchsafeSize in reverse, for test fixture
// construction only.
func encodeSynchsafe(size int) [4]byte {
	var b [4]byte
	b[0] = byte(size >> 21 & 0x7F)
	b[1] = byte(size >> 14 & 0x7F)
	b[2] = byte(size >> 7 & 0x7F)
	b[3] = byte(size & 0x7F)
	return b
}

// TestReadHeader_FixtureBuiltWithWriterSeeker builds a synthetic ID3v2
// stream by writing the header with a placeholder size, appending a tag
// frame, then seeking back to patch in the real synchsafe size once the
// total tag-frame length is known -- the same write-then-patch pattern used
// for side-info/Xing headers elsewhere in this codebase's ancestry.
func TestReadHeader_FixtureBuiltWithWriterSeeker(t *testing.T) {
	var ws writerseeker.WriterSeeker

	ws.Write([]byte("ID3"))
	ws.Write([]byte{0x03, 0x00, 0x00})       // version 3.0, no flags
	ws.Write([]byte{0x00, 0x00, 0x00, 0x00}) // placeholder size

	var frameBody []byte
	frameBody = append(frameBody, []byte("TALB")...)
	frameBody = append(frameBody, 0x00, 0x00, 0x00, 0x05) // size = 5
	frameBody = append(frameBody, 0x00, 0x00)             // flags
	frameBody = append(frameBody, 0x00, 'A', 'l', 'b', 0x00)

	ws.Write(frameBody)

	sizeBytes := encodeSynchsafe(len(frameBody))
	if _, err := ws.Seek(6, 0); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	ws.Write(sizeBytes[:])

	data := ws.Bytes()

	cur := cursor.New(data)
	header, tags, err := ReadHeader(cur)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if header.TagSize != len(frameBody) {
		t.Errorf("TagSize = %d, want %d", header.TagSize, len(frameBody))
	}
	if len(tags) != 1 {
		t.Fatalf("len(tags) = %d, want 1", len(tags))
	}
	if tags[0].Identifier != "TALB" {
		t.Errorf("Identifier = %q, want TALB", tags[0].Identifier)
	}

	text, err := tags[0].Text()
	if err != nil {
		t.Fatalf("Text(): %v", err)
	}
	if text != "Alb" {
		t.Errorf("Text() = %q, want %q", text, "Alb")
	}
}
