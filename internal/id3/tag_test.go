package id3

import (
	"testing"

	"github.com/aidanlind/mp3scan/internal/cursor"
)

func TestReadTags_SizeExceedsTagArea(t *testing.T) {
	// Declares a tag frame size of 100 inside a 19-byte tag area.
	data := []byte{
		0x54, 0x49, 0x54, 0x32,
		0x00, 0x00, 0x00, 100,
		0x00, 0x00,
	}
	cur := cursor.New(data)
	_, err := readTags(cur, 19)
	if err == nil {
		t.Fatal("expected TagSizeMismatch error, got nil")
	}
}

func TestReadTags_TruncatedFrameHeader(t *testing.T) {
	data := []byte{0x54, 0x49} // only 2 of the 10 header bytes present
	cur := cursor.New(data)
	_, err := readTags(cur, 19)
	if err == nil {
		t.Fatal("expected error for truncated tag frame header, got nil")
	}
}

func TestReadTags_MultipleTags(t *testing.T) {
	data := []byte{
		0x54, 0x50, 0x45, 0x31, // "TPE1"
		0x00, 0x00, 0x00, 0x04,
		0x00, 0x00,
		0x00, 'A', 'B', 0x00, // 4-byte ISO-8859-1 value
		0x54, 0x49, 0x54, 0x32, // "TIT2"
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00,
		0x00, 'C', 0x00, // 3-byte ISO-8859-1 value
	}
	cur := cursor.New(data)
	tags, err := readTags(cur, len(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("len(tags) = %d, want 2", len(tags))
	}
	if tags[0].Identifier != "TPE1" || tags[1].Identifier != "TIT2" {
		t.Errorf("tags in wrong order: %q, %q", tags[0].Identifier, tags[1].Identifier)
	}
}
