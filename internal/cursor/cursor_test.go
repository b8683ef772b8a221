package cursor

import (
	"reflect"
	"testing"
)

func TestByteCursor_Read(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []byte
	}{
		{"zero returns one byte", 0, []byte{0x01}},
		{"three returns four bytes", 3, []byte{0x01, 0x02, 0x03, 0x04}},
		{"past end truncates", 10, []byte{0x01, 0x02, 0x03, 0x04, 0x05}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
			got := c.Read(tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Read(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestByteCursor_Read_AdvancesPosition(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03, 0x04})
	c.Read(3) // consumes all 4 bytes
	if c.Position() != 5 {
		t.Errorf("Position() = %d, want 5", c.Position())
	}
	if c.InBounds() {
		t.Errorf("InBounds() = true, want false once position > len(buffer)+1")
	}
}

func TestByteCursor_Peek_DoesNotAdvance(t *testing.T) {
	c := New([]byte{0xFF, 0xFB, 0x90, 0x00})
	got := c.Peek(3)
	want := []byte{0xFF, 0xFB, 0x90, 0x00}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Peek(3) = %v, want %v", got, want)
	}
	if c.Position() != 1 {
		t.Errorf("Position() = %d, want 1 (unchanged)", c.Position())
	}
}

func TestByteCursor_Rewind(t *testing.T) {
	c := New([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	c.Read(3)
	c.Rewind(4)
	if c.Position() != 1 {
		t.Errorf("Position() after Rewind(4) = %d, want 1", c.Position())
	}
}

func TestByteCursor_EmptyBuffer(t *testing.T) {
	c := New(nil)
	got := c.Read(3)
	if len(got) != 0 {
		t.Errorf("Read(3) on empty buffer = %v, want empty", got)
	}
}

func TestByteArrToBinary(t *testing.T) {
	got := ByteArrToBinary([]byte{0xFF, 0x00, 0x0F})
	want := "111111110000000000001111"
	if got != want {
		t.Errorf("ByteArrToBinary = %q, want %q", got, want)
	}
}

func TestDecimalToBinary(t *testing.T) {
	for n := 0; n < 256; n++ {
		s := DecimalToBinary(n, 8)
		if len(s) != 8 {
			t.Fatalf("DecimalToBinary(%d, 8) has length %d, want 8", n, len(s))
		}
		got, err := HexToDecimal(binaryToHex(s))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != n {
			t.Errorf("round-trip DecimalToBinary(%d) = %q, decoded back to %d", n, s, got)
		}
	}
}

// binaryToHex is a test-only helper converting a binary string to hex, used
// to exercise HexToDecimal as the inverse of DecimalToBinary.
func binaryToHex(bin string) string {
	v := 0
	for _, c := range bin {
		v = v*2 + int(c-'0')
	}
	const digits = "0123456789abcdef"
	if v == 0 {
		return "0"
	}
	var out []byte
	for v > 0 {
		out = append([]byte{digits[v%16]}, out...)
		v /= 16
	}
	return string(out)
}

func TestGet32BitInt(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want int
	}{
		{"single byte", []byte{0x01}, 1},
		{"three bytes", []byte{0x00, 0x02, 0x01}, 0x0201},
		{"four bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}, 0xFFFFFFFF},
		{"more than four truncates to first four", []byte{0x01, 0x00, 0x00, 0x00, 0xFF}, 0x01000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get32BitInt(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Get32BitInt(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestByteArrToASCII(t *testing.T) {
	got := ByteArrToASCII([]byte("ID3"))
	if got != "ID3" {
		t.Errorf("ByteArrToASCII = %q, want %q", got, "ID3")
	}
}

func TestHexToDecimal(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"ff", 255, false},
		{"FF", 255, false},
		{"0101", 257, false},
		{"g1", 0, true},
	}
	for _, tt := range tests {
		got, err := HexToDecimal(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("HexToDecimal(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("HexToDecimal(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestByteArrToDecimal(t *testing.T) {
	if got := ByteArrToDecimal([]byte{0x05}); got != 5 {
		t.Errorf("ByteArrToDecimal single byte = %d, want 5", got)
	}
}
