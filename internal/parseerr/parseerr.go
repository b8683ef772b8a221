// Package parseerr defines the structural error taxonomy shared by the
// cursor, id3 and mpeg packages. It mirrors the fixed-message Error type used
// throughout the retrieved example pack (an int-like Kind plus a lookup
// table of messages) rather than ad hoc fmt.Errorf strings, so callers can
// branch on errors.As/errors.Is against a stable Kind.
package parseerr

import "fmt"

// Kind identifies which structural violation was raised. All kinds are
// fatal at the point they're raised; none are retried or recovered from.
type Kind int

const (
	InvalidHexCharacter Kind = iota
	NoFrameFound
	TagSizeMismatch
	InvalidSync
	InvalidBitrate
	InvalidSamplingRate
	InvalidFrameSize
	TruncatedFrame
)

var kindMessages = [...]string{
	"invalid hex character",
	"no frame found",
	"ID3v2 tag size mismatch",
	"invalid frame sync",
	"invalid bitrate",
	"invalid sampling rate",
	"invalid frame size",
	"truncated frame",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindMessages) {
		return kindMessages[k]
	}
	return "unknown parse error"
}

// Error is a structural parse failure. Detail adds call-site context (the
// offending byte, the expected vs. actual size, etc.) to the fixed Kind
// message.
type Error struct {
	Kind   Kind
	Detail string
}

// New builds an Error for the given Kind with an optional detail string.
func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Detail)
}

// Is reports whether target is a *Error of the same Kind, enabling
// errors.Is(err, parseerr.New(parseerr.NoFrameFound, "")) style checks.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
