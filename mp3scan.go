// Package mp3scan parses MPEG-1/2/2.5 Layer I/II/III audio streams together
// with any leading ID3v2 tag container into an in-memory AudioObject. The
// core is a pure function of its input buffer: no CLI flags, environment
// variables, or persisted state influence decoding.
package mp3scan

import (
	"os"

	"github.com/aidanlind/mp3scan/internal/cursor"
	"github.com/aidanlind/mp3scan/internal/diag"
	"github.com/aidanlind/mp3scan/internal/id3"
	"github.com/aidanlind/mp3scan/internal/mpeg"
	"github.com/aidanlind/mp3scan/internal/parseerr"
)

// Re-exported types, so callers never need to import the internal packages
// directly.
type (
	HeaderInfo = id3.Header
	Tag        = id3.Tag
	Frame      = mpeg.Frame
	Kind       = parseerr.Kind
	ParseError = parseerr.Error
)

// Re-exported Kind constants.
const (
	InvalidHexCharacter = parseerr.InvalidHexCharacter
	NoFrameFound        = parseerr.NoFrameFound
	TagSizeMismatch     = parseerr.TagSizeMismatch
	InvalidSync         = parseerr.InvalidSync
	InvalidBitrate      = parseerr.InvalidBitrate
	InvalidSamplingRate = parseerr.InvalidSamplingRate
	InvalidFrameSize    = parseerr.InvalidFrameSize
	TruncatedFrame      = parseerr.TruncatedFrame
)

// AudioObject is the immutable result of a single Parse call: an optional
// ID3v2 header, its tags in file order, and the decoded MPEG frames in
// stream order.
type AudioObject struct {
	Header *HeaderInfo
	Tags   []Tag
	Frames []Frame
}

// Config controls optional diagnostics around the parse core; it never
// changes decoding results.
type Config struct {
	// Debug enables a tagged *log.Logger trace of the parse run to Stderr.
	Debug bool
}

// Parser holds one parse run's cursor and configuration. It is not safe for
// concurrent use and is meant to be used once per input buffer.
type Parser struct {
	cur *cursor.ByteCursor
	cfg Config
	log *diag.Logger
}

// NewParser wraps buffer for a single Parse call.
func NewParser(buffer []byte, cfg Config) *Parser {
	p := &Parser{
		cur: cursor.New(buffer),
		cfg: cfg,
	}
	if cfg.Debug {
		p.log = diag.New(os.Stderr)
	}
	return p
}

// Parse runs the full align -> ReadHeader -> frame-loop pipeline over the
// buffer and returns the decoded AudioObject. Any error aborts the parse;
// the partially built result is discarded, matching the fail-fast
// propagation model: corruption mid-stream is not resynchronized, only
// reported.
func (p *Parser) Parse() (*AudioObject, error) {
	if p.log != nil {
		p.log.Start(p.cur.Len())
	}

	accumulator, found := p.align()
	if !found {
		return nil, parseerr.New(parseerr.NoFrameFound, "no 11-bit sync prefix found before end of buffer")
	}

	header, tags, err := id3.ReadHeader(cursor.New(accumulator))
	if err != nil {
		return nil, err
	}

	frames := make([]Frame, 0)
	for p.cur.Position() < p.cur.Len() {
		headerBytes := p.cur.Read(3) // 4 octets, per the Read width quirk
		if len(headerBytes) < 4 {
			break
		}

		frame, err := mpeg.NewFrame(p.cur, headerBytes)
		if err != nil {
			if p.log != nil {
				p.log.Warnf("frame decode failed at header %x: %v", headerBytes, err)
			}
			return nil, err
		}
		frames = append(frames, frame)
	}

	return &AudioObject{Header: header, Tags: tags, Frames: frames}, nil
}

// align implements §4.2.1: it consumes the buffer one octet at a time,
// testing the trailing 4-octet window with mpeg.PossibleFrame after every
// octet. On a match it rewinds the cursor by 4 so the sync bytes are
// re-read as the first frame header, and returns everything accumulated
// before that window (the pending ID3v2 container). If the cursor runs out
// before a match, found is false.
func (p *Parser) align() (accumulator []byte, found bool) {
	for p.cur.InBounds() {
		b := p.cur.Read(0) // off-by-one quirk: yields exactly 1 byte
		if len(b) == 0 {
			break
		}
		accumulator = append(accumulator, b...)

		if len(accumulator) >= 4 && mpeg.PossibleFrame(accumulator[len(accumulator)-4:]) {
			p.cur.Rewind(4)
			accumulator = accumulator[:len(accumulator)-4]
			return accumulator, true
		}
	}
	return accumulator, false
}
