// Package mpeg decodes MPEG-1/2/2.5 Layer I/II/III audio-frame headers by
// table lookup across the interdependent version/layer/bitrate/sampling
// fields, and reads each frame's payload off a cursor.ByteCursor. It has no
// knowledge of ID3v2; that lives in the sibling id3 package.
package mpeg

import (
	"fmt"

	"github.com/aidanlind/mp3scan/internal/cursor"
	"github.com/aidanlind/mp3scan/internal/parseerr"
)

// Frame is a single decoded MPEG audio frame: header fields plus the raw
// payload bytes that followed it in the stream.
type Frame struct {
	RawHeaderBits  string
	HeaderBytes    [4]byte
	MPEGVersionID  int
	MPEGVersion    string
	LayerID        int
	Layer          string
	CRCProtected   bool
	BitrateID      int
	Bitrate        int // kbit/s
	SamplingRateID int
	SamplingRate   int // Hz
	Padded         bool
	PrivateBit     int
	Channel        string
	ModeExtension  ModeExtension
	IsCopyrighted  bool
	IsOriginal     bool
	Emphasis       string
	Size           int // payload bytes
	RawData        []byte

	modeExtensionBits int
}

// ModeExtensionDescription gives the textual mode-extension label: band
// range for Layer I/II, M/S-stereo/intensity-stereo combination for Layer
// III.
func (f Frame) ModeExtensionDescription() string {
	return modeExtensionDescription(f.LayerID, channelID(f.Channel), f.modeExtensionBits, f.ModeExtension)
}

func channelID(channel string) int {
	switch channel {
	case "Stereo":
		return 0
	case "Joint Stereo":
		return 1
	case "Dual Channel":
		return 2
	default:
		return 3
	}
}

// PossibleFrame reports whether the last four bytes of a byte-by-byte scan
// form a valid 11-bit frame sync prefix (0x7FF, MSB-first). A window shorter
// than four bytes is never a match.
func PossibleFrame(bs []byte) bool {
	if len(bs) < 4 {
		return false
	}
	return bs[0] == 0xFF && bs[1]&0xE0 == 0xE0
}

// NewFrame decodes a frame header from its four raw octets and reads the
// payload off cur. headerBytes must already satisfy PossibleFrame; cur must
// be positioned immediately after those four header bytes.
func NewFrame(cur *cursor.ByteCursor, headerBytes []byte) (Frame, error) {
	if !PossibleFrame(headerBytes) {
		return Frame{}, parseerr.New(parseerr.InvalidSync, fmt.Sprintf("header bytes %x lack the 0x7FF sync prefix", headerBytes))
	}

	var hb [4]byte
	copy(hb[:], headerBytes)

	versionID := int(headerBytes[1]>>3) & 0x03
	layerID := int(headerBytes[1]>>1) & 0x03
	crcProtected := headerBytes[1]&0x01 == 0
	bitrateID := int(headerBytes[2]>>4) & 0x0F
	sampleRateID := int(headerBytes[2]>>2) & 0x03
	padded := (headerBytes[2]>>1)&0x01 == 1
	privateBit := int(headerBytes[2] & 0x01)
	channelModeID := int(headerBytes[3]>>6) & 0x03
	modeExtBits := int(headerBytes[3]>>4) & 0x03
	copyrighted := (headerBytes[3]>>3)&0x01 == 1
	original := (headerBytes[3]>>2)&0x01 == 1
	emphasisID := int(headerBytes[3] & 0x03)

	samplingRate, ok := lookupSampleRate(versionID, sampleRateID)
	if !ok || samplingRate < 1 {
		return Frame{}, parseerr.New(parseerr.InvalidSamplingRate, fmt.Sprintf("version id %d, sampling rate id %d", versionID, sampleRateID))
	}

	bitrate, ok := lookupBitrate(versionID, layerID, bitrateID)
	if !ok {
		return Frame{}, parseerr.New(parseerr.InvalidBitrate, fmt.Sprintf("version id %d, layer id %d, bitrate id %d", versionID, layerID, bitrateID))
	}

	size, err := frameSize(layerID, bitrate, samplingRate, padded)
	if err != nil {
		return Frame{}, err
	}

	var raw []byte
	if size > 0 {
		// Off-by-one quirk preserved from the source: Read(n) yields n+1
		// bytes, so size bytes are requested as Read(size-1).
		raw = cur.Read(size - 1)
	}

	if len(raw) != size {
		return Frame{}, parseerr.New(parseerr.TruncatedFrame, fmt.Sprintf("wanted %d payload bytes, got %d", size, len(raw)))
	}

	return Frame{
		RawHeaderBits:     cursor.ByteArrToBinary(headerBytes),
		HeaderBytes:       hb,
		MPEGVersionID:     versionID,
		MPEGVersion:       versionString(versionID),
		LayerID:           layerID,
		Layer:             layerString(layerID),
		CRCProtected:      crcProtected,
		BitrateID:         bitrateID,
		Bitrate:           bitrate,
		SamplingRateID:    sampleRateID,
		SamplingRate:      samplingRate,
		Padded:            padded,
		PrivateBit:        privateBit,
		Channel:           channelString(channelModeID),
		ModeExtension:     modeExtension(layerID, channelModeID, modeExtBits),
		IsCopyrighted:     copyrighted,
		IsOriginal:        original,
		Emphasis:          emphasisString(emphasisID),
		Size:              size,
		RawData:           raw,
		modeExtensionBits: modeExtBits,
	}, nil
}

// frameSize computes the payload length in bytes, header already excluded.
// Layer I uses 4-byte slots; Layer II/III use 1-byte slots.
func frameSize(layerID, bitrate, samplingRate int, padded bool) (int, error) {
	p := 0
	if padded {
		p = 1
	}
	br := bitrate * 1000

	var size int
	if layerID == 3 { // Layer I
		size = ((12*br)/samplingRate+4*p)*4 - 4
	} else { // Layer II or III
		size = (144*br)/samplingRate + p - 4
	}

	if size < 0 {
		return 0, parseerr.New(parseerr.InvalidFrameSize, fmt.Sprintf("computed size %d", size))
	}
	return size, nil
}
