package mpeg

// Static lookup tables for MPEG audio frame headers: version, layer, bitrate
// and sampling-rate matrices, channel mode and mode-extension vocabulary.
// Grounded on the real MPEG Audio bitrate/sampling-rate tables as recorded
// consistently by slotheroo-yurit's mpegframeheader.go and the reference
// internal/mp3header/parse.go: both agree MPEG-2 Layer II and Layer III
// share one bitrate column while Layer I gets its own, which is what's
// wired below (see DESIGN.md for the column-assignment rationale).
//
// sampleRateMatrix[sampleRateID][column]: column 0 = MPEG-1, column 1 =
// MPEG-2, column 2 = MPEG-2.5. Row 3 (sampleRateID == 3) is reserved and has
// no table row at all; lookupSampleRate reports !ok for it instead of using
// a sentinel string.
var sampleRateMatrix = [3][3]int{
	{44100, 22050, 11025},
	{48000, 24000, 12000},
	{32000, 16000, 8000},
}

// bitrate tables, kbit/s. Index 0 (free format) and 15 (bad) are both
// treated as invalid here, rather than free-format being a legitimate
// marker as the general MPEG Audio standard allows.
var (
	bitrateV1L1   = [16]int{-1, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, -1}
	bitrateV1L2   = [16]int{-1, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, -1}
	bitrateV1L3   = [16]int{-1, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, -1}
	bitrateV2L1   = [16]int{-1, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, -1}
	bitrateV2L2L3 = [16]int{-1, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1}
)

// sampleRateColumn maps an MPEG version id to its sampleRateMatrix column.
// id=3 (MPEG-1) -> column 0; id=2 (MPEG-2) -> column 1; anything else
// (MPEG-2.5, or the reserved version id) -> column 2.
func sampleRateColumn(versionID int) int {
	switch versionID {
	case 3:
		return 0
	case 2:
		return 1
	default:
		return 2
	}
}

func lookupSampleRate(versionID, sampleRateID int) (int, bool) {
	if sampleRateID < 0 || sampleRateID > 2 {
		return 0, false
	}
	return sampleRateMatrix[sampleRateID][sampleRateColumn(versionID)], true
}

// lookupBitrate resolves the bitrate column by (version, layer): MPEG-1
// gets three distinct columns (one per layer); MPEG-2 and MPEG-2.5 share one
// column across Layer II and III and a second column for Layer I.
func lookupBitrate(versionID, layerID, bitrateID int) (int, bool) {
	if bitrateID < 0 || bitrateID > 15 {
		return 0, false
	}

	var table [16]int
	switch {
	case versionID == 3 && layerID == 3:
		table = bitrateV1L1
	case versionID == 3 && layerID == 2:
		table = bitrateV1L2
	case versionID == 3 && layerID == 1:
		table = bitrateV1L3
	case layerID == 3:
		table = bitrateV2L1
	case layerID == 2 || layerID == 1:
		table = bitrateV2L2L3
	default:
		return 0, false // reserved layer
	}

	v := table[bitrateID]
	if v < 0 {
		return 0, false
	}
	return v, true
}

func versionString(id int) string {
	switch id {
	case 3:
		return "MPEG Version 1 (ISO/IEC 11172-3)"
	case 2:
		return "MPEG Version 2 (ISO/IEC 13818-3)"
	case 0:
		return "MPEG Version 2.5"
	default:
		return "reserved"
	}
}

func layerString(id int) string {
	switch id {
	case 3:
		return "Layer I"
	case 2:
		return "Layer II"
	case 1:
		return "Layer III"
	default:
		return "reserved"
	}
}

func channelString(id int) string {
	switch id {
	case 0:
		return "Stereo"
	case 1:
		return "Joint Stereo"
	case 2:
		return "Dual Channel"
	default:
		return "Mono"
	}
}

func emphasisString(id int) string {
	switch id {
	case 0:
		return "none"
	case 1:
		return "50/15 ms"
	case 3:
		return "CCIT J.17"
	default:
		return "reserved"
	}
}

// ModeExtension captures the two mode-extension bits as a boolean pair:
// intensity stereo and M/S stereo.
type ModeExtension struct {
	IntensityStereo bool
	MSStereo        bool
}

// modeExtensionBandLabels gives the Layer I/II band-range vocabulary,
// grounded on slotheroo-yurit's mpegModeExtensionMap.
var modeExtensionBandLabels = [4]string{
	"bands 4 to 31",
	"bands 8 to 31",
	"bands 12 to 31",
	"bands 16 to 31",
}

func modeExtension(layerID, channelID, bits int) ModeExtension {
	if channelID != 1 { // not Joint Stereo: mode extension does not apply
		return ModeExtension{}
	}
	if layerID == 1 { // Layer III: bits map directly to MS/intensity toggles
		return ModeExtension{
			IntensityStereo: bits&0x01 != 0,
			MSStereo:        bits&0x02 != 0,
		}
	}
	// Layer I/II: the two bits select an intensity-stereo band range; there
	// is no M/S stereo concept for these layers.
	return ModeExtension{IntensityStereo: true}
}

func modeExtensionDescription(layerID, channelID, bits int, ext ModeExtension) string {
	if channelID != 1 {
		return "not applicable"
	}
	if layerID == 1 {
		switch {
		case ext.MSStereo && ext.IntensityStereo:
			return "M/S stereo on, Intensity stereo on"
		case ext.MSStereo:
			return "M/S stereo on, Intensity stereo off"
		case ext.IntensityStereo:
			return "M/S stereo off, Intensity stereo on"
		default:
			return "M/S stereo off, Intensity stereo off"
		}
	}
	if bits < 0 || bits > 3 {
		return "not applicable"
	}
	return modeExtensionBandLabels[bits]
}
