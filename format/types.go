package format

type (
	ValueKind       uint8
	CompressionType uint8
)

// Value kinds of indicator fields, inherited from the general VRT context packet model.
// Acknowledge packets carry every scalar kind as a single 32-bit word.
const (
	KindInt32       ValueKind = 0x1 // KindInt32 is a single signed 32-bit word.
	KindInt16       ValueKind = 0x2 // KindInt16 is a 16-bit value in the low half of a word.
	KindInt24       ValueKind = 0x3 // KindInt24 is a 24-bit value packed into a word.
	KindInt64       ValueKind = 0x4 // KindInt64 is a two-word value (frequencies, rates).
	KindBoolNull    ValueKind = 0x5 // KindBoolNull is a tri-state enable/indicator bit pair.
	KindGeolocation ValueKind = 0x6 // KindGeolocation is a formatted GPS/INS record.
	KindEphemeris   ValueKind = 0x7 // KindEphemeris is an ECEF or relative ephemeris record.
	KindRecord      ValueKind = 0x8 // KindRecord is any other structured or variable-length record.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ValueKind) String() string {
	switch k {
	case KindInt32:
		return "Int32"
	case KindInt16:
		return "Int16"
	case KindInt24:
		return "Int24"
	case KindInt64:
		return "Int64"
	case KindBoolNull:
		return "BoolNull"
	case KindGeolocation:
		return "Geolocation"
	case KindEphemeris:
		return "Ephemeris"
	case KindRecord:
		return "Record"
	default:
		return "Unknown"
	}
}

// Scalar reports whether k is a plain numeric or flag value. Geolocation,
// ephemeris and record kinds are structured.
func (k ValueKind) Scalar() bool {
	switch k {
	case KindInt32, KindInt16, KindInt24, KindInt64, KindBoolNull:
		return true
	default:
		return false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
