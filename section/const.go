package section

const (
	// Header word bit masks (word 0 of every VRT packet)
	PacketTypeMask  = 0xF0000000 // Mask for packet type (bits 28-31)
	ClassIDMask     = 0x08000000 // Mask for class identifier present bit (bit 27)
	AckMask         = 0x04000000 // Mask for acknowledge packet indicator (bit 26)
	ReservedMask    = 0x02000000 // Mask for reserved indicator bit (bit 25)
	CancelMask      = 0x01000000 // Mask for cancellation packet indicator (bit 24)
	TSIMask         = 0x00C00000 // Mask for integer timestamp type (bits 22-23)
	TSFMask         = 0x00300000 // Mask for fractional timestamp type (bits 20-21)
	PacketCountMask = 0x000F0000 // Mask for modulo-16 packet count (bits 16-19)
	PacketSizeMask  = 0x0000FFFF // Mask for packet size in words (bits 0-15)

	packetTypeShift  = 28
	tsiShift         = 22
	tsfShift         = 20
	packetCountShift = 16
)

// CIF0 control bits. CIF0 bits 0-3 announce the optional enable words instead of
// selecting fields.
const (
	CIF7Enable = 0x00000001 // CIF0 bit 0: CIF7 attribute word present
	CIF1Enable = 0x00000002 // CIF0 bit 1: CIF1 word present
	CIF2Enable = 0x00000004 // CIF0 bit 2: CIF2 word present
	CIF3Enable = 0x00000008 // CIF0 bit 3: CIF3 word present

	CIF0ControlMask = CIF7Enable | CIF1Enable | CIF2Enable | CIF3Enable
	CIF0DataMask    = 0xFFFFFFF0 // field bits 4-31 of CIF0
	CIFNDataMask    = 0xFFFFFFFE // field bits 1-31 of CIF1, CIF2 and CIF3; bit 0 is reserved
	CIF7DataMask    = 0xFFFFFFFF // attribute bits 0-31 of CIF7
)

// Word and packet size limits.
const (
	WordSize       = 4                         // VRT word size in bytes
	MaxPacketWords = PacketSizeMask            // the size field counts 32-bit words
	MaxPacketBytes = MaxPacketWords * WordSize // largest representable packet in bytes

	HeaderWords    = 1
	StreamIDWords  = 1
	ClassIDWords   = 2
	IntegerTSWords = 1
	FracTSWords    = 2
	CAMWords       = 1
	MessageIDWords = 1
	ShortIDWords   = 1 // 32-bit controllee/controller identifier
	UUIDWords      = 4 // 128-bit controllee/controller identifier

	MinPrologueSize = (HeaderWords + StreamIDWords + CAMWords + MessageIDWords) * WordSize
)
