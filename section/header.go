package section

import (
	"fmt"

	"github.com/arloliu/vrtack/errs"
)

// Packet types that carry a Control/Acknowledge Mode word.
const (
	PacketTypeCommand          uint8 = 0x6
	PacketTypeExtensionCommand uint8 = 0x7
)

// Header is the decoded form of the first word of a VRT command packet.
type Header struct {
	// Type is the 4-bit packet type (bits 28-31).
	Type uint8
	// ClassID reports whether the two class identifier words follow the stream ID.
	ClassID bool
	// Ack marks an acknowledge packet (bit 26). Command packets proper have it clear.
	Ack bool
	// Reserved is bit 25. It must be zero on the wire.
	Reserved bool
	// Cancel marks a cancellation packet (bit 24).
	Cancel bool
	// TSI is the integer timestamp type. Any non-zero value adds one word.
	TSI uint8
	// TSF is the fractional timestamp type. Any non-zero value adds two words.
	TSF uint8
	// Count is the modulo-16 packet count.
	Count uint8
	// Size is the packet size in 32-bit words, header included.
	Size uint16
}

// ParseHeader decodes a header word. It never fails; use Validate to check
// the decoded fields.
func ParseHeader(word uint32) Header {
	return Header{
		Type:     uint8((word & PacketTypeMask) >> packetTypeShift),
		ClassID:  word&ClassIDMask != 0,
		Ack:      word&AckMask != 0,
		Reserved: word&ReservedMask != 0,
		Cancel:   word&CancelMask != 0,
		TSI:      uint8((word & TSIMask) >> tsiShift),
		TSF:      uint8((word & TSFMask) >> tsfShift),
		Count:    uint8((word & PacketCountMask) >> packetCountShift),
		Size:     uint16(word & PacketSizeMask),
	}
}

// Word encodes the header back into its wire word.
func (h Header) Word() uint32 {
	word := uint32(h.Type&0xF)<<packetTypeShift |
		uint32(h.TSI&0x3)<<tsiShift |
		uint32(h.TSF&0x3)<<tsfShift |
		uint32(h.Count&0xF)<<packetCountShift |
		uint32(h.Size)

	if h.ClassID {
		word |= ClassIDMask
	}
	if h.Ack {
		word |= AckMask
	}
	if h.Reserved {
		word |= ReservedMask
	}
	if h.Cancel {
		word |= CancelMask
	}

	return word
}

// IsAcknowledge reports whether the header describes a command acknowledge packet.
func (h Header) IsAcknowledge() bool {
	return (h.Type == PacketTypeCommand || h.Type == PacketTypeExtensionCommand) && h.Ack
}

// Validate checks that the header describes an acknowledge packet that is at
// least as large as its own fixed prologue.
//
// Returns:
//   - error: ErrNotAcknowledge for other packet types, ErrInvalidHeader for a
//     set reserved bit or an undersized packet
func (h Header) Validate() error {
	if !h.IsAcknowledge() {
		return fmt.Errorf("%w: type 0x%X ack=%t", errs.ErrNotAcknowledge, h.Type, h.Ack)
	}
	if h.Reserved {
		return fmt.Errorf("%w: reserved bit 25 is set", errs.ErrInvalidHeader)
	}
	if int(h.Size) < h.CAMWordIndex()+CAMWords+MessageIDWords {
		return fmt.Errorf("%w: size %d words is smaller than the prologue", errs.ErrInvalidHeader, h.Size)
	}

	return nil
}

// CAMWordIndex returns the word index of the Control/Acknowledge Mode word,
// which follows the stream ID, the optional class ID and the optional timestamps.
func (h Header) CAMWordIndex() int {
	n := HeaderWords + StreamIDWords
	if h.ClassID {
		n += ClassIDWords
	}
	if h.TSI != 0 {
		n += IntegerTSWords
	}
	if h.TSF != 0 {
		n += FracTSWords
	}

	return n
}

// PrologueWords returns the number of words in front of the first CIF0 word:
// everything up to the CAM word, the message ID and the controllee and
// controller identifiers announced by cam.
func PrologueWords(h Header, cam CAM) int {
	return h.CAMWordIndex() + CAMWords + MessageIDWords + cam.ControlleeWords() + cam.ControllerWords()
}
