package ack

import (
	"fmt"

	"github.com/arloliu/vrtack/endian"
	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/internal/options"
	"github.com/arloliu/vrtack/section"
)

// defaultBufferSize covers the prologue and a few dozen indicator words.
const defaultBufferSize = 256

// Config holds the prologue values of a packet under construction.
type Config struct {
	streamID   uint32
	classID    []uint32
	tsi        uint8
	tsf        uint8
	intTS      uint32
	fracTS     uint64
	messageID  uint32
	controllee []uint32
	controller []uint32
	count      uint8
	bufferSize int
}

// Option represents a functional option for configuring a new acknowledge packet.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithStreamID sets the stream identifier word.
func WithStreamID(id uint32) Option {
	return options.NoError(func(c *Config) {
		c.streamID = id
	})
}

// WithClassID adds the class identifier: a 24-bit OUI followed by the
// information and packet class codes.
func WithClassID(oui uint32, infoClass, packetClass uint16) Option {
	return options.New(func(c *Config) error {
		if oui > 0xFFFFFF {
			return fmt.Errorf("%w: OUI 0x%X does not fit in 24 bits", errs.ErrInvalidHeader, oui)
		}
		c.classID = []uint32{oui, uint32(infoClass)<<16 | uint32(packetClass)}

		return nil
	})
}

// WithTimestamps adds the integer and fractional timestamps. A zero tsi or tsf
// leaves the matching timestamp out of the packet.
func WithTimestamps(tsi, tsf uint8, integer uint32, fractional uint64) Option {
	return options.New(func(c *Config) error {
		if tsi > 3 || tsf > 3 {
			return fmt.Errorf("%w: TSI %d TSF %d", errs.ErrInvalidHeader, tsi, tsf)
		}
		c.tsi, c.tsf = tsi, tsf
		c.intTS, c.fracTS = integer, fractional

		return nil
	})
}

// WithMessageID sets the message identifier the acknowledgement refers to.
func WithMessageID(id uint32) Option {
	return options.NoError(func(c *Config) {
		c.messageID = id
	})
}

// WithPacketCount sets the modulo-16 packet count of the header.
func WithPacketCount(n uint8) Option {
	return options.NoError(func(c *Config) {
		c.count = n & 0xF
	})
}

// WithControllee adds a 32-bit controllee identifier.
func WithControllee(id uint32) Option {
	return options.NoError(func(c *Config) {
		c.controllee = []uint32{id}
	})
}

// WithControlleeUUID adds a 128-bit controllee identifier.
func WithControlleeUUID(uuid [16]byte) Option {
	return options.NoError(func(c *Config) {
		c.controllee = uuidWords(uuid)
	})
}

// WithController adds a 32-bit controller identifier.
func WithController(id uint32) Option {
	return options.NoError(func(c *Config) {
		c.controller = []uint32{id}
	})
}

// WithControllerUUID adds a 128-bit controller identifier.
func WithControllerUUID(uuid [16]byte) Option {
	return options.NoError(func(c *Config) {
		c.controller = uuidWords(uuid)
	})
}

// WithBufferSize sets the initial buffer capacity in bytes.
func WithBufferSize(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 || n > section.MaxPacketBytes {
			return fmt.Errorf("%w: buffer size %d", errs.ErrPacketTooLarge, n)
		}
		c.bufferSize = n

		return nil
	})
}

func uuidWords(uuid [16]byte) []uint32 {
	engine := endian.GetVRTEngine()
	words := make([]uint32, section.UUIDWords)
	for i := range words {
		words[i] = engine.Uint32(uuid[i*section.WordSize:])
	}

	return words
}

// header returns the header and CAM words implied by the configuration.
func (c *Config) header() (section.Header, section.CAM) {
	h := section.Header{
		Type:    section.PacketTypeCommand,
		Ack:     true,
		ClassID: c.classID != nil,
		TSI:     c.tsi,
		TSF:     c.tsf,
		Count:   c.count,
	}

	var cam section.CAM
	if c.controllee != nil {
		cam |= section.CAMControlleeEnable
		if len(c.controllee) == section.UUIDWords {
			cam |= section.CAMControlleeUUID
		}
	}
	if c.controller != nil {
		cam |= section.CAMControllerEnable
		if len(c.controller) == section.UUIDWords {
			cam |= section.CAMControllerUUID
		}
	}

	return h, cam
}
