package ack

import (
	"maps"

	"github.com/arloliu/vrtack/indicator"
	"github.com/arloliu/vrtack/internal/hash"
	"github.com/arloliu/vrtack/internal/options"
	"github.com/arloliu/vrtack/packet"
	"github.com/arloliu/vrtack/section"
)

// varKey identifies the declared length of one variable-length field.
type varKey struct {
	id  indicator.FieldID
	occ Occurrence
}

// Packet is a VRT command acknowledge packet.
//
// The payload holds two indicator layouts, warnings first and errors second. Each
// starts with a CIF0 enable word, followed by the CIF1, CIF2, CIF3 and CIF7 words
// CIF0 announces, followed by one slot per enabled field. Every field offset is
// derived from the enable words on demand; the packet keeps no offset tables.
//
// A Packet is not safe for concurrent use. Callers that share a packet between
// goroutines must serialize every call.
type Packet struct {
	pkt     *packet.Packet
	varLens map[varKey]int
}

// New creates an acknowledge packet with empty warning and error layouts.
//
// Parameters:
//   - opts: Prologue options (stream ID, class ID, timestamps, identifiers)
//
// Returns:
//   - *Packet: The new packet, holding only the prologue and two zero CIF0 words
//   - error: Option validation errors
func New(opts ...Option) (*Packet, error) {
	cfg := &Config{bufferSize: defaultBufferSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	h, cam := cfg.header()

	pkt := packet.New(cfg.bufferSize)
	pkt.AppendWord(h.Word())
	pkt.AppendWord(cfg.streamID)
	for _, w := range cfg.classID {
		pkt.AppendWord(w)
	}
	if cfg.tsi != 0 {
		pkt.AppendWord(cfg.intTS)
	}
	if cfg.tsf != 0 {
		pkt.AppendWord(uint32(cfg.fracTS >> 32))
		pkt.AppendWord(uint32(cfg.fracTS))
	}
	pkt.AppendWord(uint32(cam))
	pkt.AppendWord(cfg.messageID)
	for _, w := range cfg.controllee {
		pkt.AppendWord(w)
	}
	for _, w := range cfg.controller {
		pkt.AppendWord(w)
	}
	pkt.AppendWord(0) // warning CIF0
	pkt.AppendWord(0) // error CIF0

	if err := pkt.SetTotalLength(uint32(pkt.Len())); err != nil {
		pkt.Release()
		return nil, err
	}

	return &Packet{pkt: pkt}, nil
}

// Parse copies data into a new packet and checks its structure.
//
// The header must describe a command acknowledge packet, every field slot must
// lie inside the buffer and the declared size must match the indicator layout.
// Variable-length fields cannot be sized from the bytes alone; a packet holding
// one parses when the slots in front of it fit, and the caller declares its
// length with SetVariableLength before addressing anything behind it.
//
// Returns:
//   - *Packet: The parsed packet
//   - error: Envelope errors, or the aggregated Validate result
func Parse(data []byte) (*Packet, error) {
	pkt, err := packet.FromBytes(data)
	if err != nil {
		return nil, err
	}

	p := &Packet{pkt: pkt}
	if err := p.validate(false); err != nil {
		p.Release()
		return nil, err
	}

	return p, nil
}

// Bytes returns the wire bytes of the packet. The slice aliases the packet
// buffer and is only valid until the next modifying call.
func (p *Packet) Bytes() []byte {
	return p.pkt.Bytes()
}

// Len returns the packet length in bytes.
func (p *Packet) Len() int {
	return p.pkt.Len()
}

// TotalLength returns the packet length in bytes declared by the header.
func (p *Packet) TotalLength() uint32 {
	return p.pkt.TotalLength()
}

// PayloadStart returns the offset of the warning CIF0 word.
func (p *Packet) PayloadStart() int {
	return p.pkt.PayloadStart()
}

// Header returns the decoded header word.
func (p *Packet) Header() section.Header {
	return p.pkt.Header()
}

// CAM returns the Control/Acknowledge Mode word.
func (p *Packet) CAM() section.CAM {
	return p.pkt.CAM()
}

// StreamID returns the stream identifier.
func (p *Packet) StreamID() uint32 {
	return p.pkt.StreamID()
}

// MessageID returns the message identifier.
func (p *Packet) MessageID() uint32 {
	return p.pkt.MessageID()
}

// SetWarningsGenerated sets the CAM summary bit announcing populated warning
// fields. The indicator layouts are not touched.
func (p *Packet) SetWarningsGenerated(generated bool) {
	p.pkt.SetCAMFlag(section.CAMWarningsGenerated, generated)
}

// SetErrorsGenerated sets the CAM summary bit announcing populated error
// fields. The indicator layouts are not touched.
func (p *Packet) SetErrorsGenerated(generated bool) {
	p.pkt.SetCAMFlag(section.CAMErrorsGenerated, generated)
}

// WarningsGenerated reports the warnings summary bit.
func (p *Packet) WarningsGenerated() bool {
	return p.pkt.CAM().Has(section.CAMWarningsGenerated)
}

// ErrorsGenerated reports the errors summary bit.
func (p *Packet) ErrorsGenerated() bool {
	return p.pkt.CAM().Has(section.CAMErrorsGenerated)
}

// Clone returns a deep copy of the packet, declared variable lengths included.
func (p *Packet) Clone() *Packet {
	return &Packet{pkt: p.pkt.Clone(), varLens: maps.Clone(p.varLens)}
}

// Fingerprint returns the xxHash64 of the packet bytes.
func (p *Packet) Fingerprint() uint64 {
	return hash.Sum(p.pkt.Bytes())
}

// Release returns the packet buffer to the pool. The packet must not be used
// afterwards.
func (p *Packet) Release() {
	p.pkt.Release()
	p.varLens = nil
}
