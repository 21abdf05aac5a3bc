package packet

import (
	"fmt"

	"github.com/arloliu/vrtack/endian"
	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/internal/pool"
	"github.com/arloliu/vrtack/section"
)

// Packet is a VRT command acknowledge packet held in a pooled, resizable buffer.
//
// Packet knows the prologue (header, stream ID, class ID, timestamps, CAM,
// message ID and identifiers) and keeps the header size field in step with the
// buffer. It does not know what the payload means.
//
// A Packet is not safe for concurrent use.
type Packet struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// New creates an empty packet whose buffer has room for capacity bytes.
// The caller writes the prologue with AppendWord and then calls SetTotalLength.
func New(capacity int) *Packet {
	buf := pool.GetPacketBuffer()
	buf.Grow(capacity)

	return &Packet{buf: buf, engine: endian.GetVRTEngine()}
}

// FromBytes copies data into a new packet.
//
// The header must describe an acknowledge packet and data must hold at least the
// declared number of words. Bytes past the declared size are ignored.
//
// Returns:
//   - *Packet: The parsed packet
//   - error: ErrBufferTooShort, ErrNotAcknowledge or ErrInvalidHeader
func FromBytes(data []byte) (*Packet, error) {
	if len(data) < section.MinPrologueSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrBufferTooShort, len(data))
	}

	engine := endian.GetVRTEngine()
	header := section.ParseHeader(engine.Uint32(data))
	if err := header.Validate(); err != nil {
		return nil, err
	}

	size := int(header.Size) * section.WordSize
	if len(data) < size {
		return nil, fmt.Errorf("%w: header declares %d bytes, got %d", errs.ErrBufferTooShort, size, len(data))
	}

	camOff := header.CAMWordIndex() * section.WordSize
	cam := section.CAM(engine.Uint32(data[camOff:]))
	if prologue := section.PrologueWords(header, cam) * section.WordSize; prologue > size {
		return nil, fmt.Errorf("%w: prologue needs %d bytes, packet has %d", errs.ErrInvalidHeader, prologue, size)
	}

	p := New(size)
	_, _ = p.buf.Write(data[:size])

	return p, nil
}

// Bytes returns the packet bytes. The slice is only valid until the next resize.
func (p *Packet) Bytes() []byte {
	return p.buf.Bytes()
}

// Len returns the buffer length in bytes.
func (p *Packet) Len() int {
	return p.buf.Len()
}

// Engine returns the byte order used for every word of the packet.
func (p *Packet) Engine() endian.EndianEngine {
	return p.engine
}

// AppendWord appends one big-endian word to the buffer without touching the header.
func (p *Packet) AppendWord(w uint32) {
	p.buf.B = p.engine.AppendUint32(p.buf.B, w)
}

// Word reads the word at byte offset off.
func (p *Packet) Word(off int) (uint32, error) {
	if off < 0 || off+section.WordSize > p.buf.Len() {
		return 0, fmt.Errorf("%w: word at %d in %d bytes", errs.ErrOffsetOutOfRange, off, p.buf.Len())
	}

	return p.engine.Uint32(p.buf.B[off:]), nil
}

// PutWord writes the word at byte offset off.
func (p *Packet) PutWord(off int, w uint32) error {
	if off < 0 || off+section.WordSize > p.buf.Len() {
		return fmt.Errorf("%w: word at %d in %d bytes", errs.ErrOffsetOutOfRange, off, p.buf.Len())
	}
	p.engine.PutUint32(p.buf.B[off:], w)

	return nil
}

// Header returns the decoded header word.
func (p *Packet) Header() section.Header {
	return section.ParseHeader(p.engine.Uint32(p.buf.B))
}

// SetHeader writes h as the header word. The size field is overwritten by h.Size,
// so callers normally go through SetTotalLength instead.
func (p *Packet) SetHeader(h section.Header) {
	p.engine.PutUint32(p.buf.B, h.Word())
}

// StreamID returns the stream identifier word.
func (p *Packet) StreamID() uint32 {
	return p.engine.Uint32(p.buf.B[section.HeaderWords*section.WordSize:])
}

// CAM returns the Control/Acknowledge Mode word.
func (p *Packet) CAM() section.CAM {
	return section.CAM(p.engine.Uint32(p.buf.B[p.camOffset():]))
}

// SetCAM writes the Control/Acknowledge Mode word.
//
// Changing the identifier flags would move the payload, so the controllee and
// controller bits of cam must match the current word.
func (p *Packet) SetCAM(cam section.CAM) error {
	if (p.CAM()^cam)&section.CAMIdentifierMask != 0 {
		return fmt.Errorf("%w: identifier flags of the CAM word are fixed once the packet is built",
			errs.ErrInvalidOperation)
	}
	p.putCAM(cam)

	return nil
}

// SetCAMFlag sets or clears flag in the CAM word. Identifier flags are masked
// out of flag, so the prologue layout never changes.
func (p *Packet) SetCAMFlag(flag section.CAM, on bool) {
	p.putCAM(p.CAM().Set(flag&^section.CAMIdentifierMask, on))
}

func (p *Packet) putCAM(cam section.CAM) {
	p.engine.PutUint32(p.buf.B[p.camOffset():], uint32(cam))
}

// MessageID returns the message identifier word.
func (p *Packet) MessageID() uint32 {
	return p.engine.Uint32(p.buf.B[p.camOffset()+section.CAMWords*section.WordSize:])
}

func (p *Packet) camOffset() int {
	return p.Header().CAMWordIndex() * section.WordSize
}

// PayloadStart returns the byte offset of the first payload word.
func (p *Packet) PayloadStart() int {
	return section.PrologueWords(p.Header(), p.CAM()) * section.WordSize
}

// TotalLength returns the packet length in bytes declared by the header.
func (p *Packet) TotalLength() uint32 {
	return uint32(p.Header().Size) * section.WordSize
}

// SetTotalLength writes n, a byte count, into the header size field.
//
// Returns:
//   - error: ErrPacketTooLarge if n exceeds MaxPacketBytes,
//     ErrInvalidOperation if n is not a whole number of words
func (p *Packet) SetTotalLength(n uint32) error {
	if n > section.MaxPacketBytes {
		return fmt.Errorf("%w: %d bytes", errs.ErrPacketTooLarge, n)
	}
	if n%section.WordSize != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrInvalidOperation, n, section.WordSize)
	}

	h := p.Header()
	h.Size = uint16(n / section.WordSize)
	p.SetHeader(h)

	return nil
}

// CheckGrow reports whether the packet can grow by delta bytes without exceeding
// the largest representable size.
func (p *Packet) CheckGrow(delta int) error {
	if n := p.buf.Len() + delta; n > section.MaxPacketBytes {
		return fmt.Errorf("%w: %d bytes would exceed %d", errs.ErrPacketTooLarge, n, section.MaxPacketBytes)
	}

	return nil
}

// Resize sets the buffer length to newLen and updates the header size field.
// Bytes before the edit point are preserved, bytes added at the end are zero.
func (p *Packet) Resize(newLen int) error {
	if newLen < section.MinPrologueSize {
		return fmt.Errorf("%w: %d bytes is smaller than the prologue", errs.ErrOffsetOutOfRange, newLen)
	}
	if err := p.CheckGrow(newLen - p.buf.Len()); err != nil {
		return err
	}
	if newLen%section.WordSize != 0 {
		return fmt.Errorf("%w: length %d is not a multiple of %d", errs.ErrInvalidOperation, newLen, section.WordSize)
	}

	if err := p.buf.Resize(newLen); err != nil {
		return err
	}

	return p.SetTotalLength(uint32(newLen)) //nolint:gosec
}

// Splice removes remove bytes at payload offset at and inserts insert zero bytes
// in their place, then updates the header size field.
//
// Every byte outside the edited range keeps its content and relative order.
// Edits must stay inside the payload and keep the packet word aligned. All
// checks run before the buffer changes, so a failed splice leaves the packet
// untouched.
//
// Parameters:
//   - at: Byte offset of the edit point, at or after PayloadStart
//   - remove: Number of bytes to delete, a multiple of 4
//   - insert: Number of zero bytes to insert, a multiple of 4
//
// Returns:
//   - error: ErrOffsetOutOfRange, ErrInvalidOperation or ErrPacketTooLarge
func (p *Packet) Splice(at, remove, insert int) error {
	if at < p.PayloadStart() {
		return fmt.Errorf("%w: splice at %d inside the prologue", errs.ErrOffsetOutOfRange, at)
	}
	if remove%section.WordSize != 0 || insert%section.WordSize != 0 || at%section.WordSize != 0 {
		return fmt.Errorf("%w: splice at %d remove %d insert %d is not word aligned",
			errs.ErrInvalidOperation, at, remove, insert)
	}
	if err := p.CheckGrow(insert - remove); err != nil {
		return err
	}

	if err := p.buf.Splice(at, remove, insert); err != nil {
		return err
	}

	return p.SetTotalLength(uint32(p.buf.Len())) //nolint:gosec
}

// Clone returns a deep copy of the packet in its own buffer.
func (p *Packet) Clone() *Packet {
	c := New(p.buf.Len())
	_, _ = c.buf.Write(p.buf.B)

	return c
}

// Release returns the buffer to the pool. The packet must not be used afterwards.
func (p *Packet) Release() {
	if p.buf == nil {
		return
	}
	pool.PutPacketBuffer(p.buf)
	p.buf = nil
}
