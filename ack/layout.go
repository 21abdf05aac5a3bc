package ack

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/indicator"
	"github.com/arloliu/vrtack/section"
)

// slot is the stored form of one enabled field: its value followed by one word
// per enabled CIF7 attribute.
type slot struct {
	cif    indicator.CIF
	bit    uint8
	offset int // first byte of the value
	length int // value bytes, indicator.VariableLength when undeclared
	attrs  int // attribute bytes after the value
}

func (s slot) end() int {
	return s.offset + s.length + s.attrs
}

// precedes reports whether s is stored before a field at (cif, bit).
func (s slot) precedes(cif indicator.CIF, bit uint8) bool {
	if s.cif != cif {
		return s.cif.Index() < cif.Index()
	}

	return s.bit > bit
}

// walk calls fn for every enabled field slot of b in storage order (CIF0 to CIF3,
// bit 31 first) and returns the offset just past the block. fn may be nil.
//
// Returning false from fn stops the walk; the returned offset is then zero. A slot
// whose variable length is undeclared is still handed to fn, and the walk fails
// with ErrVariableLengthUnknown only when it has to step over it. A slot that
// runs past the end of the buffer fails the walk with ErrLayoutMismatch before
// fn sees it.
func (p *Packet) walk(b *block, fn func(slot) bool) (int, error) {
	off := b.dataStart()
	attrs := b.attributeBytes()
	size := p.pkt.Len()

	for i, cif := range indicator.Order[:cif7Position] {
		if !b.present[i] {
			continue
		}

		for w := b.words[i] & cif.DataMask(); w != 0; {
			bit := uint8(31 - bits.LeadingZeros32(w))
			w &^= 1 << bit

			length, lenErr := p.valueLength(b.occ, cif, bit)
			s := slot{cif: cif, bit: bit, offset: off, length: length, attrs: attrs}
			if lenErr == nil && s.end() > size {
				return 0, fmt.Errorf("%w: %s %s bit %d ends at byte %d of %d",
					errs.ErrLayoutMismatch, b.occ, cif, bit, s.end(), size)
			}
			if fn != nil && !fn(s) {
				return 0, nil
			}
			if lenErr != nil {
				return 0, lenErr
			}
			off = s.end()
		}
	}

	return off, nil
}

// cif7Position is the index of CIF7 in indicator.Order; fields live in the words before it.
const cif7Position = len(indicator.Order) - 1

// valueLength returns the stored length of the value at bit of cif. Uncataloged
// data bits hold a single word.
func (p *Packet) valueLength(occ Occurrence, cif indicator.CIF, bit uint8) (int, error) {
	d, ok := indicator.At(cif, bit)
	if !ok {
		return section.WordSize, nil
	}
	if !d.Variable() {
		return d.Length, nil
	}
	if n, ok := p.varLens[varKey{id: d.ID, occ: occ}]; ok {
		return n, nil
	}

	return indicator.VariableLength, fmt.Errorf("%w: %s %s", errs.ErrVariableLengthUnknown, occ, d.Name)
}

// find returns the slot of the enabled field d.
func (p *Packet) find(b *block, d indicator.Descriptor) (slot, error) {
	if !b.hasField(d) {
		return slot{}, fmt.Errorf("%w: %s %s (%s bit %d)", errs.ErrFieldNotPresent, b.occ, d.Name, d.CIF, d.Bit)
	}

	var found slot
	_, err := p.walk(b, func(s slot) bool {
		if s.cif == d.CIF && s.bit == d.Bit {
			found = s
			return false
		}

		return true
	})

	return found, err
}

// insertionPoint returns the offset a new slot for d would take: the start of the
// first enabled slot stored after it, or the end of the block.
func (p *Packet) insertionPoint(b *block, d indicator.Descriptor) (int, error) {
	at := -1
	end, err := p.walk(b, func(s slot) bool {
		if s.precedes(d.CIF, d.Bit) {
			return true
		}
		at = s.offset

		return false
	})
	if err != nil {
		return 0, err
	}
	if at < 0 {
		at = end
	}

	return at, nil
}

// lookupField returns the descriptor of a CIF0-CIF3 field, cataloged or positional.
func lookupField(id indicator.FieldID) (indicator.Descriptor, error) {
	d, err := indicator.Resolve(id)
	if err != nil {
		return d, err
	}
	if d.IsAttribute() {
		return d, fmt.Errorf("%w: %s is a CIF7 attribute", errs.ErrInvalidOperation, d.Name)
	}

	return d, nil
}

// lookupAttribute returns the descriptor of a CIF7 attribute, cataloged or positional.
func lookupAttribute(id indicator.FieldID) (indicator.Descriptor, error) {
	d, err := indicator.Resolve(id)
	if err != nil {
		return d, err
	}
	if !d.IsAttribute() {
		return d, fmt.Errorf("%w: %s is not a CIF7 attribute", errs.ErrInvalidOperation, d.Name)
	}

	return d, nil
}

// wordField returns the descriptor of a field whose indicator is one 32-bit word:
// every fixed scalar field. Geolocation, ephemeris and record fields fail,
// whatever the enable bits say.
func wordField(id indicator.FieldID) (indicator.Descriptor, error) {
	d, err := lookupField(id)
	if err != nil {
		return d, err
	}
	if err := checkScalar(d); err != nil {
		return d, err
	}

	return d, nil
}

func checkScalar(d indicator.Descriptor) error {
	if d.Scalar() {
		return nil
	}

	return fmt.Errorf("%w: %s is %s", errs.ErrUnsupportedFieldType, d.Name, d.Kind)
}

// OffsetOf returns the byte offset of field id in occurrence occ, counted from
// the start of the packet.
//
// The offset is the end of the occurrence's enable words plus the slots of every
// enabled field stored before id: all fields of lower CIF words, then the fields
// of id's own word with a higher bit.
//
// Returns:
//   - int: Absolute byte offset of the field value
//   - error: ErrUnknownField, ErrFieldNotPresent, ErrVariableLengthUnknown when
//     an undeclared variable-length field precedes id, or ErrInvalidOperation
//     for CIF7 attributes (see AttributeOffsetOf)
func (p *Packet) OffsetOf(id indicator.FieldID, occ Occurrence) (int, error) {
	d, err := lookupField(id)
	if err != nil {
		return 0, err
	}

	b, err := p.block(occ)
	if err != nil {
		return 0, err
	}

	s, err := p.find(b, d)
	if err != nil {
		return 0, err
	}

	return s.offset, nil
}

// AttributeOffsetOf returns the byte offset of attribute attr of field id.
//
// Attributes are anchored to their field: they follow the field value in
// descending bit order. CurrentValue is the field value itself.
//
// Returns:
//   - int: Absolute byte offset of the attribute
//   - error: ErrFieldNotPresent if the field or the attribute is not enabled,
//     ErrInvalidOperation if attr is not a CIF7 attribute or id is one
func (p *Packet) AttributeOffsetOf(id, attr indicator.FieldID, occ Occurrence) (int, error) {
	d, err := lookupField(id)
	if err != nil {
		return 0, err
	}
	a, err := lookupAttribute(attr)
	if err != nil {
		return 0, err
	}

	b, err := p.block(occ)
	if err != nil {
		return 0, err
	}

	return p.attributeOffset(b, d, a)
}

func (p *Packet) attributeOffset(b *block, d, a indicator.Descriptor) (int, error) {
	s, err := p.find(b, d)
	if err != nil {
		return 0, err
	}
	if !b.hasField(a) {
		return 0, fmt.Errorf("%w: %s attribute %s of %s", errs.ErrFieldNotPresent, b.occ, a.Name, d.Name)
	}
	if a.Mask() == currentValueMask {
		return s.offset, nil
	}
	if s.length < 0 {
		return 0, fmt.Errorf("%w: %s %s", errs.ErrVariableLengthUnknown, b.occ, d.Name)
	}

	return s.offset + s.length + b.attributeOffset(a), nil
}

// LengthOf returns the stored length of id in bytes: 4 for fixed fields and
// attributes, -1 for variable-length fields, -2 for unknown ids. Callers must
// branch on the sign.
func (p *Packet) LengthOf(id indicator.FieldID) int {
	return indicator.LengthOf(id)
}

// SetVariableLength declares the stored length of the enabled variable-length
// field id. The packet bytes are not changed; the declaration only lets offsets
// past the field be computed.
//
// The layout that results must fit the packet: every slot inside the buffer and,
// once nothing is left unmeasurable, both layouts ending exactly at the declared
// packet size. A length that breaks this is rejected and the previous
// declaration, if any, is kept.
//
// Returns:
//   - error: ErrFieldNotPresent, ErrInvalidOperation if id has a fixed length
//     or n is not a non-negative multiple of 4, ErrLayoutMismatch if the
//     resulting layout does not fit the packet
func (p *Packet) SetVariableLength(id indicator.FieldID, occ Occurrence, n int) error {
	d, err := lookupField(id)
	if err != nil {
		return err
	}
	if !d.Variable() {
		return fmt.Errorf("%w: %s has a fixed length", errs.ErrInvalidOperation, d.Name)
	}
	if n < 0 || n%section.WordSize != 0 {
		return fmt.Errorf("%w: length %d of %s is not a whole number of words", errs.ErrInvalidOperation, n, d.Name)
	}

	b, err := p.block(occ)
	if err != nil {
		return err
	}
	if !b.hasField(d) {
		return fmt.Errorf("%w: %s %s", errs.ErrFieldNotPresent, occ, d.Name)
	}

	if p.varLens == nil {
		p.varLens = make(map[varKey]int)
	}
	key := varKey{id: d.ID, occ: occ}
	prev, declared := p.varLens[key]
	p.varLens[key] = n

	if err := p.validate(false); err != nil {
		if declared {
			p.varLens[key] = prev
		} else {
			delete(p.varLens, key)
		}

		return fmt.Errorf("%w: %s %s of %d bytes does not fit the packet: %w",
			errs.ErrLayoutMismatch, occ, d.Name, n, err)
	}

	return nil
}

// forgetVariableLengths drops the declarations of the fields of cif in occ.
func (p *Packet) forgetVariableLengths(cif indicator.CIF, occ Occurrence) {
	for _, d := range indicator.FieldsOf(cif) {
		if d.Variable() {
			delete(p.varLens, varKey{id: d.ID, occ: occ})
		}
	}
}
