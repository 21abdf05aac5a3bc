package ack

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/arloliu/vrtack/endian"
	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/indicator"
	"github.com/arloliu/vrtack/section"
)

// Int32Accessor is the value capability of acknowledge packets: every warning and
// error indicator is a single 32-bit integer word, whatever the field's kind in
// the general packet model. Geolocation, ephemeris and record fields exist in the
// catalog but cannot be read or written through it.
type Int32Accessor interface {
	Int32(occ Occurrence, id indicator.FieldID) (int32, error)
	SetInt32(occ Occurrence, id indicator.FieldID, v int32) error
}

var _ Int32Accessor = (*Packet)(nil)

// Indicator is one populated warning or error value. Attribute is zero for the
// field's own value. Data bits the catalog does not describe are reported with
// positional ids (see indicator.Positional).
type Indicator struct {
	Field     indicator.FieldID `yaml:"field" json:"field"`
	Attribute indicator.FieldID `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Value     int32             `yaml:"value" json:"value"`
}

// Int32 reads field id of occurrence occ.
//
// Returns:
//   - int32: The stored value
//   - error: ErrUnsupportedFieldType for geolocation, ephemeris and record
//     fields, ErrFieldNotPresent if the field's enable bit is clear,
//     ErrLayoutMismatch if the field lies outside a malformed buffer
func (p *Packet) Int32(occ Occurrence, id indicator.FieldID) (int32, error) {
	d, err := wordField(id)
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

	return p.readInt32(s.offset), nil
}

// SetInt32 writes field id of occurrence occ.
//
// An absent field is added: its CIF word is enabled when needed (the enable chain
// must already reach it), then a zeroed slot with room for the enabled
// attributes is inserted in storage order and the enable bit is set.
//
// Returns:
//   - error: ErrUnsupportedFieldType, ErrInvalidOperation for a broken enable
//     chain, ErrPacketTooLarge
func (p *Packet) SetInt32(occ Occurrence, id indicator.FieldID, v int32) error {
	d, err := wordField(id)
	if err != nil {
		return err
	}

	b, err := p.block(occ)
	if err != nil {
		return err
	}

	if b.hasField(d) {
		s, err := p.find(b, d)
		if err != nil {
			return err
		}
		p.writeInt32(s.offset, v)

		return nil
	}

	return p.insertField(b, d, v)
}

func (p *Packet) insertField(b *block, d indicator.Descriptor, v int32) error {
	groupMissing := !b.has(d.CIF)
	if groupMissing {
		if parent := d.CIF.Parent(); !b.has(parent) {
			return fmt.Errorf("%w: %s %s requires %s %s", errs.ErrInvalidOperation, b.occ, d.Name, d.CIF, parent)
		}
	}

	size := d.Length + b.attributeBytes()
	grow := size
	if groupMissing {
		grow += section.WordSize
	}
	if err := p.pkt.CheckGrow(grow); err != nil {
		return err
	}

	at, err := p.insertionPoint(b, d)
	if err != nil {
		return err
	}

	if groupMissing {
		if err := p.enableGroup(b, d.CIF); err != nil {
			return err
		}
		// the new enable word sits in front of every slot
		at += section.WordSize
	}

	if err := p.pkt.Splice(at, 0, size); err != nil {
		return err
	}
	if err := p.setEnableBit(selectorOf(d.CIF, b.occ), d.Bit, true); err != nil {
		return err
	}
	p.writeInt32(at, v)

	p.logResize("added "+d.Name, d.CIF, b.occ, size)

	return nil
}

// clearField removes the slot of field id from occurrence occ. Absent fields are
// left alone.
func (p *Packet) clearField(occ Occurrence, id indicator.FieldID) error {
	d, err := wordField(id)
	if err != nil {
		return err
	}

	b, err := p.block(occ)
	if err != nil {
		return err
	}
	if !b.hasField(d) {
		return nil
	}

	s, err := p.find(b, d)
	if err != nil {
		return err
	}

	// data goes first, the bit follows
	if err := p.pkt.Splice(s.offset, s.length+s.attrs, 0); err != nil {
		return err
	}
	if err := p.setEnableBit(selectorOf(d.CIF, occ), d.Bit, false); err != nil {
		return err
	}

	p.logResize("removed "+d.Name, d.CIF, occ, -(s.length + s.attrs))

	return nil
}

// GetWarning reads warning field id.
func (p *Packet) GetWarning(id indicator.FieldID) (int32, error) {
	return p.Int32(Warning, id)
}

// SetWarning writes warning field id, adding it when absent.
func (p *Packet) SetWarning(id indicator.FieldID, v int32) error {
	return p.SetInt32(Warning, id, v)
}

// ClearWarning removes warning field id. Clearing an absent field is a no-op.
func (p *Packet) ClearWarning(id indicator.FieldID) error {
	return p.clearField(Warning, id)
}

// GetError reads error field id.
func (p *Packet) GetError(id indicator.FieldID) (int32, error) {
	return p.Int32(Error, id)
}

// SetError writes error field id, adding it when absent.
func (p *Packet) SetError(id indicator.FieldID, v int32) error {
	return p.SetInt32(Error, id, v)
}

// ClearError removes error field id. Clearing an absent field is a no-op.
func (p *Packet) ClearError(id indicator.FieldID) error {
	return p.clearField(Error, id)
}

// Attribute reads CIF7 attribute attr of field id in occurrence occ.
func (p *Packet) Attribute(occ Occurrence, id, attr indicator.FieldID) (int32, error) {
	d, err := wordField(id)
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

	off, err := p.attributeOffset(b, d, a)
	if err != nil {
		return 0, err
	}

	return p.readInt32(off), nil
}

// SetAttribute writes CIF7 attribute attr of field id in occurrence occ. The
// field must be present; the attribute is enabled for the whole occurrence when
// it is not already.
func (p *Packet) SetAttribute(occ Occurrence, id, attr indicator.FieldID, v int32) error {
	d, err := wordField(id)
	if err != nil {
		return err
	}
	a, err := lookupAttribute(attr)
	if err != nil {
		return err
	}

	b, err := p.block(occ)
	if err != nil {
		return err
	}
	if !b.hasField(d) {
		return fmt.Errorf("%w: %s %s", errs.ErrFieldNotPresent, occ, d.Name)
	}

	if !b.hasField(a) {
		if err := p.EnableAttribute(attr, occ); err != nil {
			return err
		}
		if b, err = p.block(occ); err != nil {
			return err
		}
	}

	off, err := p.attributeOffset(b, d, a)
	if err != nil {
		return err
	}
	p.writeInt32(off, v)

	return nil
}

// GetWarningAttribute reads attribute attr of warning field id.
func (p *Packet) GetWarningAttribute(id, attr indicator.FieldID) (int32, error) {
	return p.Attribute(Warning, id, attr)
}

// SetWarningAttribute writes attribute attr of warning field id.
func (p *Packet) SetWarningAttribute(id, attr indicator.FieldID, v int32) error {
	return p.SetAttribute(Warning, id, attr, v)
}

// GetErrorAttribute reads attribute attr of error field id.
func (p *Packet) GetErrorAttribute(id, attr indicator.FieldID) (int32, error) {
	return p.Attribute(Error, id, attr)
}

// SetErrorAttribute writes attribute attr of error field id.
func (p *Packet) SetErrorAttribute(id, attr indicator.FieldID, v int32) error {
	return p.SetAttribute(Error, id, attr, v)
}

// All returns an iterator over the populated indicators of occurrence occ in
// storage order: CIF0 to CIF3, bit 31 first, each field followed by its enabled
// attributes. The order depends only on the enable words, never on the order the
// fields were set in.
//
// Uncataloged data bits and attributes are reported under their positional ids.
// A populated geolocation, ephemeris or record field ends the iteration with
// ErrUnsupportedFieldType.
func (p *Packet) All(occ Occurrence) iter.Seq2[Indicator, error] {
	return func(yield func(Indicator, error) bool) {
		b, err := p.block(occ)
		if err != nil {
			yield(Indicator{}, err)
			return
		}

		attrMask := b.attributeMask()
		stopped := false
		var kindErr error

		_, err = p.walk(b, func(s slot) bool {
			d, resolveErr := indicator.Resolve(indicator.Positional(s.cif, s.bit))
			if resolveErr == nil {
				resolveErr = checkScalar(d)
			}
			if resolveErr != nil {
				kindErr = fmt.Errorf("%s: %w", occ, resolveErr)
				return false
			}

			if !yield(Indicator{Field: d.ID, Value: p.readInt32(s.offset)}, nil) {
				stopped = true
				return false
			}

			off := s.offset + s.length
			for w := attrMask; w != 0; {
				bit := uint8(31 - bits.LeadingZeros32(w))
				w &^= 1 << bit

				attr := indicator.Positional(indicator.CIF7, bit)
				if !yield(Indicator{Field: d.ID, Attribute: attr, Value: p.readInt32(off)}, nil) {
					stopped = true
					return false
				}
				off += section.WordSize
			}

			return true
		})

		switch {
		case stopped:
		case kindErr != nil:
			yield(Indicator{}, kindErr)
		case err != nil:
			yield(Indicator{}, err)
		}
	}
}

// GetWarnings returns every populated warning indicator in storage order.
func (p *Packet) GetWarnings() ([]Indicator, error) {
	return p.collect(Warning)
}

// GetErrors returns every populated error indicator in storage order.
func (p *Packet) GetErrors() ([]Indicator, error) {
	return p.collect(Error)
}

func (p *Packet) collect(occ Occurrence) ([]Indicator, error) {
	var out []Indicator
	for ind, err := range p.All(occ) {
		if err != nil {
			return nil, err
		}
		out = append(out, ind)
	}

	return out, nil
}

func (p *Packet) readInt32(off int) int32 {
	return endian.Int32(p.pkt.Engine(), p.pkt.Bytes()[off:])
}

func (p *Packet) writeInt32(off int, v int32) {
	endian.PutInt32(p.pkt.Engine(), p.pkt.Bytes()[off:], v)
}
