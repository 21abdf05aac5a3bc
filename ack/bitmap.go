package ack

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/indicator"
	"github.com/arloliu/vrtack/section"
)

// currentValueMask is the CIF7 bit of the decorated field's own value. It never
// adds bytes to a slot.
var currentValueMask = mustLookup(indicator.CurrentValue).Mask()

// block holds the enable words of one occurrence, indexed by CIF.Index.
type block struct {
	occ     Occurrence
	start   int
	words   [len(indicator.Order)]uint32
	present [len(indicator.Order)]bool
}

func (b *block) has(cif indicator.CIF) bool {
	i := cif.Index()
	return i >= 0 && b.present[i]
}

func (b *block) word(cif indicator.CIF) uint32 {
	if !b.has(cif) {
		return 0
	}

	return b.words[cif.Index()]
}

// hasField reports whether d's enable bit is set.
func (b *block) hasField(d indicator.Descriptor) bool {
	return b.word(d.CIF)&d.Mask() != 0
}

// wordOffset returns the offset of cif's enable word, or where it would be
// inserted when cif is absent.
func (b *block) wordOffset(cif indicator.CIF) int {
	off := b.start
	for i := range cif.Index() {
		if b.present[i] {
			off += section.WordSize
		}
	}

	return off
}

// dataStart returns the offset of the first field slot.
func (b *block) dataStart() int {
	return b.wordOffset(indicator.CIF7) + b.wordSize(indicator.CIF7)
}

func (b *block) wordSize(cif indicator.CIF) int {
	if b.has(cif) {
		return section.WordSize
	}

	return 0
}

// attributeMask returns the enabled CIF7 attributes that occupy bytes in every slot.
func (b *block) attributeMask() uint32 {
	return b.word(indicator.CIF7) &^ currentValueMask
}

// attributeBytes returns the number of attribute bytes that follow each field value.
func (b *block) attributeBytes() int {
	return bits.OnesCount32(b.attributeMask()) * section.WordSize
}

// attributeOffset returns the distance of attribute a from the end of its field
// value: every enabled attribute with a higher bit comes first.
func (b *block) attributeOffset(a indicator.Descriptor) int {
	higher := b.attributeMask() & (^uint32(0) << (a.Bit + 1))
	return bits.OnesCount32(higher) * section.WordSize
}

// readBlock decodes the enable words of occ starting at off.
func (p *Packet) readBlock(off int, occ Occurrence) (*block, error) {
	b := &block{occ: occ, start: off}

	cif0, err := p.pkt.Word(off)
	if err != nil {
		return nil, fmt.Errorf("%w: %s CIF0 word: %w", errs.ErrLayoutMismatch, occ, err)
	}
	b.words[0], b.present[0] = cif0, true

	off += section.WordSize
	for i, cif := range indicator.Order[1:] {
		if cif0&cif.PresenceBit() == 0 {
			continue
		}
		w, err := p.pkt.Word(off)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s word: %w", errs.ErrLayoutMismatch, occ, cif, err)
		}
		b.words[i+1], b.present[i+1] = w, true
		off += section.WordSize
	}

	return b, nil
}

// block returns the enable words of occ. The error block starts where the
// warning block ends, so reading it walks every warning slot.
func (p *Packet) block(occ Occurrence) (*block, error) {
	if err := occ.check(); err != nil {
		return nil, err
	}

	b, err := p.readBlock(p.pkt.PayloadStart(), Warning)
	if err != nil || occ == Warning {
		return b, err
	}

	end, err := p.walk(b, nil)
	if err != nil {
		return nil, err
	}

	return p.readBlock(end, Error)
}

// EnableWord returns the enable word cif of occ. Absent CIF1, CIF2, CIF3 and
// CIF7 words read as zero.
//
// Returns:
//   - uint32: The enable word
//   - error: ErrInvalidCIFNumber for cif outside {0, 1, 2, 3, 7},
//     ErrInvalidOccurrence, or layout errors of a malformed packet
func (p *Packet) EnableWord(cif indicator.CIF, occ Occurrence) (uint32, error) {
	if !cif.Valid() {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidCIFNumber, uint8(cif))
	}

	b, err := p.block(occ)
	if err != nil {
		return 0, err
	}

	return b.word(cif), nil
}

// HasCIF reports whether the enable word cif of occ is present. CIF0 is always
// present; invalid CIF numbers and malformed packets report false.
func (p *Packet) HasCIF(cif indicator.CIF, occ Occurrence) bool {
	b, err := p.block(occ)
	if err != nil {
		return false
	}

	return b.has(cif)
}

// setEnableBit flips one bit of an enable word that is already present. It never
// resizes the packet; callers pair it with the matching splice.
func (p *Packet) setEnableBit(sel selector, bit uint8, value bool) error {
	cif := sel.cif()
	if !cif.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCIFNumber, uint8(cif))
	}
	if bit > 31 {
		return fmt.Errorf("%w: bit %d of %s", errs.ErrInvalidOperation, bit, sel)
	}

	b, err := p.block(sel.occurrence())
	if err != nil {
		return err
	}
	if !b.has(cif) {
		return fmt.Errorf("%w: %s word is not present", errs.ErrInvalidOperation, sel)
	}

	w := b.word(cif)
	if value {
		w |= 1 << bit
	} else {
		w &^= 1 << bit
	}

	return p.pkt.PutWord(b.wordOffset(cif), w)
}

func mustLookup(id indicator.FieldID) indicator.Descriptor {
	d, err := indicator.Lookup(id)
	if err != nil {
		panic(err)
	}

	return d
}
