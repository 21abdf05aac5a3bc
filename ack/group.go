package ack

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/indicator"
	"github.com/arloliu/vrtack/section"
)

// span is a byte range scheduled for removal.
type span struct {
	at, n int
}

// SetCIFPresent enables or disables the CIF1, CIF2, CIF3 or CIF7 enable word of
// occurrence occ.
//
// Enabling inserts a zero word right after the preceding present enable word,
// then sets the presence bit in CIF0. CIF2 requires CIF1 and CIF3 requires CIF2;
// CIF1 and CIF7 only need CIF0. Enabling a present word does nothing.
//
// Disabling first removes the data of every member: the slots of the word's
// fields, or for CIF7 the attribute words of every slot. It then removes the word
// and clears the presence bit. CIF1 cannot be disabled while CIF2 is present, nor
// CIF2 while CIF3 is. Disabling an absent word does nothing.
//
// The whole edit is planned before the first byte moves, so a failed call leaves
// the packet unchanged.
//
// Returns:
//   - error: ErrInvalidOperation for CIF0 or a broken chain, ErrInvalidCIFNumber
//     for other numbers, ErrPacketTooLarge, ErrVariableLengthUnknown
func (p *Packet) SetCIFPresent(cif indicator.CIF, present bool, occ Occurrence) error {
	if cif == indicator.CIF0 {
		return fmt.Errorf("%w: CIF0 is always present", errs.ErrInvalidOperation)
	}
	if !cif.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCIFNumber, uint8(cif))
	}

	b, err := p.block(occ)
	if err != nil {
		return err
	}

	if present {
		return p.enableGroup(b, cif)
	}

	return p.disableGroup(b, cif)
}

func (p *Packet) enableGroup(b *block, cif indicator.CIF) error {
	if b.has(cif) {
		return nil
	}
	if parent := cif.Parent(); !b.has(parent) {
		return fmt.Errorf("%w: %s %s requires %s", errs.ErrInvalidOperation, b.occ, cif, parent)
	}

	// shift first, then announce the new word
	if err := p.pkt.Splice(b.wordOffset(cif), 0, section.WordSize); err != nil {
		return err
	}
	if err := p.setPresence(b, cif, true); err != nil {
		return err
	}

	p.logResize("enabled indicator word", cif, b.occ, section.WordSize)

	return nil
}

func (p *Packet) disableGroup(b *block, cif indicator.CIF) error {
	if !b.has(cif) {
		return nil
	}
	if child := childOf(cif); child != indicator.CIF0 && b.has(child) {
		return fmt.Errorf("%w: %s %s is still required by %s", errs.ErrInvalidOperation, b.occ, cif, child)
	}

	var cuts []span
	_, err := p.walk(b, func(s slot) bool {
		switch {
		case cif == indicator.CIF7 && s.attrs > 0:
			cuts = appendSpan(cuts, span{at: s.offset + s.length, n: s.attrs})
		case s.cif == cif:
			cuts = appendSpan(cuts, span{at: s.offset, n: s.length + s.attrs})
		}

		return true
	})
	if err != nil {
		return err
	}

	removed := 0
	for i := len(cuts) - 1; i >= 0; i-- {
		if err := p.pkt.Splice(cuts[i].at, cuts[i].n, 0); err != nil {
			return err
		}
		removed += cuts[i].n
	}
	if err := p.pkt.Splice(b.wordOffset(cif), section.WordSize, 0); err != nil {
		return err
	}
	if err := p.setPresence(b, cif, false); err != nil {
		return err
	}
	p.forgetVariableLengths(cif, b.occ)

	p.logResize("disabled indicator word", cif, b.occ, -(removed + section.WordSize))

	return nil
}

// EnableAttribute enables CIF7 attribute attr for every field of occurrence occ,
// inserting one zero word after the value of every enabled field. The CIF7 word
// is enabled first when needed. CurrentValue only sets its bit.
//
// Returns:
//   - error: ErrInvalidOperation if attr is not a CIF7 attribute,
//     ErrPacketTooLarge, ErrVariableLengthUnknown
func (p *Packet) EnableAttribute(attr indicator.FieldID, occ Occurrence) error {
	a, err := lookupAttribute(attr)
	if err != nil {
		return err
	}

	b, err := p.block(occ)
	if err != nil {
		return err
	}
	if b.hasField(a) {
		return nil
	}

	perSlot := section.WordSize
	if a.Mask() == currentValueMask {
		perSlot = 0
	}

	slots := 0
	_, err = p.walk(b, func(slot) bool {
		slots++
		return true
	})
	if err != nil {
		return err
	}

	delta := perSlot * slots
	if !b.has(indicator.CIF7) {
		delta += section.WordSize
	}
	if err := p.pkt.CheckGrow(delta); err != nil {
		return err
	}

	if !b.has(indicator.CIF7) {
		if err := p.enableGroup(b, indicator.CIF7); err != nil {
			return err
		}
		if b, err = p.block(occ); err != nil {
			return err
		}
	}

	if perSlot > 0 {
		var inserts []int
		_, err := p.walk(b, func(s slot) bool {
			inserts = append(inserts, s.offset+s.length+b.attributeOffset(a))
			return true
		})
		if err != nil {
			return err
		}
		for i := len(inserts) - 1; i >= 0; i-- {
			if err := p.pkt.Splice(inserts[i], 0, perSlot); err != nil {
				return err
			}
		}
	}

	if err := p.setEnableBit(selectorOf(indicator.CIF7, occ), a.Bit, true); err != nil {
		return err
	}

	p.logResize("enabled attribute "+a.Name, indicator.CIF7, occ, perSlot*slots)

	return nil
}

// DisableAttribute removes CIF7 attribute attr, and its word in every field slot,
// from occurrence occ. The CIF7 word itself stays; use SetCIFPresent to drop it.
//
// Returns:
//   - error: ErrInvalidOperation if attr is not a CIF7 attribute,
//     ErrVariableLengthUnknown
func (p *Packet) DisableAttribute(attr indicator.FieldID, occ Occurrence) error {
	a, err := lookupAttribute(attr)
	if err != nil {
		return err
	}

	b, err := p.block(occ)
	if err != nil {
		return err
	}
	if !b.hasField(a) {
		return nil
	}

	var cuts []int
	if a.Mask() != currentValueMask {
		_, err := p.walk(b, func(s slot) bool {
			cuts = append(cuts, s.offset+s.length+b.attributeOffset(a))
			return true
		})
		if err != nil {
			return err
		}
	}

	for i := len(cuts) - 1; i >= 0; i-- {
		if err := p.pkt.Splice(cuts[i], section.WordSize, 0); err != nil {
			return err
		}
	}
	if err := p.setEnableBit(selectorOf(indicator.CIF7, occ), a.Bit, false); err != nil {
		return err
	}

	p.logResize("disabled attribute "+a.Name, indicator.CIF7, occ, -len(cuts)*section.WordSize)

	return nil
}

// childOf returns the word that hangs off cif in the enable chain, or CIF0 when
// nothing does.
func childOf(cif indicator.CIF) indicator.CIF {
	switch cif {
	case indicator.CIF1:
		return indicator.CIF2
	case indicator.CIF2:
		return indicator.CIF3
	default:
		return indicator.CIF0
	}
}

// appendSpan appends s, merging it into the last span when they touch.
func appendSpan(spans []span, s span) []span {
	if n := len(spans); n > 0 && spans[n-1].at+spans[n-1].n == s.at {
		spans[n-1].n += s.n
		return spans
	}

	return append(spans, s)
}

// setPresence flips the CIF0 bit announcing cif. The CIF0 word sits at the start
// of the block, ahead of every edit, so b.start stays valid while the words after
// it are inserted or removed.
func (p *Packet) setPresence(b *block, cif indicator.CIF, on bool) error {
	w := b.words[0] &^ cif.PresenceBit()
	if on {
		w |= cif.PresenceBit()
	}

	return p.pkt.PutWord(b.start, w)
}

func (p *Packet) logResize(msg string, cif indicator.CIF, occ Occurrence, delta int) {
	log.WithFields(log.Fields{
		"cif":        cif.String(),
		"occurrence": occ.String(),
		"delta":      delta,
		"size":       p.pkt.Len(),
	}).Debug(msg)
}
