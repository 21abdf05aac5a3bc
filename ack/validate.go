package ack

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/indicator"
)

// Validate checks the packet structure and reports every problem found:
//   - the header must describe an acknowledge packet
//   - reserved enable-word bits must be clear
//   - every field slot must lie inside the buffer
//   - every present variable-length field must have a declared length
//   - the declared packet size must equal the prologue plus both layouts
//
// Data bits the catalog does not describe are not errors; each holds one word
// and is addressed by its positional id.
//
// Returns:
//   - error: nil, or a *multierror.Error wrapping one sentinel per problem
func (p *Packet) Validate() error {
	return p.validate(true)
}

// validate runs the checks of Validate. With strict unset, undeclared variable
// lengths are tolerated: slots up to the first unmeasurable field are still
// bounds-checked, and the checks behind it are skipped.
func (p *Packet) validate(strict bool) error {
	var result *multierror.Error

	if err := p.pkt.Header().Validate(); err != nil {
		return multierror.Append(result, err)
	}

	end := p.pkt.PayloadStart()
	for _, occ := range []Occurrence{Warning, Error} {
		b, err := p.readBlock(end, occ)
		if err != nil {
			return multierror.Append(result, err)
		}

		result = multierror.Append(result, reservedBits(b)...)

		end, err = p.walk(b, nil)
		if err != nil {
			if !strict && errors.Is(err, errs.ErrVariableLengthUnknown) {
				return result.ErrorOrNil()
			}

			return multierror.Append(result, err)
		}
	}

	if declared := int(p.pkt.TotalLength()); declared != end {
		result = multierror.Append(result, fmt.Errorf("%w: header declares %d bytes, layout needs %d",
			errs.ErrLayoutMismatch, declared, end))
	}

	return result.ErrorOrNil()
}

// reservedBits reports the reserved bits set in the enable words of b.
func reservedBits(b *block) []error {
	var out []error

	for i, cif := range indicator.Order {
		if !b.present[i] || cif == indicator.CIF0 {
			continue
		}

		if reserved := b.words[i] &^ cif.DataMask(); reserved != 0 {
			out = append(out, fmt.Errorf("%w: %s %s bit 0", errs.ErrReservedBitSet, b.occ, cif))
		}
	}

	return out
}
