package ack

import (
	"fmt"

	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/indicator"
)

// Occurrence selects one of the two indicator layouts of an acknowledge packet.
type Occurrence uint8

const (
	// Warning is the first layout in the payload.
	Warning Occurrence = 0
	// Error is the second layout, starting right after the last warning byte.
	Error Occurrence = 1
)

func (o Occurrence) String() string {
	switch o {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Occurrence(%d)", uint8(o))
	}
}

func (o Occurrence) check() error {
	if o != Warning && o != Error {
		return fmt.Errorf("%w: %d", errs.ErrInvalidOccurrence, uint8(o))
	}

	return nil
}

// selector is a CIF number tagged with its occurrence: error-side selectors
// carry errorSelector on top of the CIF number, so CIF0..CIF7 become 8..15.
type selector uint8

const errorSelector selector = 0x8

func selectorOf(cif indicator.CIF, occ Occurrence) selector {
	s := selector(cif)
	if occ == Error {
		s |= errorSelector
	}

	return s
}

func (s selector) cif() indicator.CIF {
	return indicator.CIF(s &^ errorSelector)
}

func (s selector) occurrence() Occurrence {
	if s&errorSelector != 0 {
		return Error
	}

	return Warning
}

func (s selector) String() string {
	return s.occurrence().String() + " " + s.cif().String()
}
