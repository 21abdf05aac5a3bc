package indicator

import (
	"strconv"

	"github.com/arloliu/vrtack/section"
)

// CIF selects one of the indicator enable words.
type CIF uint8

// Enable words of one occurrence, in wire order.
const (
	CIF0 CIF = 0
	CIF1 CIF = 1
	CIF2 CIF = 2
	CIF3 CIF = 3
	CIF7 CIF = 7
)

// Order lists the enable words in the order they appear on the wire.
var Order = [...]CIF{CIF0, CIF1, CIF2, CIF3, CIF7}

// Valid reports whether c names an enable word.
func (c CIF) Valid() bool {
	switch c {
	case CIF0, CIF1, CIF2, CIF3, CIF7:
		return true
	default:
		return false
	}
}

// Index returns the position of c in Order, or -1 for an invalid CIF.
func (c CIF) Index() int {
	switch c {
	case CIF0, CIF1, CIF2, CIF3:
		return int(c)
	case CIF7:
		return 4
	default:
		return -1
	}
}

// PresenceBit returns the CIF0 bit that announces c. CIF0 itself is always
// present and has no presence bit.
func (c CIF) PresenceBit() uint32 {
	switch c {
	case CIF1:
		return section.CIF1Enable
	case CIF2:
		return section.CIF2Enable
	case CIF3:
		return section.CIF3Enable
	case CIF7:
		return section.CIF7Enable
	default:
		return 0
	}
}

// DataMask returns the bits of c that select fields or attributes.
func (c CIF) DataMask() uint32 {
	switch c {
	case CIF0:
		return section.CIF0DataMask
	case CIF1, CIF2, CIF3:
		return section.CIFNDataMask
	case CIF7:
		return section.CIF7DataMask
	default:
		return 0
	}
}

// Parent returns the enable word that must be present before c can be enabled.
// CIF2 hangs off CIF1 and CIF3 off CIF2; the others only need CIF0.
func (c CIF) Parent() CIF {
	switch c {
	case CIF2:
		return CIF1
	case CIF3:
		return CIF2
	default:
		return CIF0
	}
}

func (c CIF) String() string {
	return "CIF" + strconv.Itoa(int(c))
}
