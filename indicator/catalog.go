package indicator

import (
	"fmt"
	"slices"

	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/format"
	"github.com/arloliu/vrtack/internal/collision"
	"github.com/arloliu/vrtack/internal/hash"
	"github.com/arloliu/vrtack/section"
)

// Length sentinels returned by LengthOf.
const (
	VariableLength = -1 // stored length is supplied by the caller
	UnknownLength  = -2 // field is not cataloged
)

// FieldID identifies a cataloged indicator field or CIF7 attribute.
type FieldID uint16

// Descriptor describes where a field lives and what it holds.
type Descriptor struct {
	// ID is the catalog identifier.
	ID FieldID
	// Name is the exported Go name of the field, unique across the catalog.
	Name string
	// CIF is the enable word holding the field's bit.
	CIF CIF
	// Bit is the enable bit position, 31 first on the wire.
	Bit uint8
	// Length is the stored length in bytes, or VariableLength.
	Length int
	// Kind is the value kind of the field in the general packet model.
	Kind format.ValueKind
}

// Mask returns the enable word mask of the field.
func (d Descriptor) Mask() uint32 {
	return 1 << d.Bit
}

// Variable reports whether the stored length must be supplied out of band.
func (d Descriptor) Variable() bool {
	return d.Length == VariableLength
}

// Scalar reports whether the field is a fixed-length scalar, the only fields an
// acknowledge packet reads and writes as a 32-bit word.
func (d Descriptor) Scalar() bool {
	return !d.Variable() && d.Kind.Scalar()
}

// IsAttribute reports whether d is a CIF7 attribute rather than a field.
func (d Descriptor) IsAttribute() bool {
	return d.CIF == CIF7
}

func fixed(name string, cif CIF, bit uint8, kind format.ValueKind) Descriptor {
	return Descriptor{Name: name, CIF: cif, Bit: bit, Length: section.WordSize, Kind: kind}
}

func variable(name string, cif CIF, bit uint8, kind format.ValueKind) Descriptor {
	return Descriptor{Name: name, CIF: cif, Bit: bit, Length: VariableLength, Kind: kind}
}

// positional marks a FieldID that names a data bit by position rather than by
// catalog entry. The low bits hold cif<<5 | bit.
const positional FieldID = 0x8000

// catalog lookup tables, built once in init.
var (
	byBit       [8][32]FieldID // [cif][bit]
	byCIF       [8][]Descriptor
	nameIndex   map[uint64]FieldID
	nameStrings map[string]FieldID // only set when two names share a hash
)

func init() {
	tracker := collision.NewTracker()
	nameIndex = make(map[uint64]FieldID, len(catalog))

	for i := 1; i < len(catalog); i++ {
		d := &catalog[i]
		d.ID = FieldID(i)
		if byBit[d.CIF][d.Bit] != 0 {
			panic(fmt.Sprintf("indicator: %s and %s share %s bit %d",
				catalog[byBit[d.CIF][d.Bit]].Name, d.Name, d.CIF, d.Bit))
		}
		if d.CIF.DataMask()&d.Mask() == 0 {
			panic(fmt.Sprintf("indicator: %s uses control bit %d of %s", d.Name, d.Bit, d.CIF))
		}

		h := hash.ID(d.Name)
		if err := tracker.Track(d.Name, h); err != nil {
			panic(fmt.Sprintf("indicator: %s: %v", d.Name, err))
		}
		nameIndex[h] = d.ID
		byBit[d.CIF][d.Bit] = d.ID
		byCIF[d.CIF] = append(byCIF[d.CIF], *d)
	}

	if tracker.HasCollision() {
		nameStrings = make(map[string]FieldID, tracker.Count())
		for i := 1; i < len(catalog); i++ {
			nameStrings[catalog[i].Name] = FieldID(i)
		}
	}

	for c := range byCIF {
		slices.SortFunc(byCIF[c], func(a, b Descriptor) int {
			return int(b.Bit) - int(a.Bit)
		})
	}
}

// Lookup returns the descriptor of id.
//
// Returns:
//   - Descriptor: The catalog entry
//   - error: ErrUnknownField if id is not cataloged
func Lookup(id FieldID) (Descriptor, error) {
	if id == 0 || int(id) >= len(catalog) {
		return Descriptor{}, fmt.Errorf("%w: id %d", errs.ErrUnknownField, id)
	}

	return catalog[id], nil
}

// Positional returns the FieldID addressing bit of cif. The position of a
// cataloged field yields that field's ID; any other data bit yields an id that
// Resolve describes as a single 32-bit word.
func Positional(cif CIF, bit uint8) FieldID {
	if d, ok := At(cif, bit); ok {
		return d.ID
	}

	if cif > CIF7 || bit > 31 {
		// CIF4 is no enable word, so Resolve rejects the id
		cif, bit = 4, 0
	}

	return positional | FieldID(cif)<<5 | FieldID(bit)
}

// Position returns the enable word and bit of a positional id.
func (id FieldID) Position() (CIF, uint8, bool) {
	if id&positional == 0 {
		return 0, 0, false
	}

	return CIF(id >> 5 & 0x7), uint8(id & 0x1F), true
}

// Resolve returns the descriptor of id. Unlike Lookup it also accepts positional
// ids; an uncataloged data bit is described as one 32-bit word named after its
// position.
//
// Returns:
//   - Descriptor: The catalog entry, or the synthesized positional descriptor
//   - error: ErrUnknownField for uncataloged ids and for positions that are not
//     data bits of a valid CIF word
func Resolve(id FieldID) (Descriptor, error) {
	cif, bit, ok := id.Position()
	if !ok {
		return Lookup(id)
	}
	if !cif.Valid() || cif.DataMask()&(1<<bit) == 0 {
		return Descriptor{}, fmt.Errorf("%w: bit %d of %s is not a data bit", errs.ErrUnknownField, bit, cif)
	}
	if d, ok := At(cif, bit); ok {
		return d, nil
	}

	return Descriptor{
		ID:     id,
		Name:   positionName(cif, bit),
		CIF:    cif,
		Bit:    bit,
		Length: section.WordSize,
		Kind:   format.KindInt32,
	}, nil
}

func positionName(cif CIF, bit uint8) string {
	return fmt.Sprintf("%s bit %d", cif, bit)
}

// At returns the field cataloged at bit of cif, if any.
func At(cif CIF, bit uint8) (Descriptor, bool) {
	if !cif.Valid() || bit > 31 {
		return Descriptor{}, false
	}
	id := byBit[cif][bit]
	if id == 0 {
		return Descriptor{}, false
	}

	return catalog[id], true
}

// FieldsOf returns the fields of cif sorted by descending bit position, which is
// the order they are stored in. The result is empty for an invalid CIF and must
// not be modified.
func FieldsOf(cif CIF) []Descriptor {
	if !cif.Valid() {
		return nil
	}

	return byCIF[cif]
}

// LengthOf returns the stored length of id in bytes: 4 for fixed fields,
// VariableLength (-1) for variable fields and UnknownLength (-2) for ids that
// are not cataloged.
func LengthOf(id FieldID) int {
	d, err := Lookup(id)
	if err != nil {
		return UnknownLength
	}

	return d.Length
}

// ByName returns the descriptor of the field called name.
func ByName(name string) (Descriptor, error) {
	var id FieldID
	if nameStrings != nil {
		id = nameStrings[name]
	} else if candidate, ok := nameIndex[hash.ID(name)]; ok && catalog[candidate].Name == name {
		id = candidate
	}

	if id == 0 {
		return Descriptor{}, fmt.Errorf("%w: %q", errs.ErrUnknownField, name)
	}

	return catalog[id], nil
}

// All returns every cataloged descriptor in wire order: CIF0 through CIF3 fields,
// then the CIF7 attributes.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(catalog)-1)
	for _, c := range Order {
		out = append(out, byCIF[c]...)
	}

	return out
}

// String returns the field name, "CIFn bit b" for positional ids, or
// "FieldID(n)" for ids that are not cataloged.
func (id FieldID) String() string {
	if d, err := Lookup(id); err == nil {
		return d.Name
	}
	if cif, bit, ok := id.Position(); ok {
		return positionName(cif, bit)
	}

	return fmt.Sprintf("FieldID(%d)", uint16(id))
}

// MarshalText encodes the field by name, or by position for positional ids.
func (id FieldID) MarshalText() ([]byte, error) {
	d, err := Resolve(id)
	if err != nil {
		return nil, err
	}

	return []byte(d.Name), nil
}

// UnmarshalText decodes a field name or a "CIFn bit b" position.
func (id *FieldID) UnmarshalText(text []byte) error {
	d, err := ByName(string(text))
	if err == nil {
		*id = d.ID
		return nil
	}

	var cif, bit uint8
	if n, scanErr := fmt.Sscanf(string(text), "CIF%d bit %d", &cif, &bit); scanErr != nil || n != 2 || bit > 31 {
		return err
	}
	if d, err = Resolve(Positional(CIF(cif), bit)); err != nil {
		return err
	}
	*id = d.ID

	return nil
}
