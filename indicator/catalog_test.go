package indicator

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/format"
)

func TestLookup(t *testing.T) {
	d, err := Lookup(OverRangeCount)
	require.NoError(t, err)
	require.Equal(t, OverRangeCount, d.ID)
	require.Equal(t, "OverRangeCount", d.Name)
	require.Equal(t, CIF0, d.CIF)
	require.Equal(t, uint8(22), d.Bit)
	require.Equal(t, 4, d.Length)
	require.Equal(t, format.KindInt32, d.Kind)
	require.Equal(t, uint32(1<<22), d.Mask())

	_, err = Lookup(0)
	require.ErrorIs(t, err, errs.ErrUnknownField)

	_, err = Lookup(FieldID(len(catalog)))
	require.ErrorIs(t, err, errs.ErrUnknownField)
}

func TestFieldsOf(t *testing.T) {
	for _, c := range Order {
		t.Run(c.String(), func(t *testing.T) {
			fields := FieldsOf(c)
			require.NotEmpty(t, fields)

			for i, d := range fields {
				require.Equal(t, c, d.CIF)
				require.NotZero(t, c.DataMask()&d.Mask(), "%s must use a data bit", d.Name)
				if i > 0 {
					require.Greater(t, fields[i-1].Bit, d.Bit, "fields must be sorted by descending bit")
				}
			}
		})
	}

	require.Empty(t, FieldsOf(CIF(4)))
	require.Empty(t, FieldsOf(CIF(9)))
}

func TestFieldsOf_CIF0Order(t *testing.T) {
	fields := FieldsOf(CIF0)

	require.Equal(t, ChangeIndicator, fields[0].ID)
	require.Equal(t, ReferencePointID, fields[1].ID)
	require.Equal(t, ContextAssociationLists, fields[len(fields)-1].ID)
}

func TestLengthOf(t *testing.T) {
	require.Equal(t, 4, LengthOf(Gain))
	require.Equal(t, 4, LengthOf(Mean))
	require.Equal(t, VariableLength, LengthOf(GPSASCII))
	require.Equal(t, VariableLength, LengthOf(IndexList))
	require.Equal(t, UnknownLength, LengthOf(0))
	require.Equal(t, UnknownLength, LengthOf(0xFFFF))
}

func TestAt(t *testing.T) {
	d, ok := At(CIF2, 25)
	require.True(t, ok)
	require.Equal(t, ControlleeID, d.ID)

	d, ok = At(CIF7, 30)
	require.True(t, ok)
	require.Equal(t, Mean, d.ID)
	require.True(t, d.IsAttribute())

	_, ok = At(CIF0, 5) // reserved
	require.False(t, ok)
	_, ok = At(CIF1, 0) // reserved in CIF1-3
	require.False(t, ok)
	_, ok = At(CIF(5), 31)
	require.False(t, ok)
	_, ok = At(CIF0, 32)
	require.False(t, ok)
}

func TestByName(t *testing.T) {
	for _, d := range All() {
		got, err := ByName(d.Name)
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	_, err := ByName("NoSuchField")
	require.ErrorIs(t, err, errs.ErrUnknownField)
	_, err = ByName("")
	require.ErrorIs(t, err, errs.ErrUnknownField)
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, len(catalog)-1)
	require.Equal(t, CIF0, all[0].CIF)
	require.Equal(t, CIF7, all[len(all)-1].CIF)
	require.Equal(t, Belief, all[len(all)-1].ID)
}

func TestKinds(t *testing.T) {
	tests := []struct {
		id   FieldID
		kind format.ValueKind
	}{
		{ChangeIndicator, format.KindBoolNull},
		{ReferencePointID, format.KindInt32},
		{Bandwidth, format.KindInt64},
		{ReferenceLevel, format.KindInt16},
		{FormattedGPS, format.KindGeolocation},
		{ECEFEphemeris, format.KindEphemeris},
		{GPSASCII, format.KindRecord},
		{ControllerUUID, format.KindRecord},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			d, err := Lookup(tt.id)
			require.NoError(t, err)
			require.Equal(t, tt.kind, d.Kind)
		})
	}
}

func TestFieldID_Text(t *testing.T) {
	require.Equal(t, "Gain", Gain.String())
	require.Equal(t, "FieldID(0)", FieldID(0).String())

	text, err := Temperature.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "Temperature", string(text))

	var id FieldID
	require.NoError(t, id.UnmarshalText([]byte("BeamWidth")))
	require.Equal(t, BeamWidth, id)
	require.ErrorIs(t, id.UnmarshalText([]byte("beamwidth")), errs.ErrUnknownField)

	_, err = FieldID(0).MarshalText()
	require.ErrorIs(t, err, errs.ErrUnknownField)
}

func TestFieldID_YAML(t *testing.T) {
	type entry struct {
		Field FieldID `yaml:"field"`
		Value int32   `yaml:"value"`
	}

	out, err := yaml.Marshal(entry{Field: EphemerisReferenceID, Value: -7})
	require.NoError(t, err)
	require.Equal(t, "field: EphemerisReferenceID\nvalue: -7\n", string(out))

	var back entry
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Equal(t, EphemerisReferenceID, back.Field)
	require.Equal(t, int32(-7), back.Value)
}

func TestPositional(t *testing.T) {
	require.Equal(t, ReferencePointID, Positional(CIF0, 30))
	require.Equal(t, Mean, Positional(CIF7, 30))

	id := Positional(CIF0, 5)
	require.NotEqual(t, FieldID(0), id)
	cif, bit, ok := id.Position()
	require.True(t, ok)
	require.Equal(t, CIF0, cif)
	require.Equal(t, uint8(5), bit)
	require.Equal(t, "CIF0 bit 5", id.String())

	_, _, ok = Gain.Position()
	require.False(t, ok, "cataloged ids carry no position")

	d, err := Resolve(id)
	require.NoError(t, err)
	require.Equal(t, id, d.ID)
	require.Equal(t, "CIF0 bit 5", d.Name)
	require.Equal(t, 4, d.Length)
	require.Equal(t, format.KindInt32, d.Kind)
	require.True(t, d.Scalar())
	require.False(t, d.IsAttribute())

	d, err = Resolve(Positional(CIF7, 0))
	require.NoError(t, err)
	require.True(t, d.IsAttribute())

	d, err = Resolve(Gain)
	require.NoError(t, err)
	require.Equal(t, "Gain", d.Name)

	for _, bad := range []FieldID{
		Positional(CIF0, 3), // CIF3 enable
		Positional(CIF2, 0), // reserved
		Positional(CIF(4), 9),
		Positional(CIF(12), 9),
		Positional(CIF0, 40),
		0,
	} {
		_, err := Resolve(bad)
		require.ErrorIs(t, err, errs.ErrUnknownField, bad.String())
	}
}

func TestPositional_Text(t *testing.T) {
	id := Positional(CIF1, 8)

	text, err := id.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "CIF1 bit 8", string(text))

	var back FieldID
	require.NoError(t, back.UnmarshalText(text))
	require.Equal(t, id, back)

	// a position that has a name decodes to the cataloged id
	require.NoError(t, back.UnmarshalText([]byte("CIF0 bit 23")))
	require.Equal(t, Gain, back)

	require.ErrorIs(t, back.UnmarshalText([]byte("CIF1 bit 0")), errs.ErrUnknownField)
	require.ErrorIs(t, back.UnmarshalText([]byte("CIF0 bit 99")), errs.ErrUnknownField)

	_, err = Positional(CIF0, 1).MarshalText()
	require.ErrorIs(t, err, errs.ErrUnknownField)
}
