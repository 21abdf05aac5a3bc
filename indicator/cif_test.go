package indicator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vrtack/section"
)

func TestCIF_Valid(t *testing.T) {
	for c := CIF(0); c < 10; c++ {
		want := c <= CIF3 || c == CIF7
		require.Equal(t, want, c.Valid(), c.String())
	}
}

func TestCIF_Index(t *testing.T) {
	for i, c := range Order {
		require.Equal(t, i, c.Index())
	}
	require.Equal(t, -1, CIF(4).Index())
}

func TestCIF_PresenceBit(t *testing.T) {
	require.Zero(t, CIF0.PresenceBit())
	require.Equal(t, uint32(section.CIF1Enable), CIF1.PresenceBit())
	require.Equal(t, uint32(section.CIF2Enable), CIF2.PresenceBit())
	require.Equal(t, uint32(section.CIF3Enable), CIF3.PresenceBit())
	require.Equal(t, uint32(section.CIF7Enable), CIF7.PresenceBit())
}

func TestCIF_Parent(t *testing.T) {
	require.Equal(t, CIF0, CIF1.Parent())
	require.Equal(t, CIF1, CIF2.Parent())
	require.Equal(t, CIF2, CIF3.Parent())
	require.Equal(t, CIF0, CIF7.Parent())
}

func TestCIF_DataMask(t *testing.T) {
	require.Equal(t, uint32(0xFFFFFFF0), CIF0.DataMask())
	require.Equal(t, uint32(0xFFFFFFFE), CIF2.DataMask())
	require.Equal(t, uint32(0xFFFFFFFF), CIF7.DataMask())
	require.Zero(t, CIF(6).DataMask())
	require.Equal(t, "CIF7", CIF7.String())
}
