package section

import (
	"testing"

	"github.com/arloliu/vrtack/errs"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	// command, class id, ack, TSI=1, TSF=2, count=5, size=12
	h := ParseHeader(0x6C65000C)

	require.Equal(t, PacketTypeCommand, h.Type)
	require.True(t, h.ClassID)
	require.True(t, h.Ack)
	require.False(t, h.Reserved)
	require.False(t, h.Cancel)
	require.Equal(t, uint8(1), h.TSI)
	require.Equal(t, uint8(2), h.TSF)
	require.Equal(t, uint8(5), h.Count)
	require.Equal(t, uint16(12), h.Size)
	require.True(t, h.IsAcknowledge())
}

func TestHeader_WordRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		word uint32
	}{
		{"bare ack", 0x64000004},
		{"class id and timestamps", 0x6CF00009},
		{"cancel and reserved", 0x67000010},
		{"extension command", 0x7400FFFF},
		{"packet count", 0x640F0004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.word, ParseHeader(tt.word).Word())
		})
	}
}

func TestHeader_Validate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		h := Header{Type: PacketTypeCommand, Ack: true, Size: 6}
		require.NoError(t, h.Validate())
	})

	t.Run("Command without ack bit", func(t *testing.T) {
		h := Header{Type: PacketTypeCommand, Size: 6}
		require.ErrorIs(t, h.Validate(), errs.ErrNotAcknowledge)
	})

	t.Run("Context packet", func(t *testing.T) {
		h := Header{Type: 0x4, Ack: true, Size: 6}
		require.ErrorIs(t, h.Validate(), errs.ErrNotAcknowledge)
	})

	t.Run("Reserved bit", func(t *testing.T) {
		h := Header{Type: PacketTypeCommand, Ack: true, Reserved: true, Size: 6}
		require.ErrorIs(t, h.Validate(), errs.ErrInvalidHeader)
	})

	t.Run("Smaller than prologue", func(t *testing.T) {
		h := Header{Type: PacketTypeCommand, Ack: true, ClassID: true, Size: 5}
		require.ErrorIs(t, h.Validate(), errs.ErrInvalidHeader)
	})
}

func TestPrologueWords(t *testing.T) {
	tests := []struct {
		name   string
		header Header
		cam    CAM
		want   int
	}{
		{"minimal", Header{}, 0, 4},
		{"class id", Header{ClassID: true}, 0, 6},
		{"timestamps", Header{TSI: 1, TSF: 3}, 0, 7},
		{"short controllee", Header{}, CAMControlleeEnable, 5},
		{"uuid controller", Header{}, CAMControllerEnable | CAMControllerUUID, 8},
		{"uuid flag without enable", Header{}, CAMControlleeUUID, 4},
		{"everything", Header{ClassID: true, TSI: 2, TSF: 1}, CAMControlleeEnable | CAMControlleeUUID | CAMControllerEnable, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PrologueWords(tt.header, tt.cam))
		})
	}
}
