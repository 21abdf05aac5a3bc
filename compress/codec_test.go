package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vrtack/endian"
	"github.com/arloliu/vrtack/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// ackRun builds n acknowledge-shaped packets back to back: a four-word
// prologue, a warning CIF0 word with two indicators and an empty error CIF0.
func ackRun(n int) []byte {
	engine := endian.GetVRTEngine()

	var out []byte
	for i := range n {
		out = engine.AppendUint32(out, 0x6C000008)
		out = engine.AppendUint32(out, 0x1234)
		out = engine.AppendUint32(out, 0)
		out = engine.AppendUint32(out, uint32(i)) //nolint:gosec
		out = engine.AppendUint32(out, 1<<30|1<<22)
		out = endian.AppendInt32(engine, out, 7)
		out = endian.AppendInt32(engine, out, int32(-i)) //nolint:gosec
		out = engine.AppendUint32(out, 0)
	}

	return out
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, ct.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCompress(t *testing.T) {
	raw := ackRun(64)

	out, stats, err := Compress(format.CompressionS2, raw)
	require.NoError(t, err)
	require.Equal(t, format.CompressionS2, stats.Algorithm)
	require.Equal(t, len(raw), stats.OriginalSize)
	require.Equal(t, len(out), stats.CompressedSize)
	require.Less(t, stats.Ratio(), 1.0)
	require.Positive(t, stats.SpaceSavings())

	_, stats, err = Compress(format.CompressionType(0), raw)
	require.Error(t, err)
	require.Equal(t, len(raw), stats.OriginalSize)
}

func TestStats(t *testing.T) {
	tests := []struct {
		name            string
		stats           Stats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           Stats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 300},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name:            "no compression benefit",
			stats:           Stats{Algorithm: format.CompressionNone, OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "compression overhead",
			stats:           Stats{Algorithm: format.CompressionS2, OriginalSize: 100, CompressedSize: 120},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name:            "zero original size",
			stats:           Stats{Algorithm: format.CompressionLZ4, CompressedSize: 100},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.Ratio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "single_packet", data: ackRun(1)},
		{name: "capture_256", data: ackRun(256)},
		{name: "single_byte", data: []byte{0x42}},
		{name: "repeated_words", data: bytes.Repeat([]byte{0x6C, 0x00, 0x00, 0x08}, 1000)},
		{name: "max_packet_of_zeros", data: make([]byte, 262140)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					t.Logf("Original: %d bytes, Compressed: %d bytes", len(tc.data), len(compressed))

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "text_as_compressed", data: []byte("this is not compressed data")},
		{name: "corrupted_header", data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		if codecName == "NoOp" {
			continue
		}

		t.Run(codecName, func(t *testing.T) {
			for _, input := range invalidInputs {
				_, err := codec.Decompress(input.data)
				require.Error(t, err, input.name)
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	testData := ackRun(32)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(testData)
			require.NoError(t, err)

			done := make(chan error, numGoroutines*2)
			for range numGoroutines {
				go func() {
					_, err := codec.Compress(testData)
					done <- err
				}()
				go func() {
					decompressed, err := codec.Decompress(compressed)
					if err == nil && !bytes.Equal(testData, decompressed) {
						err = fmt.Errorf("decompressed data mismatch")
					}
					done <- err
				}()
			}

			for range numGoroutines * 2 {
				require.NoError(t, <-done)
			}
		})
	}
}

func TestAllCodecs_CaptureRatio(t *testing.T) {
	original := ackRun(1024)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(original)
			require.NoError(t, err)

			if codecName == "NoOp" {
				require.Len(t, compressed, len(original))
			} else {
				require.Less(t, len(compressed), len(original)/2,
					"acknowledge runs repeat most of their words")
			}

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, original, decompressed)
		})
	}
}

func TestLZ4SizePrefix(t *testing.T) {
	codec := NewLZ4Compressor()
	raw := ackRun(16)

	compressed, err := codec.Compress(raw)
	require.NoError(t, err)

	size, n := binary.Uvarint(compressed)
	require.Equal(t, uint64(len(raw)), size)

	t.Run("Prefix disagrees with block", func(t *testing.T) {
		bad := binary.AppendUvarint(nil, size+4)
		bad = append(bad, compressed[n:]...)

		_, err := codec.Decompress(bad)
		require.Error(t, err)
	})

	t.Run("Prefix over the limit", func(t *testing.T) {
		bad := binary.AppendUvarint(nil, maxDecodedSize+1)
		bad = append(bad, compressed[n:]...)

		_, err := codec.Decompress(bad)
		require.ErrorIs(t, err, errLZ4Size)
	})

	t.Run("Prefix only", func(t *testing.T) {
		_, err := codec.Decompress(compressed[:n])
		require.Error(t, err)
	})
}
