package compress

import (
	"fmt"

	"github.com/arloliu/vrtack/format"
)

// maxDecodedSize bounds the output of codecs that cannot read the decoded size
// from their own framing. A capture of 256 maximum-size packets fits.
const maxDecodedSize = 64 * 1024 * 1024

// Compressor compresses a capture body.
//
// Memory management:
//   - Returned slice is owned by the caller, except for the no-op codec which
//     returns its input
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses data and returns the compressed result. Empty input
	// may compress to nil.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a body produced by the matching Compressor.
//
// Implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data. Corrupted input or input produced by a
	// different algorithm returns an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression run.
type Stats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the size of the input before compression.
	OriginalSize int
	// CompressedSize is the size of the output.
	CompressedSize int
}

// Ratio returns CompressedSize / OriginalSize, or 0 when nothing was compressed.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
//
// Returns:
//   - Codec: Shared codec instance, safe for concurrent use
//   - error: Unsupported compression type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Compress compresses data with the built-in codec for compressionType and
// reports the sizes.
func Compress(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	stats := Stats{Algorithm: compressionType, OriginalSize: len(data)}

	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, stats, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, stats, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}
	stats.CompressedSize = len(out)

	return out, stats, nil
}
