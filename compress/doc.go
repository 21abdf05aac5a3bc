// Package compress provides the codecs used for capture bodies.
//
// A capture stores a run of acknowledge packets back to back. The VRT words
// repeat heavily (prologue words, zero enable words, small indicator values),
// so a general-purpose codec shrinks the body well.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the body is stored as is
//   - Zstd (format.CompressionZstd): best ratio, for archived captures
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd uses github.com/valyala/gozstd when cgo is available and
// github.com/klauspost/compress/zstd otherwise.
//
// # Basic Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	body, err := codec.Compress(raw)
//
// or, when the sizes are wanted:
//
//	body, stats, err := compress.Compress(format.CompressionZstd, raw)
//	fmt.Printf("saved %.1f%%\n", stats.SpaceSavings())
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders, and
// are safe for concurrent use.
package compress
