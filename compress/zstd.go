package compress

// ZstdCompressor compresses with Zstandard. It gives the smallest captures and
// suits archived acknowledgement logs.
//
// Builds with cgo use github.com/valyala/gozstd; pure Go builds use
// github.com/klauspost/compress/zstd. Both produce standard frames, so either
// build reads captures written by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
