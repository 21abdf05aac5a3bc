package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// errLZ4Size reports a block whose size prefix is missing, too large, or does not
// match the decoded block.
var errLZ4Size = errors.New("lz4: invalid decoded size prefix")

// lz4CompressorPool pools lz4.Compressor instances; each carries a hash table
// that is expensive to allocate.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses with the LZ4 block format.
//
// Each output starts with the decoded size as a uvarint, followed by a single LZ4
// block. The block format records no size of its own.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress writes the size prefix and the compressed block with a pooled
// lz4.Compressor.
//
// Returns:
//   - []byte: Size prefix plus block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	prefix := binary.PutUvarint(dst, uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[prefix:])
	if err != nil {
		return nil, err
	}

	return dst[:prefix+n], nil
}

// Decompress reads the size prefix and decodes the block into a buffer of
// exactly that size.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: errLZ4Size for a bad prefix, or block decoding errors
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, prefix := binary.Uvarint(data)
	if prefix <= 0 || size == 0 || size > maxDecodedSize {
		return nil, errLZ4Size
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(data[prefix:], out)
	if err != nil {
		return nil, err
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("%w: decoded %d of %d bytes", errLZ4Size, n, size)
	}

	return out, nil
}
