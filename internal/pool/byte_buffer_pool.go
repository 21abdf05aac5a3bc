package pool

import (
	"fmt"
	"io"
	"sync"

	"github.com/arloliu/vrtack/errs"
)

// Buffer sizes for the default pools.
const (
	PacketBufferDefaultSize    = 256              // prologue + a handful of indicator words
	PacketBufferMaxThreshold   = 1024 * 64        // 64KiB
	CaptureBufferDefaultSize   = 1024 * 64        // 64KiB
	CaptureBufferMaxThreshold  = 1024 * 1024 * 8  // 8MiB
	smallBufferGrowthThreshold = 4 * PacketBufferDefaultSize
)

// ByteBuffer is a growable byte slice with an in-place splice primitive.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new empty ByteBuffer with the given capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers, grow by PacketBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := PacketBufferDefaultSize
	if cap(bb.B) > smallBufferGrowthThreshold {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Resize sets the buffer length to n. Bytes before min(n, Len()) are preserved;
// bytes added past the old length are zeroed.
func (bb *ByteBuffer) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", errs.ErrOffsetOutOfRange, n)
	}

	cur := len(bb.B)
	if n <= cur {
		bb.B = bb.B[:n]
		return nil
	}

	bb.Grow(n - cur)
	bb.B = bb.B[:n]
	clear(bb.B[cur:n])

	return nil
}

// Splice replaces the remove bytes starting at at with insert zero bytes.
//
// Every byte before at keeps its position, every byte after at+remove keeps its
// content and relative order and moves by insert-remove. The bounds are checked
// before anything changes, so a failed splice leaves the buffer untouched.
//
// Parameters:
//   - at: Byte offset of the edit point (0 <= at <= Len())
//   - remove: Number of bytes to delete at the edit point
//   - insert: Number of zero bytes to insert at the edit point
//
// Returns:
//   - error: ErrOffsetOutOfRange if the range falls outside the buffer
func (bb *ByteBuffer) Splice(at, remove, insert int) error {
	n := len(bb.B)
	if at < 0 || remove < 0 || insert < 0 || at > n || remove > n-at {
		return fmt.Errorf("%w: splice at %d remove %d insert %d in %d bytes",
			errs.ErrOffsetOutOfRange, at, remove, insert, n)
	}

	delta := insert - remove
	switch {
	case delta > 0:
		bb.Grow(delta)
		bb.B = bb.B[:n+delta]
		copy(bb.B[at+insert:], bb.B[at+remove:n])
	case delta < 0:
		copy(bb.B[at+insert:], bb.B[at+remove:n])
		bb.B = bb.B[:n+delta]
	}
	clear(bb.B[at : at+insert])

	return nil
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// Buffers larger than maxThreshold are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	packetDefaultPool  = NewByteBufferPool(PacketBufferDefaultSize, PacketBufferMaxThreshold)
	captureDefaultPool = NewByteBufferPool(CaptureBufferDefaultSize, CaptureBufferMaxThreshold)
)

// GetPacketBuffer retrieves a ByteBuffer from the default packet pool.
func GetPacketBuffer() *ByteBuffer {
	return packetDefaultPool.Get()
}

// PutPacketBuffer returns a ByteBuffer to the default packet pool.
func PutPacketBuffer(bb *ByteBuffer) {
	packetDefaultPool.Put(bb)
}

// GetCaptureBuffer retrieves a ByteBuffer from the default capture pool.
func GetCaptureBuffer() *ByteBuffer {
	return captureDefaultPool.Get()
}

// PutCaptureBuffer returns a ByteBuffer to the default capture pool.
func PutCaptureBuffer(bb *ByteBuffer) {
	captureDefaultPool.Put(bb)
}
