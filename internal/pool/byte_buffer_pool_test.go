package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/vrtack/errs"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("header"))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	_, err = bb.Write([]byte("word"))
	require.NoError(t, err)
	require.Equal(t, []byte("headerword"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	_, _ = bb.Write([]byte{1, 2, 3, 4})

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, []byte{1, 2, 3, 4}, out.Bytes())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(PacketBufferDefaultSize)
		originalCap := bb.Cap()

		bb.Grow(100)

		assert.Equal(t, originalCap, bb.Cap(), "should not reallocate when capacity is sufficient")
	})

	t.Run("full buffer", func(t *testing.T) {
		bb := NewByteBuffer(PacketBufferDefaultSize)
		bb.B = append(bb.B, make([]byte, PacketBufferDefaultSize)...)

		bb.Grow(1)

		assert.GreaterOrEqual(t, bb.Cap(), 2*PacketBufferDefaultSize)
		assert.Equal(t, PacketBufferDefaultSize, bb.Len(), "length should not change")
	})

	t.Run("request larger than default growth", func(t *testing.T) {
		bb := NewByteBuffer(0)

		bb.Grow(10 * PacketBufferDefaultSize)

		assert.GreaterOrEqual(t, bb.Cap(), 10*PacketBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(8)
		data := []byte("CIF0CIF1")
		_, _ = bb.Write(data)

		bb.Grow(PacketBufferDefaultSize * 2)

		assert.Equal(t, data, bb.B)
	})
}

func TestByteBuffer_Resize(t *testing.T) {
	bb := NewByteBuffer(4)
	_, _ = bb.Write([]byte{1, 2, 3, 4})

	require.NoError(t, bb.Resize(8))
	require.Equal(t, []byte{1, 2, 3, 4, 0, 0, 0, 0}, bb.Bytes())

	require.NoError(t, bb.Resize(2))
	require.Equal(t, []byte{1, 2}, bb.Bytes())

	// Growing back must not resurrect stale bytes
	require.NoError(t, bb.Resize(4))
	require.Equal(t, []byte{1, 2, 0, 0}, bb.Bytes())

	require.ErrorIs(t, bb.Resize(-1), errs.ErrOffsetOutOfRange)
}

// =============================================================================
// Splice Tests
// =============================================================================

func TestByteBuffer_Splice(t *testing.T) {
	base := []byte{0xA0, 0xA1, 0xA2, 0xA3, 0xB0, 0xB1, 0xB2, 0xB3}

	tests := []struct {
		name   string
		at     int
		remove int
		insert int
		want   []byte
	}{
		{
			name:   "insert in the middle",
			at:     4,
			insert: 4,
			want:   []byte{0xA0, 0xA1, 0xA2, 0xA3, 0, 0, 0, 0, 0xB0, 0xB1, 0xB2, 0xB3},
		},
		{
			name:   "insert at the start",
			at:     0,
			insert: 4,
			want:   []byte{0, 0, 0, 0, 0xA0, 0xA1, 0xA2, 0xA3, 0xB0, 0xB1, 0xB2, 0xB3},
		},
		{
			name:   "append at the end",
			at:     8,
			insert: 2,
			want:   []byte{0xA0, 0xA1, 0xA2, 0xA3, 0xB0, 0xB1, 0xB2, 0xB3, 0, 0},
		},
		{
			name:   "remove first word",
			at:     0,
			remove: 4,
			want:   []byte{0xB0, 0xB1, 0xB2, 0xB3},
		},
		{
			name:   "remove tail",
			at:     6,
			remove: 2,
			want:   []byte{0xA0, 0xA1, 0xA2, 0xA3, 0xB0, 0xB1},
		},
		{
			name:   "replace with fewer bytes",
			at:     2,
			remove: 4,
			insert: 1,
			want:   []byte{0xA0, 0xA1, 0, 0xB2, 0xB3},
		},
		{
			name:   "replace with same size zeroes",
			at:     4,
			remove: 4,
			insert: 4,
			want:   []byte{0xA0, 0xA1, 0xA2, 0xA3, 0, 0, 0, 0},
		},
		{
			name: "no-op",
			at:   3,
			want: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(len(base))
			_, _ = bb.Write(base)

			require.NoError(t, bb.Splice(tt.at, tt.remove, tt.insert))
			require.Equal(t, tt.want, bb.Bytes())
		})
	}
}

func TestByteBuffer_Splice_InsertThenRemoveRestores(t *testing.T) {
	bb := NewByteBuffer(0)
	original := []byte("0123456789abcdef")
	_, _ = bb.Write(original)

	require.NoError(t, bb.Splice(8, 0, 12))
	require.Equal(t, len(original)+12, bb.Len())
	require.NoError(t, bb.Splice(8, 12, 0))

	require.Equal(t, original, bb.Bytes())
}

func TestByteBuffer_Splice_OutOfRange(t *testing.T) {
	original := []byte{1, 2, 3, 4}

	tests := []struct {
		name               string
		at, remove, insert int
	}{
		{"negative offset", -1, 0, 4},
		{"offset past end", 5, 0, 4},
		{"remove past end", 2, 3, 0},
		{"negative remove", 0, -1, 0},
		{"negative insert", 0, 0, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(4)
			_, _ = bb.Write(original)

			err := bb.Splice(tt.at, tt.remove, tt.insert)

			require.ErrorIs(t, err, errs.ErrOffsetOutOfRange)
			require.Equal(t, original, bb.Bytes(), "failed splice must not modify the buffer")
		})
	}
}

// =============================================================================
// Pool Tests
// =============================================================================

func TestGetPacketBuffer(t *testing.T) {
	bb := GetPacketBuffer()

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "pooled buffer should be empty")
	assert.GreaterOrEqual(t, bb.Cap(), PacketBufferDefaultSize)
	PutPacketBuffer(bb)
}

func TestPutPacketBuffer_NilBuffer(t *testing.T) {
	assert.NotPanics(t, func() {
		PutPacketBuffer(nil)
		PutCaptureBuffer(nil)
	})
}

func TestPool_ResetsOnPut(t *testing.T) {
	bb := GetCaptureBuffer()
	_, _ = bb.Write([]byte("packet bytes"))

	PutCaptureBuffer(bb)

	assert.Equal(t, 0, bb.Len(), "Put should reset the buffer")
	bb2 := GetCaptureBuffer()
	assert.Equal(t, 0, bb2.Len())
	PutCaptureBuffer(bb2)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	large := NewByteBuffer(128)
	_, _ = large.Write([]byte("oversized"))
	p.Put(large)

	// Oversized buffers are dropped, so they are not reset either
	assert.Equal(t, 9, large.Len())

	small := NewByteBuffer(32)
	_, _ = small.Write([]byte("ok"))
	p.Put(small)
	assert.Equal(t, 0, small.Len())
}

func TestPool_ConcurrentAccess(t *testing.T) {
	const numGoroutines = 50
	const numIterations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for range numGoroutines {
		go func() {
			defer wg.Done()
			for range numIterations {
				bb := GetPacketBuffer()
				_, _ = bb.Write([]byte("word"))
				assert.Equal(t, 4, bb.Len())
				PutPacketBuffer(bb)
			}
		}()
	}

	wg.Wait()
}
