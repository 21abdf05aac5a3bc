package capture

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/arloliu/vrtack/ack"
	"github.com/arloliu/vrtack/compress"
	"github.com/arloliu/vrtack/endian"
	"github.com/arloliu/vrtack/errs"
	"github.com/arloliu/vrtack/format"
	"github.com/arloliu/vrtack/internal/hash"
	"github.com/arloliu/vrtack/internal/options"
	"github.com/arloliu/vrtack/internal/pool"
	"github.com/arloliu/vrtack/section"
)

// Capture header layout.
const (
	Magic      uint16 = 0xAC49
	Version    uint8  = 1
	HeaderSize        = 16

	magicOffset       = 0
	versionOffset     = 2
	compressionOffset = 3
	countOffset       = 4
	checksumOffset    = 8

	// minPacketSize is the smallest acknowledge packet: a prologue and two
	// CIF0 words.
	minPacketSize = section.MinPrologueSize + 2*section.WordSize
)

// Header is the fixed 16-byte prefix of a capture.
type Header struct {
	Version     uint8
	Compression format.CompressionType
	Count       uint32
	Checksum    uint64 // xxHash64 of the uncompressed body
}

// ParseHeader decodes the capture header at the start of data.
//
// Returns:
//   - Header: The decoded header
//   - error: ErrInvalidCaptureHeader for short input, a wrong magic or version,
//     or an unknown compression type
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidCaptureHeader, len(data))
	}

	engine := endian.GetBigEndianEngine()
	if m := engine.Uint16(data[magicOffset:]); m != Magic {
		return Header{}, fmt.Errorf("%w: magic 0x%04X", errs.ErrInvalidCaptureHeader, m)
	}

	h := Header{
		Version:     data[versionOffset],
		Compression: format.CompressionType(data[compressionOffset]),
		Count:       engine.Uint32(data[countOffset:]),
		Checksum:    engine.Uint64(data[checksumOffset:]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: version %d", errs.ErrInvalidCaptureHeader, h.Version)
	}
	if _, err := compress.GetCodec(h.Compression); err != nil {
		return Header{}, fmt.Errorf("%w: %w", errs.ErrInvalidCaptureHeader, err)
	}

	return h, nil
}

func (h Header) append(dst []byte) []byte {
	engine := endian.GetBigEndianEngine()
	dst = engine.AppendUint16(dst, Magic)
	dst = append(dst, h.Version, byte(h.Compression))
	dst = engine.AppendUint32(dst, h.Count)

	return engine.AppendUint64(dst, h.Checksum)
}

// Encode stores packets in a single capture blob.
//
// The body is the concatenation of the packet bytes in order. It is
// checksummed before compression.
//
// Parameters:
//   - packets: Packets to store; nil entries are rejected
//   - opts: Encode options (WithCompression)
//
// Returns:
//   - []byte: The capture blob, owned by the caller
//   - compress.Stats: Body sizes before and after compression
//   - error: Option or compression errors
func Encode(packets []*ack.Packet, opts ...Option) ([]byte, compress.Stats, error) {
	cfg := &Config{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, compress.Stats{}, err
	}

	buf := pool.GetCaptureBuffer()
	defer pool.PutCaptureBuffer(buf)

	digest := hash.Digest()
	for i, p := range packets {
		if p == nil {
			return nil, compress.Stats{}, fmt.Errorf("%w: packet %d is nil", errs.ErrInvalidOperation, i)
		}
		_, _ = buf.Write(p.Bytes())
		_, _ = digest.Write(p.Bytes())
	}

	body, stats, err := compress.Compress(cfg.compression, buf.Bytes())
	if err != nil {
		return nil, stats, err
	}

	h := Header{
		Version:     Version,
		Compression: cfg.compression,
		Count:       uint32(len(packets)), //nolint:gosec
		Checksum:    digest.Sum64(),
	}
	out := make([]byte, 0, HeaderSize+len(body))
	out = h.append(out)
	out = append(out, body...)

	log.WithFields(log.Fields{
		"packets":     len(packets),
		"compression": cfg.compression.String(),
		"raw":         stats.OriginalSize,
		"compressed":  stats.CompressedSize,
	}).Debug("encoded capture")

	return out, stats, nil
}

// Decode restores the packets of a capture blob.
//
// Every packet is parsed with ack.Parse. Declared variable lengths are not
// stored in captures; callers declare them again on the decoded packets.
//
// Returns:
//   - []*ack.Packet: The decoded packets; the caller releases them
//   - error: ErrInvalidCaptureHeader, ErrChecksumMismatch, ErrTruncatedCapture,
//     decompression errors, or the parse error of the first bad packet
func Decode(data []byte) ([]*ack.Packet, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}
	body, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress %s capture body: %w", h.Compression, err)
	}

	if sum := hash.Sum(body); sum != h.Checksum {
		return nil, fmt.Errorf("%w: stored %016x, body %016x", errs.ErrChecksumMismatch, h.Checksum, sum)
	}

	// every packet holds at least a prologue, so the count is bounded by the body
	if uint64(h.Count)*minPacketSize > uint64(len(body)) {
		return nil, fmt.Errorf("%w: %d packets cannot fit in %d bytes", errs.ErrTruncatedCapture, h.Count, len(body))
	}

	packets := make([]*ack.Packet, 0, h.Count)
	release := func() {
		for _, p := range packets {
			p.Release()
		}
	}

	engine := endian.GetVRTEngine()
	off := 0
	for i := range h.Count {
		if len(body)-off < section.WordSize {
			release()
			return nil, fmt.Errorf("%w: packet %d of %d missing", errs.ErrTruncatedCapture, i, h.Count)
		}

		size := int(section.ParseHeader(engine.Uint32(body[off:])).Size) * section.WordSize
		if size == 0 || off+size > len(body) {
			release()
			return nil, fmt.Errorf("%w: packet %d declares %d bytes, %d left", errs.ErrTruncatedCapture, i, size, len(body)-off)
		}

		p, err := ack.Parse(body[off : off+size])
		if err != nil {
			release()
			return nil, fmt.Errorf("packet %d: %w", i, err)
		}
		packets = append(packets, p)
		off += size
	}

	if off != len(body) {
		release()
		return nil, fmt.Errorf("%w: %d trailing bytes after %d packets", errs.ErrInvalidCaptureHeader, len(body)-off, h.Count)
	}

	return packets, nil
}
