// Package vrtack builds, reads and edits the warning and error indicator fields of
// VITA-49.2 VRT command acknowledge packets.
//
// An acknowledge packet answers a command with two sets of indicator fields:
// warnings first, errors second. Each set is selected by CIF enable words (CIF0,
// CIF1, CIF2, CIF3 and the CIF7 attribute word), and the byte offset of every
// field follows from those bitmaps alone. vrtack computes the offsets on demand
// and keeps the buffer, the bitmaps and the header size consistent on every edit.
//
// # Core Features
//
//   - Offset computation for every cataloged field, in both occurrences
//   - Field insertion and removal with in-place buffer splicing
//   - CIF1/CIF2/CIF3 enable chain and CIF7 attribute management
//   - Structural validation with aggregated error reporting
//   - Compressed multi-packet captures (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Building an acknowledgement:
//
//	import "github.com/arloliu/vrtack"
//
//	p, _ := vrtack.NewAcknowledge(0x1234, 7)
//	defer p.Release()
//
//	_ = p.SetWarning(indicator.OverRangeCount, 12)
//	_ = p.SetError(indicator.Gain, -3)
//	p.SetErrorsGenerated(true)
//
//	send(p.Bytes())
//
// Reading one:
//
//	p, err := vrtack.ParseAcknowledge(buf)
//	if err != nil {
//	    return err
//	}
//	errs, _ := p.GetErrors()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the ack, indicator
// and capture packages. For the full API, use those packages directly.
package vrtack

import (
	"github.com/arloliu/vrtack/ack"
	"github.com/arloliu/vrtack/capture"
	"github.com/arloliu/vrtack/format"
	"github.com/arloliu/vrtack/indicator"
)

// NewAcknowledge creates an empty acknowledge packet for message messageID on
// stream streamID.
//
// Parameters:
//   - streamID: Stream identifier word
//   - messageID: Identifier of the acknowledged command
//   - opts: Further prologue options (class ID, timestamps, identifiers)
//
// Returns:
//   - *ack.Packet: The packet; release it with Release when done
//   - error: Option validation errors
//
// Example:
//
//	p, err := vrtack.NewAcknowledge(0x1234, 7, ack.WithControllee(0x42))
func NewAcknowledge(streamID, messageID uint32, opts ...ack.Option) (*ack.Packet, error) {
	all := make([]ack.Option, 0, len(opts)+2)
	all = append(all, ack.WithStreamID(streamID), ack.WithMessageID(messageID))
	all = append(all, opts...)

	return ack.New(all...)
}

// ParseAcknowledge copies data into a new acknowledge packet and checks its
// structure.
//
// Packets holding variable-length fields parse successfully; declare their
// lengths with SetVariableLength before addressing fields stored after them.
func ParseAcknowledge(data []byte) (*ack.Packet, error) {
	return ack.Parse(data)
}

// FieldByName returns the identifier of the cataloged field or attribute named name.
//
// Example:
//
//	id, err := vrtack.FieldByName("OverRangeCount")
func FieldByName(name string) (indicator.FieldID, error) {
	d, err := indicator.ByName(name)
	if err != nil {
		return 0, err
	}

	return d.ID, nil
}

// EncodeCapture stores packets in a capture blob compressed with ct.
func EncodeCapture(packets []*ack.Packet, ct format.CompressionType) ([]byte, error) {
	blob, _, err := capture.Encode(packets, capture.WithCompression(ct))
	return blob, err
}

// DecodeCapture restores the packets of a capture blob. The caller releases them.
func DecodeCapture(data []byte) ([]*ack.Packet, error) {
	return capture.Decode(data)
}
