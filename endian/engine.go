// Package endian provides byte order utilities for VRT word access.
//
// VITA-49 defines every field on the wire as big-endian 32-bit words. This package
// combines the encoding/binary ByteOrder and AppendByteOrder interfaces into a single
// EndianEngine and adds the signed word helpers the indicator field accessors need.
//
// # Basic Usage
//
//	engine := endian.GetVRTEngine()
//	word := engine.Uint32(buf[off:])
//	endian.PutInt32(engine, buf[off:], -3)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// WordSize is the size of a VRT word in bytes.
const WordSize = 4

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetVRTEngine returns the byte order mandated by VITA-49 (big-endian).
func GetVRTEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Int32 reads a signed 32-bit word from the first four bytes of b.
// Panics if b is shorter than WordSize, like binary.ByteOrder.Uint32.
func Int32(engine EndianEngine, b []byte) int32 {
	return int32(engine.Uint32(b)) //nolint:gosec
}

// PutInt32 writes v as a two's complement 32-bit word into the first four bytes of b.
func PutInt32(engine EndianEngine, b []byte, v int32) {
	engine.PutUint32(b, uint32(v)) //nolint:gosec
}

// AppendInt32 appends v as a two's complement 32-bit word to b.
func AppendInt32(engine EndianEngine, b []byte, v int32) []byte {
	return engine.AppendUint32(b, uint32(v)) //nolint:gosec
}

// Words returns the number of 32-bit words needed to hold n bytes.
func Words(n int) int {
	return (n + WordSize - 1) / WordSize
}
