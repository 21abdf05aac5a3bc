// Package errs defines the sentinel errors returned by vrtack packages.
//
// Call sites wrap these with additional context using fmt.Errorf("%w: ...") so
// callers should always compare with errors.Is rather than ==.
package errs

import "errors"

// Field addressing errors.
var (
	// ErrUnknownField is returned when a field identifier is not in the indicator catalog.
	ErrUnknownField = errors.New("unknown indicator field")
	// ErrFieldNotPresent is returned when a field's enable bit is clear for the requested occurrence.
	ErrFieldNotPresent = errors.New("indicator field not present")
	// ErrInvalidCIFNumber is returned for CIF selectors outside {0, 1, 2, 3, 7}.
	ErrInvalidCIFNumber = errors.New("invalid CIF number")
	// ErrInvalidOccurrence is returned for occurrences other than Warning and Error.
	ErrInvalidOccurrence = errors.New("invalid occurrence")
	// ErrInvalidOperation is returned when an operation would break the CIF enable chain
	// or is not meaningful for the given field.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrUnsupportedFieldType is returned when a field of a kind other than 32-bit integer
	// is accessed through an acknowledge packet.
	ErrUnsupportedFieldType = errors.New("all warning/error fields are 32 bits; only 32-bit integer access is supported")
	// ErrVariableLengthUnknown is returned when an offset depends on a present variable-length
	// field whose stored length has not been declared.
	ErrVariableLengthUnknown = errors.New("variable-length field has no declared length")
)

// Catalog construction errors.
var (
	// ErrInvalidFieldName is returned when a catalog entry has an empty name.
	ErrInvalidFieldName = errors.New("invalid field name")
	// ErrDuplicateFieldName is returned when the same field name is registered twice.
	ErrDuplicateFieldName = errors.New("duplicate field name")
)

// Buffer and envelope errors.
var (
	// ErrPacketTooLarge is returned when a resize would exceed the maximum VRT packet size.
	// The packet is left unchanged.
	ErrPacketTooLarge = errors.New("packet size limit exceeded")
	// ErrBufferTooShort is returned when a buffer is shorter than the length its header declares.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrInvalidHeader is returned for malformed packet header words.
	ErrInvalidHeader = errors.New("invalid packet header")
	// ErrNotAcknowledge is returned when parsing a packet that is not a command acknowledge packet.
	ErrNotAcknowledge = errors.New("not an acknowledge packet")
	// ErrOffsetOutOfRange is returned when a splice or word access falls outside the buffer.
	ErrOffsetOutOfRange = errors.New("offset out of range")
	// ErrReservedBitSet is returned when a reserved header or enable-word bit is set.
	ErrReservedBitSet = errors.New("reserved bit set")
	// ErrLayoutMismatch is returned when the declared packet size disagrees with the field layout.
	ErrLayoutMismatch = errors.New("declared size does not match indicator layout")
)

// Capture container errors.
var (
	// ErrInvalidCaptureHeader is returned when a capture blob header is malformed.
	ErrInvalidCaptureHeader = errors.New("invalid capture header")
	// ErrChecksumMismatch is returned when a capture body does not match its stored checksum.
	ErrChecksumMismatch = errors.New("capture checksum mismatch")
	// ErrTruncatedCapture is returned when a capture body ends inside a packet.
	ErrTruncatedCapture = errors.New("truncated capture body")
)
