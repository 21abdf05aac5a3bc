package section

// CAM is the Control/Acknowledge Mode word of a command packet.
type CAM uint32

// CAM flags and fields.
const (
	CAMControlleeEnable  CAM = 1 << 31 // controllee identifier present
	CAMControlleeUUID    CAM = 1 << 30 // controllee identifier is a 128-bit UUID
	CAMControllerEnable  CAM = 1 << 29 // controller identifier present
	CAMControllerUUID    CAM = 1 << 28 // controller identifier is a 128-bit UUID
	CAMPartial           CAM = 1 << 27 // partial packet permitted
	CAMWarnings          CAM = 1 << 26 // warnings requested
	CAMErrors            CAM = 1 << 25 // errors requested
	CAMActionMask        CAM = 0x3 << 23
	CAMNotAck            CAM = 1 << 22
	CAMAckValidation     CAM = 1 << 20
	CAMAckExecution      CAM = 1 << 19
	CAMAckQueryState     CAM = 1 << 18
	CAMWarningsGenerated CAM = 1 << 17 // warning indicator fields are populated
	CAMErrorsGenerated   CAM = 1 << 16 // error indicator fields are populated
	CAMTimingMask        CAM = 0x7 << 12

	// CAMIdentifierMask covers the flags that size the controllee and controller
	// identifiers in the prologue.
	CAMIdentifierMask = CAMControlleeEnable | CAMControlleeUUID | CAMControllerEnable | CAMControllerUUID

	camActionShift = 23
	camTimingShift = 12
)

// Has reports whether every bit of flag is set.
func (c CAM) Has(flag CAM) bool {
	return c&flag == flag
}

// With returns c with flag set.
func (c CAM) With(flag CAM) CAM {
	return c | flag
}

// Without returns c with flag cleared.
func (c CAM) Without(flag CAM) CAM {
	return c &^ flag
}

// Set returns c with flag set or cleared.
func (c CAM) Set(flag CAM, on bool) CAM {
	if on {
		return c.With(flag)
	}

	return c.Without(flag)
}

// ActionMode returns the 2-bit action mode field.
func (c CAM) ActionMode() uint8 {
	return uint8((c & CAMActionMask) >> camActionShift)
}

// Timing returns the 3-bit timing control field.
func (c CAM) Timing() uint8 {
	return uint8((c & CAMTimingMask) >> camTimingShift)
}

// ControlleeWords returns the size in words of the controllee identifier.
func (c CAM) ControlleeWords() int {
	return identifierWords(c.Has(CAMControlleeEnable), c.Has(CAMControlleeUUID))
}

// ControllerWords returns the size in words of the controller identifier.
func (c CAM) ControllerWords() int {
	return identifierWords(c.Has(CAMControllerEnable), c.Has(CAMControllerUUID))
}

func identifierWords(present, uuid bool) int {
	switch {
	case !present:
		return 0
	case uuid:
		return UUIDWords
	default:
		return ShortIDWords
	}
}
