package indicator

import "github.com/arloliu/vrtack/format"

// Field identifiers. The zero FieldID is never cataloged.
const (
	_ FieldID = iota

	// CIF0 fields. Bits 7-4 are reserved and bits 3-0 announce the other enable words.
	ChangeIndicator
	ReferencePointID
	Bandwidth
	IFReferenceFrequency
	RFReferenceFrequency
	RFReferenceFrequencyOffset
	IFBandOffset
	ReferenceLevel
	Gain
	OverRangeCount
	SampleRate
	TimestampAdjustment
	TimestampCalibrationTime
	Temperature
	DeviceIdentifier
	StateEventIndicators
	DataPayloadFormat
	FormattedGPS
	FormattedINS
	ECEFEphemeris
	RelativeEphemeris
	EphemerisReferenceID
	GPSASCII
	ContextAssociationLists

	// CIF1 fields.
	PhaseOffset
	Polarization
	PointingVector
	PointingVectorStructure
	SpatialScanType
	SpatialReferenceType
	BeamWidth
	Range
	EbNoBER
	Threshold
	CompressionPoint
	InterceptPoints
	SNRNoiseFigure
	AuxFrequency
	AuxGain
	AuxBandwidth
	ArrayOfCIFs
	Spectrum
	SectorScanStep
	IndexList
	DiscreteIO32
	DiscreteIO64
	HealthStatus
	SpecCompliance
	VersionBuildCode
	BufferSize

	// CIF2 fields.
	BindID
	CitedSID
	SiblingSID
	ParentSID
	ChildSID
	CitedMessageID
	ControlleeID
	ControlleeUUID
	ControllerID
	ControllerUUID
	InformationSource
	TrackID
	CountryCode
	Operator
	PlatformClass
	PlatformInstance
	PlatformDisplay
	EMSDeviceClass
	EMSDeviceType
	EMSDeviceInstance
	ModulationClass
	ModulationType
	FunctionID
	ModeID
	EventID
	FunctionPriorityID
	CommunicationPriorityID
	RFFootprint
	RFFootprintRange

	// CIF3 fields.
	TimestampDetails
	TimestampSkew
	RiseTime
	FallTime
	OffsetTime
	PulseWidth
	Period
	Duration
	DwellTime
	JitterTime
	AgeOfInformation
	ShelfLife
	AirTemperature
	SeaGroundTemperature
	Humidity
	BarometricPressure
	SeaSwellState
	TroposphericState
	NetworkID

	// CIF7 attributes. CurrentValue is the decorated field's own value.
	CurrentValue
	Mean
	Median
	StandardDeviation
	MaxValue
	MinValue
	Precision
	Accuracy
	FirstDerivative
	SecondDerivative
	ThirdDerivative
	Probability
	Belief
)

var catalog = [...]Descriptor{
	ChangeIndicator:            fixed("ChangeIndicator", CIF0, 31, format.KindBoolNull),
	ReferencePointID:           fixed("ReferencePointID", CIF0, 30, format.KindInt32),
	Bandwidth:                  fixed("Bandwidth", CIF0, 29, format.KindInt64),
	IFReferenceFrequency:       fixed("IFReferenceFrequency", CIF0, 28, format.KindInt64),
	RFReferenceFrequency:       fixed("RFReferenceFrequency", CIF0, 27, format.KindInt64),
	RFReferenceFrequencyOffset: fixed("RFReferenceFrequencyOffset", CIF0, 26, format.KindInt64),
	IFBandOffset:               fixed("IFBandOffset", CIF0, 25, format.KindInt64),
	ReferenceLevel:             fixed("ReferenceLevel", CIF0, 24, format.KindInt16),
	Gain:                       fixed("Gain", CIF0, 23, format.KindInt32),
	OverRangeCount:             fixed("OverRangeCount", CIF0, 22, format.KindInt32),
	SampleRate:                 fixed("SampleRate", CIF0, 21, format.KindInt64),
	TimestampAdjustment:        fixed("TimestampAdjustment", CIF0, 20, format.KindInt64),
	TimestampCalibrationTime:   fixed("TimestampCalibrationTime", CIF0, 19, format.KindInt32),
	Temperature:                fixed("Temperature", CIF0, 18, format.KindInt16),
	DeviceIdentifier:           fixed("DeviceIdentifier", CIF0, 17, format.KindInt64),
	StateEventIndicators:       fixed("StateEventIndicators", CIF0, 16, format.KindBoolNull),
	DataPayloadFormat:          fixed("DataPayloadFormat", CIF0, 15, format.KindInt64),
	FormattedGPS:               fixed("FormattedGPS", CIF0, 14, format.KindGeolocation),
	FormattedINS:               fixed("FormattedINS", CIF0, 13, format.KindGeolocation),
	ECEFEphemeris:              fixed("ECEFEphemeris", CIF0, 12, format.KindEphemeris),
	RelativeEphemeris:          fixed("RelativeEphemeris", CIF0, 11, format.KindEphemeris),
	EphemerisReferenceID:       fixed("EphemerisReferenceID", CIF0, 10, format.KindInt32),
	GPSASCII:                   variable("GPSASCII", CIF0, 9, format.KindRecord),
	ContextAssociationLists:    variable("ContextAssociationLists", CIF0, 8, format.KindRecord),

	PhaseOffset:             fixed("PhaseOffset", CIF1, 31, format.KindInt16),
	Polarization:            fixed("Polarization", CIF1, 30, format.KindInt32),
	PointingVector:          fixed("PointingVector", CIF1, 29, format.KindInt32),
	PointingVectorStructure: variable("PointingVectorStructure", CIF1, 28, format.KindRecord),
	SpatialScanType:         fixed("SpatialScanType", CIF1, 27, format.KindInt16),
	SpatialReferenceType:    fixed("SpatialReferenceType", CIF1, 26, format.KindInt32),
	BeamWidth:               fixed("BeamWidth", CIF1, 25, format.KindInt32),
	Range:                   fixed("Range", CIF1, 24, format.KindInt32),
	EbNoBER:                 fixed("EbNoBER", CIF1, 20, format.KindInt32),
	Threshold:               fixed("Threshold", CIF1, 19, format.KindInt32),
	CompressionPoint:        fixed("CompressionPoint", CIF1, 18, format.KindInt16),
	InterceptPoints:         fixed("InterceptPoints", CIF1, 17, format.KindInt32),
	SNRNoiseFigure:          fixed("SNRNoiseFigure", CIF1, 16, format.KindInt32),
	AuxFrequency:            fixed("AuxFrequency", CIF1, 15, format.KindInt64),
	AuxGain:                 fixed("AuxGain", CIF1, 14, format.KindInt32),
	AuxBandwidth:            fixed("AuxBandwidth", CIF1, 13, format.KindInt64),
	ArrayOfCIFs:             variable("ArrayOfCIFs", CIF1, 11, format.KindRecord),
	Spectrum:                fixed("Spectrum", CIF1, 10, format.KindRecord),
	SectorScanStep:          variable("SectorScanStep", CIF1, 9, format.KindRecord),
	IndexList:               variable("IndexList", CIF1, 7, format.KindRecord),
	DiscreteIO32:            fixed("DiscreteIO32", CIF1, 6, format.KindInt32),
	DiscreteIO64:            fixed("DiscreteIO64", CIF1, 5, format.KindInt64),
	HealthStatus:            fixed("HealthStatus", CIF1, 4, format.KindInt16),
	SpecCompliance:          fixed("SpecCompliance", CIF1, 3, format.KindInt32),
	VersionBuildCode:        fixed("VersionBuildCode", CIF1, 2, format.KindInt32),
	BufferSize:              fixed("BufferSize", CIF1, 1, format.KindInt64),

	BindID:                  fixed("BindID", CIF2, 31, format.KindInt32),
	CitedSID:                fixed("CitedSID", CIF2, 30, format.KindInt32),
	SiblingSID:              fixed("SiblingSID", CIF2, 29, format.KindInt32),
	ParentSID:               fixed("ParentSID", CIF2, 28, format.KindInt32),
	ChildSID:                fixed("ChildSID", CIF2, 27, format.KindInt32),
	CitedMessageID:          fixed("CitedMessageID", CIF2, 26, format.KindInt32),
	ControlleeID:            fixed("ControlleeID", CIF2, 25, format.KindInt32),
	ControlleeUUID:          fixed("ControlleeUUID", CIF2, 24, format.KindRecord),
	ControllerID:            fixed("ControllerID", CIF2, 23, format.KindInt32),
	ControllerUUID:          fixed("ControllerUUID", CIF2, 22, format.KindRecord),
	InformationSource:       fixed("InformationSource", CIF2, 21, format.KindInt32),
	TrackID:                 fixed("TrackID", CIF2, 20, format.KindInt32),
	CountryCode:             fixed("CountryCode", CIF2, 19, format.KindInt32),
	Operator:                fixed("Operator", CIF2, 18, format.KindInt32),
	PlatformClass:           fixed("PlatformClass", CIF2, 17, format.KindInt32),
	PlatformInstance:        fixed("PlatformInstance", CIF2, 16, format.KindInt32),
	PlatformDisplay:         fixed("PlatformDisplay", CIF2, 15, format.KindInt32),
	EMSDeviceClass:          fixed("EMSDeviceClass", CIF2, 14, format.KindInt32),
	EMSDeviceType:           fixed("EMSDeviceType", CIF2, 13, format.KindInt32),
	EMSDeviceInstance:       fixed("EMSDeviceInstance", CIF2, 12, format.KindInt32),
	ModulationClass:         fixed("ModulationClass", CIF2, 11, format.KindInt32),
	ModulationType:          fixed("ModulationType", CIF2, 10, format.KindInt32),
	FunctionID:              fixed("FunctionID", CIF2, 9, format.KindInt32),
	ModeID:                  fixed("ModeID", CIF2, 8, format.KindInt32),
	EventID:                 fixed("EventID", CIF2, 7, format.KindInt32),
	FunctionPriorityID:      fixed("FunctionPriorityID", CIF2, 6, format.KindInt32),
	CommunicationPriorityID: fixed("CommunicationPriorityID", CIF2, 5, format.KindInt32),
	RFFootprint:             fixed("RFFootprint", CIF2, 4, format.KindInt32),
	RFFootprintRange:        fixed("RFFootprintRange", CIF2, 3, format.KindInt32),

	TimestampDetails:     fixed("TimestampDetails", CIF3, 31, format.KindInt64),
	TimestampSkew:        fixed("TimestampSkew", CIF3, 30, format.KindInt64),
	RiseTime:             fixed("RiseTime", CIF3, 27, format.KindInt64),
	FallTime:             fixed("FallTime", CIF3, 26, format.KindInt64),
	OffsetTime:           fixed("OffsetTime", CIF3, 25, format.KindInt64),
	PulseWidth:           fixed("PulseWidth", CIF3, 24, format.KindInt64),
	Period:               fixed("Period", CIF3, 23, format.KindInt64),
	Duration:             fixed("Duration", CIF3, 22, format.KindInt64),
	DwellTime:            fixed("DwellTime", CIF3, 21, format.KindInt64),
	JitterTime:           fixed("JitterTime", CIF3, 20, format.KindInt64),
	AgeOfInformation:     fixed("AgeOfInformation", CIF3, 17, format.KindInt32),
	ShelfLife:            fixed("ShelfLife", CIF3, 16, format.KindInt32),
	AirTemperature:       fixed("AirTemperature", CIF3, 7, format.KindInt16),
	SeaGroundTemperature: fixed("SeaGroundTemperature", CIF3, 6, format.KindInt16),
	Humidity:             fixed("Humidity", CIF3, 5, format.KindInt16),
	BarometricPressure:   fixed("BarometricPressure", CIF3, 4, format.KindInt16),
	SeaSwellState:        fixed("SeaSwellState", CIF3, 3, format.KindInt16),
	TroposphericState:    fixed("TroposphericState", CIF3, 2, format.KindInt16),
	NetworkID:            fixed("NetworkID", CIF3, 1, format.KindInt32),

	CurrentValue:      fixed("CurrentValue", CIF7, 31, format.KindInt32),
	Mean:              fixed("Mean", CIF7, 30, format.KindInt32),
	Median:            fixed("Median", CIF7, 29, format.KindInt32),
	StandardDeviation: fixed("StandardDeviation", CIF7, 28, format.KindInt32),
	MaxValue:          fixed("MaxValue", CIF7, 27, format.KindInt32),
	MinValue:          fixed("MinValue", CIF7, 26, format.KindInt32),
	Precision:         fixed("Precision", CIF7, 25, format.KindInt32),
	Accuracy:          fixed("Accuracy", CIF7, 24, format.KindInt32),
	FirstDerivative:   fixed("FirstDerivative", CIF7, 23, format.KindInt32),
	SecondDerivative:  fixed("SecondDerivative", CIF7, 22, format.KindInt32),
	ThirdDerivative:   fixed("ThirdDerivative", CIF7, 21, format.KindInt32),
	Probability:       fixed("Probability", CIF7, 20, format.KindInt32),
	Belief:            fixed("Belief", CIF7, 19, format.KindInt32),
}
