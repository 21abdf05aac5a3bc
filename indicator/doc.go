// Package indicator is the static catalog of VRT indicator fields.
//
// Each field is addressed by an enable bit in one of the CIF words (CIF0, CIF1,
// CIF2, CIF3) and each CIF7 attribute by a bit of the CIF7 word. The catalog maps
// a FieldID to its CIF, bit, stored length and value kind, and lists the fields
// of a CIF in storage order (bit 31 first).
//
// Lookups by name go through an xxHash64 index built at init:
//
//	d, err := indicator.ByName("OverRangeCount")
//	// d.CIF == indicator.CIF0, d.Bit == 22
//
// The catalog is immutable and safe for concurrent use.
package indicator
