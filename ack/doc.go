// Package ack implements the indicator field layout of VRT command acknowledge
// packets.
//
// An acknowledge packet reports warnings and errors for a command. Both are sets
// of indicator fields selected by CIF enable words, so the payload holds the same
// layout twice:
//
//	┌───────────────────────────────────────────────┐
//	│ Prologue (header, stream ID, ..., message ID) │
//	├───────────────────────────────────────────────┤
//	│ Warning: CIF0 [CIF1] [CIF2] [CIF3] [CIF7]     │
//	│          field slots                          │
//	├───────────────────────────────────────────────┤
//	│ Error:   CIF0 [CIF1] [CIF2] [CIF3] [CIF7]     │
//	│          field slots                          │
//	└───────────────────────────────────────────────┘
//
// CIF0 bits 1, 2 and 3 announce the CIF1, CIF2 and CIF3 words and bit 0 the CIF7
// word. Slots follow in storage order: CIF0 fields from bit 31 down, then CIF1,
// CIF2 and CIF3. A slot is the field value followed by one word per enabled CIF7
// attribute. No offset is stored anywhere; every lookup recomputes it from the
// enable words, so the layout cannot go stale.
//
// # Basic Usage
//
//	p, _ := ack.New(ack.WithStreamID(0x1234), ack.WithMessageID(7))
//	defer p.Release()
//
//	_ = p.SetWarning(indicator.OverRangeCount, 12)
//	_ = p.SetError(indicator.Gain, -3)
//	p.SetWarningsGenerated(true)
//	p.SetErrorsGenerated(true)
//
//	for ind, err := range p.All(ack.Warning) {
//	    ...
//	}
//
// Acknowledge indicators are 32-bit integers. Every fixed scalar field, whatever
// its context-packet width, is carried as one such word. Geolocation, ephemeris
// and record fields are in the catalog for layout purposes only; reading or
// writing them fails with errs.ErrUnsupportedFieldType.
//
// Data bits the catalog does not name are addressed with indicator.Positional
// and behave like any other 32-bit field.
//
// # Resizing
//
// Adding a field, enabling a CIF word or an attribute, and their reverses move
// the bytes behind the edit point and rewrite the header size in the same call.
// Each operation plans its edits and checks the size limit before the first
// byte moves. Disabling a CIF word removes the data of its fields first.
//
// # Thread Safety
//
// A Packet is not safe for concurrent use.
package ack
