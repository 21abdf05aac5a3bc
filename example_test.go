package vrtack_test

import (
	"fmt"

	"github.com/arloliu/vrtack"
	"github.com/arloliu/vrtack/ack"
	"github.com/arloliu/vrtack/indicator"
)

func ExampleNewAcknowledge() {
	p, err := vrtack.NewAcknowledge(0x1234, 7)
	if err != nil {
		panic(err)
	}
	defer p.Release()

	_ = p.SetWarning(indicator.EphemerisReferenceID, 42)
	_ = p.SetWarning(indicator.OverRangeCount, -3)
	_ = p.SetWarning(indicator.ReferencePointID, 7)
	p.SetWarningsGenerated(true)

	warnings, _ := p.GetWarnings()
	for _, w := range warnings {
		fmt.Printf("%s=%d\n", w.Field, w.Value)
	}
	fmt.Println("bytes:", p.Len())

	// Output:
	// ReferencePointID=7
	// OverRangeCount=-3
	// EphemerisReferenceID=42
	// bytes: 36
}

func ExampleParseAcknowledge() {
	src, _ := vrtack.NewAcknowledge(0x1234, 7)
	defer src.Release()
	_ = src.SetWarning(indicator.Gain, 1)
	_ = src.SetError(indicator.Polarization, -20)

	p, err := vrtack.ParseAcknowledge(src.Bytes())
	if err != nil {
		panic(err)
	}
	defer p.Release()

	off, _ := p.OffsetOf(indicator.Polarization, ack.Error)
	v, _ := p.GetError(indicator.Polarization)
	fmt.Printf("Polarization at byte %d: %d\n", off, v)

	_, err = p.GetWarning(indicator.Polarization)
	fmt.Println(err)

	// Output:
	// Polarization at byte 32: -20
	// indicator field not present: warning Polarization (CIF1 bit 30)
}

func ExampleFieldByName() {
	id, err := vrtack.FieldByName("StandardDeviation")
	if err != nil {
		panic(err)
	}

	fmt.Println(id, indicator.LengthOf(id))

	// Output:
	// StandardDeviation 4
}
