// Package section defines the low-level wire structures and constants of VRT
// command acknowledge packets.
//
// The package covers the parts of the packet that sit in front of the indicator
// fields: the header word, the Control/Acknowledge Mode (CAM) word and the size
// of the prologue they imply. It also holds the CIF0 control bits that announce
// the optional CIF1, CIF2, CIF3 and CIF7 enable words.
//
// # Packet Prologue
//
// Every word is 32 bits, big-endian:
//
//	Word       | Field              | Present when
//	-----------|--------------------|-------------------------------
//	0          | Header             | always
//	1          | Stream ID          | always
//	+2         | Class ID           | Header.ClassID
//	+1         | Integer timestamp  | Header.TSI != 0
//	+2         | Fractional ts      | Header.TSF != 0
//	+1         | CAM                | always
//	+1         | Message ID         | always
//	+1 or +4   | Controllee ID      | CAMControlleeEnable (4 with CAMControlleeUUID)
//	+1 or +4   | Controller ID      | CAMControllerEnable (4 with CAMControllerUUID)
//
// # Header Word
//
//	Bits   | Field
//	-------|----------------------------------------
//	31-28  | Packet type (0x6 command, 0x7 extension command)
//	27     | Class ID present
//	26     | Acknowledge packet
//	25     | Reserved, must be zero
//	24     | Cancellation packet
//	23-22  | TSI
//	21-20  | TSF
//	19-16  | Packet count
//	15-0   | Packet size in words
//
// The size field limits a packet to MaxPacketWords words (MaxPacketBytes bytes).
package section
