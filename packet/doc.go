// Package packet provides the minimal VRT envelope that acknowledge packets are
// built on.
//
// The envelope owns the byte buffer and understands only the prologue: where the
// payload starts and how long the packet claims to be. Payload edits go through
// Splice, which moves trailing bytes and rewrites the header size field in the
// same call, so the declared length and the buffer length never disagree.
//
//	p := packet.New(64)
//	p.AppendWord(header.Word())
//	...
//	_ = p.SetTotalLength(uint32(p.Len()))
//	_ = p.Splice(p.PayloadStart(), 0, 4) // insert one zero word
package packet
