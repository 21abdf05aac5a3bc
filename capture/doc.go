// Package capture stores runs of acknowledge packets in one compressed blob.
//
// A capture is a 16-byte header followed by the compressed body:
//
//	0..1   magic 0xAC49
//	2      version (1)
//	3      compression type (format.CompressionType)
//	4..7   packet count, big-endian
//	8..15  xxHash64 of the uncompressed body, big-endian
//	16..   compressed body: the packet bytes back to back
//
// Each packet's header word carries its own size, so the body needs no index.
//
// # Basic Usage
//
//	blob, stats, err := capture.Encode(packets, capture.WithCompression(format.CompressionS2))
//	...
//	packets, err := capture.Decode(blob)
//	defer func() {
//	    for _, p := range packets {
//	        p.Release()
//	    }
//	}()
package capture
