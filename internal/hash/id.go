package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
// It keys the indicator catalog's name index.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of raw bytes, used for packet fingerprints and
// capture body checksums.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest returns a streaming xxHash64 digest for checksumming data written in pieces.
func Digest() *xxhash.Digest {
	return xxhash.New()
}
