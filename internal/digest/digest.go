// Package digest provides content fingerprints used to dedupe generated
// fuzz corpus entries. It is deliberately separate from the bitmap
// package's exact BitmapEquals: nothing here is used for bit-accurate
// comparison, only for cheap membership tests over test inputs.
package digest

import (
	"github.com/cespare/xxhash/v2"
	"github.com/minio/highwayhash"
)

// Checksum returns the xxhash of data, adapted from the teacher's
// internal/checksum package.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// corpusKey is a fixed, arbitrary 32-byte key used only to key the
// highwayhash fingerprint; it carries no secrecy requirement since the
// fingerprint is used for corpus deduplication, not authentication.
var corpusKey = [32]byte{
	0x62, 0x69, 0x74, 0x6b, 0x65, 0x72, 0x6e, 0x65,
	0x6c, 0x2d, 0x66, 0x75, 0x7a, 0x7a, 0x2d, 0x63,
	0x6f, 0x72, 0x70, 0x75, 0x73, 0x2d, 0x76, 0x31,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// Fingerprint returns a keyed 64-bit highwayhash digest of data, combined
// with Checksum into a 128-bit identity for corpus dedup. Two distinct
// hash families are used so a collision in one does not silently drop a
// distinct case.
func Fingerprint(data []byte) (lo, hi uint64) {
	lo = Checksum(data)
	sum, err := highwayhash.New64(corpusKey[:])
	if err != nil {
		// corpusKey is a fixed 32-byte constant; New64 only errors on
		// wrong key length.
		panic(err)
	}
	sum.Write(data)
	hi = sum.Sum64()
	return lo, hi
}
