// Package bitmap implements bit-accurate, offset-aware kernels over
// bit-packed byte buffers: population count, copy/invert transfer,
// equality, and pairwise logical operations. Every function is pure
// over its arguments; none of them allocate unless its name says so.
package bitmap

import "encoding/binary"

// BytesForBits returns the number of bytes needed to hold n bits.
func BytesForBits(n int64) int64 {
	return (n + 7) / 8
}

func getBit(data []byte, i int64) bool {
	return data[i>>3]&(1<<uint(i&7)) != 0
}

func setBit(data []byte, i int64, v bool) {
	mask := byte(1 << uint(i&7))
	if v {
		data[i>>3] |= mask
	} else {
		data[i>>3] &^= mask
	}
}

// loadWord reads 8 bytes starting at data[byteOffset] as a little-endian
// uint64, regardless of host endianness.
func loadWord(data []byte, byteOffset int64) uint64 {
	return binary.LittleEndian.Uint64(data[byteOffset : byteOffset+8])
}

// storeWord writes w to data[byteOffset:byteOffset+8] as a little-endian
// uint64, regardless of host endianness.
func storeWord(data []byte, byteOffset int64, w uint64) {
	binary.LittleEndian.PutUint64(data[byteOffset:byteOffset+8], w)
}

// shiftWord implements the cross-word shifted load current>>k | next<<(64-k),
// branching on k==0 since a shift by the full word width is undefined.
func shiftWord(current, next uint64, k uint) uint64 {
	if k == 0 {
		return current
	}
	return current>>k | next<<(64-k)
}
