package bitmap

import "math/bits"

// CountSetBits returns the number of set bits in the length-bit range of
// data starting at bitOffset. It is exact and equal to the sum of
// get_bit(data, bitOffset+i) over i in [0, length).
func CountSetBits(data []byte, bitOffset, length int64) int64 {
	if length == 0 {
		return 0
	}

	plan := wordAlign(bitOffset, length)

	var count int64

	r := NewReader(data, bitOffset, plan.leadingBits)
	for i := int64(0); i < plan.leadingBits; i++ {
		if r.IsSet() {
			count++
		}
		r.Next()
	}

	byteOffset := plan.alignedByteStart
	for i := int64(0); i < plan.alignedWords; i++ {
		count += int64(bits.OnesCount64(loadWord(data, byteOffset)))
		byteOffset += 8
	}

	trailingLen := bitOffset + length - plan.trailingBitOffset
	tr := NewReader(data, plan.trailingBitOffset, trailingLen)
	for i := int64(0); i < trailingLen; i++ {
		if tr.IsSet() {
			count++
		}
		tr.Next()
	}

	return count
}
