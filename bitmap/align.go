package bitmap

// wordPlan is the result of word_align: the partition of a bit range into a
// leading scalar region, a full-word region, and a trailing scalar region.
// It never reads memory; it is pure address arithmetic.
type wordPlan struct {
	// leadingBits is the number of bits from bitOffset up to the next
	// 8-byte (64-bit) boundary, capped at length.
	leadingBits int64
	// alignedByteStart is the byte offset of the first aligned word.
	alignedByteStart int64
	// alignedWords is the number of full 64-bit words fully contained in
	// the range after the leading bits.
	alignedWords int64
	// trailingBitOffset is the absolute bit offset (relative to the start
	// of the buffer, i.e. bitOffset-relative base of 0) at which word
	// processing ends and scalar trailing bits begin.
	trailingBitOffset int64
}

// wordAlign computes the word-aligned region bracketed by leading and
// trailing scalar bits for a range starting at bitOffset and spanning
// length bits. It guarantees the three regions partition
// [bitOffset, bitOffset+length) exactly and that the word region never
// overlaps the trailing scalar bits.
func wordAlign(bitOffset, length int64) wordPlan {
	if length == 0 {
		return wordPlan{trailingBitOffset: bitOffset}
	}

	// nextByte is the first byte boundary at or after bitOffset; it can be
	// bitOffset's own byte only when bitOffset is already byte-aligned.
	nextByte := (bitOffset + 7) / 8
	alignedByteStart := (nextByte + 7) &^ 7 // round up to a multiple of 8 bytes
	leadingBits := alignedByteStart*8 - bitOffset
	if leadingBits > length {
		leadingBits = length
	}

	remaining := length - leadingBits
	alignedWords := remaining / 64
	trailingBitOffset := bitOffset + leadingBits + alignedWords*64

	return wordPlan{
		leadingBits:       leadingBits,
		alignedByteStart:  alignedByteStart,
		alignedWords:      alignedWords,
		trailingBitOffset: trailingBitOffset,
	}
}
