package bitmap

import "bytes"

// BitmapEquals reports whether the length-bit ranges of left starting at
// leftOffset and right starting at rightOffset hold identical bit values.
// It performs no allocation and writes nothing. Length 0 always compares
// equal.
func BitmapEquals(left []byte, leftOffset int64, right []byte, rightOffset int64, length int64) bool {
	if length == 0 {
		return true
	}
	if leftOffset&7 == 0 && rightOffset&7 == 0 {
		return equalsAligned(left, leftOffset, right, rightOffset, length)
	}
	return equalsUnaligned(left, leftOffset, right, rightOffset, length)
}

func equalsAligned(left []byte, leftOffset int64, right []byte, rightOffset int64, length int64) bool {
	nBytes := length / 8
	lByte := leftOffset / 8
	rByte := rightOffset / 8

	if !bytes.Equal(left[lByte:lByte+nBytes], right[rByte:rByte+nBytes]) {
		return false
	}

	trailing := length - nBytes*8
	if trailing == 0 {
		return true
	}
	mask := byte(1<<uint(trailing) - 1)
	return left[lByte+nBytes]&mask == right[rByte+nBytes]&mask
}

func equalsUnaligned(left []byte, leftOffset int64, right []byte, rightOffset int64, length int64) bool {
	lBit := uint(leftOffset & 7)
	rBit := uint(rightOffset & 7)
	lByte := leftOffset / 8
	rByte := rightOffset / 8

	iters := length/64 - 1
	if iters < 0 {
		iters = 0
	}

	remaining := length

	if iters > 0 {
		lCur := loadWord(left, lByte)
		rCur := loadWord(right, rByte)
		for i := int64(0); i < iters; i++ {
			lNext := loadWord(left, lByte+8)
			rNext := loadWord(right, rByte+8)
			lWord := shiftWord(lCur, lNext, lBit)
			rWord := shiftWord(rCur, rNext, rBit)
			if lWord != rWord {
				return false
			}
			lCur, rCur = lNext, rNext
			lByte += 8
			rByte += 8
			remaining -= 64
		}
	}

	tailLen := remaining
	lOff := leftOffset + (length - tailLen)
	rOff := rightOffset + (length - tailLen)
	return equalsScalar(left, lOff, right, rOff, tailLen)
}

func equalsScalar(left []byte, leftOffset int64, right []byte, rightOffset int64, length int64) bool {
	if length == 0 {
		return true
	}
	lr := NewReader(left, leftOffset, length)
	rr := NewReader(right, rightOffset, length)
	for i := int64(0); i < length; i++ {
		if lr.IsSet() != rr.IsSet() {
			return false
		}
		lr.Next()
		rr.Next()
	}
	return true
}
