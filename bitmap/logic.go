package bitmap

import "math/bits"

// Op identifies a pairwise bitwise operation.
type Op int

const (
	OpAnd Op = iota
	OpOr
	OpXor
)

func (op Op) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	default:
		return "unknown"
	}
}

func (op Op) apply(a, b uint64) uint64 {
	switch op {
	case OpAnd:
		return a & b
	case OpOr:
		return a | b
	default:
		return a ^ b
	}
}

func (op Op) applyByte(a, b byte) byte {
	switch op {
	case OpAnd:
		return a & b
	case OpOr:
		return a | b
	default:
		return a ^ b
	}
}

func (op Op) applyBit(a, b bool) bool {
	switch op {
	case OpAnd:
		return a && b
	case OpOr:
		return a || b
	default:
		return a != b
	}
}

// And computes the bitwise AND of length bits of left starting at
// leftOffset with length bits of right starting at rightOffset, writing the
// result into out starting at outOffset. Bits of out outside
// [outOffset, outOffset+length) are preserved, except that the aligned fast
// path may overwrite out-of-range bits within a fringe byte shared with the
// target range; see spec.md §4.6/§9 for the clarified contract.
func And(left []byte, leftOffset int64, right []byte, rightOffset int64, length int64, out []byte, outOffset int64) {
	logicOp(OpAnd, left, leftOffset, right, rightOffset, length, out, outOffset)
}

// Or computes the bitwise OR; see And for the preservation contract.
func Or(left []byte, leftOffset int64, right []byte, rightOffset int64, length int64, out []byte, outOffset int64) {
	logicOp(OpOr, left, leftOffset, right, rightOffset, length, out, outOffset)
}

// Xor computes the bitwise XOR; see And for the preservation contract.
func Xor(left []byte, leftOffset int64, right []byte, rightOffset int64, length int64, out []byte, outOffset int64) {
	logicOp(OpXor, left, leftOffset, right, rightOffset, length, out, outOffset)
}

func logicOp(op Op, left []byte, leftOffset int64, right []byte, rightOffset int64, length int64, out []byte, outOffset int64) {
	if length == 0 {
		return
	}
	if leftOffset&7 == rightOffset&7 && rightOffset&7 == outOffset&7 {
		logicAligned(op, left, leftOffset, right, rightOffset, length, out, outOffset)
		return
	}
	logicUnaligned(op, left, leftOffset, right, rightOffset, length, out, outOffset)
}

// logicAligned implements the byte-wise fast path of spec.md §4.6: every
// byte touching any bit of the range is fully recomputed from op(left,
// right), including its fringe bits.
func logicAligned(op Op, left []byte, leftOffset int64, right []byte, rightOffset int64, length int64, out []byte, outOffset int64) {
	bit := leftOffset & 7
	lByte0 := leftOffset / 8
	rByte0 := rightOffset / 8
	oByte0 := outOffset / 8

	nBytes := (bit + length + 7) / 8
	for i := int64(0); i < nBytes; i++ {
		out[oByte0+i] = op.applyByte(left[lByte0+i], right[rByte0+i])
	}
}

// logicUnaligned implements the word-wise cross-shifted path of spec.md
// §4.6: a sliding window over left and right, combined with op, rotated
// into place in out, with the tail handled bit-by-bit via the reader/writer
// pair so out-of-range destination bits in the tail's fringe byte stay
// untouched.
func logicUnaligned(op Op, left []byte, leftOffset int64, right []byte, rightOffset int64, length int64, out []byte, outOffset int64) {
	leftBit := uint(leftOffset & 7)
	rightBit := uint(rightOffset & 7)
	outBit := uint(outOffset & 7)

	minOffset := leftBit
	if rightBit < minOffset {
		minOffset = rightBit
	}
	if outBit < minOffset {
		minOffset = outBit
	}

	nwords := (length + int64(minOffset)) / 64

	lByte := leftOffset / 8
	rByte := rightOffset / 8
	oByte := outOffset / 8

	remaining := length

	if nwords > 1 {
		lCur := loadWord(left, lByte)
		rCur := loadWord(right, rByte)
		iters := nwords - 1
		for i := int64(0); i < iters; i++ {
			lNext := loadWord(left, lByte+8)
			rNext := loadWord(right, rByte+8)
			leftWord := shiftWord(lCur, lNext, leftBit)
			rightWord := shiftWord(rCur, rNext, rightBit)
			lCur, rCur = lNext, rNext
			lByte += 8
			rByte += 8

			outWord := op.apply(leftWord, rightWord)

			if outBit == 0 {
				storeWord(out, oByte, outWord)
			} else {
				rotated := bits.RotateLeft64(outWord, int(outBit))
				outMask := uint64(1<<outBit - 1)
				cur := loadWord(out, oByte)
				next := loadWord(out, oByte+8)
				cur = cur&outMask | rotated&^outMask
				next = next&^outMask | rotated&outMask
				storeWord(out, oByte, cur)
				storeWord(out, oByte+8, next)
			}
			oByte += 8
			remaining -= 64
		}
	}

	tailLen := remaining
	lOff := leftOffset + (length - tailLen)
	rOff := rightOffset + (length - tailLen)
	oOff := outOffset + (length - tailLen)
	logicTail(op, left, lOff, right, rOff, tailLen, out, oOff)
}

func logicTail(op Op, left []byte, leftOffset int64, right []byte, rightOffset int64, length int64, out []byte, outOffset int64) {
	if length == 0 {
		return
	}
	lr := NewReader(left, leftOffset, length)
	rr := NewReader(right, rightOffset, length)
	w := NewWriter(out, outOffset, length)
	for i := int64(0); i < length; i++ {
		w.Set(op.applyBit(lr.IsSet(), rr.IsSet()))
		lr.Next()
		rr.Next()
	}
	w.Finish()
}
