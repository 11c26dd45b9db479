package bitmap

import "github.com/gernest/bitkernel/alloc"

// CopyBitmapAlloc copies length bits of data starting at offset into a
// freshly allocated buffer. The returned buffer's bit i equals
// get_bit(data, offset+i) for i in [0, length) and reads 0 for every bit at
// or beyond length.
func CopyBitmapAlloc(pool *alloc.Pool, data []byte, offset, length int64) (*alloc.Buffer, error) {
	buf, err := pool.Allocate(length)
	if err != nil {
		return nil, err
	}
	CopyBitmap(data, offset, length, buf.Bytes(), 0, false)
	return buf, nil
}

// InvertBitmapAlloc is the allocating, complementing counterpart of
// CopyBitmapAlloc.
func InvertBitmapAlloc(pool *alloc.Pool, data []byte, offset, length int64) (*alloc.Buffer, error) {
	buf, err := pool.Allocate(length)
	if err != nil {
		return nil, err
	}
	transfer(data, offset, length, buf.Bytes(), 0, true, false)
	return buf, nil
}

// AndAlloc computes the bitwise AND into a freshly allocated buffer holding
// length+outOffset bits; bits below outOffset and at or beyond
// outOffset+length read as 0.
func AndAlloc(pool *alloc.Pool, left []byte, leftOffset int64, right []byte, rightOffset int64, length, outOffset int64) (*alloc.Buffer, error) {
	return logicAllocOp(OpAnd, pool, left, leftOffset, right, rightOffset, length, outOffset)
}

// OrAlloc is the allocating OR counterpart of AndAlloc.
func OrAlloc(pool *alloc.Pool, left []byte, leftOffset int64, right []byte, rightOffset int64, length, outOffset int64) (*alloc.Buffer, error) {
	return logicAllocOp(OpOr, pool, left, leftOffset, right, rightOffset, length, outOffset)
}

// XorAlloc is the allocating XOR counterpart of AndAlloc.
func XorAlloc(pool *alloc.Pool, left []byte, leftOffset int64, right []byte, rightOffset int64, length, outOffset int64) (*alloc.Buffer, error) {
	return logicAllocOp(OpXor, pool, left, leftOffset, right, rightOffset, length, outOffset)
}

func logicAllocOp(op Op, pool *alloc.Pool, left []byte, leftOffset int64, right []byte, rightOffset int64, length, outOffset int64) (*alloc.Buffer, error) {
	buf, err := pool.Allocate(length + outOffset)
	if err != nil {
		return nil, err
	}
	out := buf.Bytes()
	logicOp(op, left, leftOffset, right, rightOffset, length, out, outOffset)
	if length > 0 {
		// The aligned path recomputes whole fringe bytes; clear the bits
		// outside [outOffset, outOffset+length) so they read as 0.
		if lead := outOffset & 7; lead != 0 {
			out[outOffset>>3] &^= byte(1<<uint(lead) - 1)
		}
		zeroTrailingBits(out, outOffset+length)
	}
	return buf, nil
}
