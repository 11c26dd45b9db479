// Package bridge converts between bitkernel's raw bit ranges and
// github.com/gernest/roaring bitmaps. It exists to cross-check the raw
// kernels against a separate, container-based bitmap implementation and to
// let callers hand a bit range to code that already speaks roaring; it is
// not part of the core kernel surface and the bitmap package itself never
// imports it.
package bridge

import (
	"github.com/gernest/bitkernel/alloc"
	"github.com/gernest/bitkernel/bitmap"
	"github.com/gernest/roaring"
)

// ExportRoaring walks length bits of data starting at offset and returns a
// roaring bitmap with bit i set for every i in [0, length) where
// get_bit(data, offset+i) is set.
func ExportRoaring(data []byte, offset, length int64) *roaring.Bitmap {
	if length == 0 {
		return roaring.NewBitmap()
	}
	var set []uint64
	r := bitmap.NewReader(data, offset, length)
	for i := int64(0); i < length; i++ {
		if r.IsSet() {
			set = append(set, uint64(i))
		}
		r.Next()
	}
	return roaring.NewBitmap(set...)
}

// ImportRoaring is the inverse of ExportRoaring: it allocates a numBits-bit
// buffer from pool and sets bit i whenever bm's set-bit slice contains i,
// for every i in [0, numBits).
func ImportRoaring(pool *alloc.Pool, bm *roaring.Bitmap, numBits int64) (*alloc.Buffer, error) {
	buf, err := pool.Allocate(numBits)
	if err != nil {
		return nil, err
	}
	if numBits == 0 {
		return buf, nil
	}
	dst := buf.Bytes()
	for _, v := range bm.Slice() {
		if int64(v) >= numBits {
			continue
		}
		dst[v/8] |= 1 << (v % 8)
	}
	return buf, nil
}
