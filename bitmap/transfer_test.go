package bitmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyBitmapScenarioS2(t *testing.T) {
	src := bitsFromString("10110100 11001010")
	dst := bitsFromString("00000000 00000000")
	before := append([]byte(nil), dst...)

	CopyBitmap(src, 3, 10, dst, 5, true)

	for i := int64(0); i < 10; i++ {
		require.Equal(t, naiveGetBit(src, 3+i), naiveGetBit(dst, 5+i), "bit %d", i)
	}
	for i := int64(0); i < 5; i++ {
		require.Equal(t, naiveGetBit(before, i), naiveGetBit(dst, i), "preserved bit %d", i)
	}
	for i := int64(15); i < 16; i++ {
		require.Equal(t, naiveGetBit(before, i), naiveGetBit(dst, i), "preserved bit %d", i)
	}
}

func TestInvertBitmapScenarioS3(t *testing.T) {
	src := bitsFromString("11110000")
	dst := bitsFromString("10101010")
	before := append([]byte(nil), dst...)

	InvertBitmap(src, 0, 5, dst, 2)

	for i := int64(0); i < 5; i++ {
		require.Equal(t, !naiveGetBit(src, i), naiveGetBit(dst, 2+i), "bit %d", i)
	}
	require.Equal(t, naiveGetBit(before, 0), naiveGetBit(dst, 0))
	require.Equal(t, naiveGetBit(before, 1), naiveGetBit(dst, 1))
	require.Equal(t, naiveGetBit(before, 7), naiveGetBit(dst, 7))
}

func TestCopyBitmapIdentitySweep(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	lengths := []int64{0, 1, 7, 8, 9, 63, 64, 65, 127, 128, 129, 1000}

	for o := int64(0); o < 16; o++ {
		for op := int64(0); op < 16; op++ {
			for _, n := range lengths {
				srcBytes := int((o + n + 7) / 8)
				dstBytes := int((op + n + 7) / 8)
				data := make([]byte, srcBytes+8)
				dst := make([]byte, dstBytes+8)
				rng.Read(data)
				rng.Read(dst)
				before := append([]byte(nil), dst...)

				CopyBitmap(data, o, n, dst, op, true)

				for i := int64(0); i < n; i++ {
					require.Equal(t, naiveGetBit(data, o+i), naiveGetBit(dst, op+i),
						"o=%d op=%d n=%d i=%d", o, op, n, i)
				}
				for i := int64(0); i < op; i++ {
					require.Equal(t, naiveGetBit(before, i), naiveGetBit(dst, i),
						"preserve-before o=%d op=%d n=%d i=%d", o, op, n, i)
				}
				for i := op + n; i < int64(len(dst))*8; i++ {
					require.Equal(t, naiveGetBit(before, i), naiveGetBit(dst, i),
						"preserve-after o=%d op=%d n=%d i=%d", o, op, n, i)
				}
			}
		}
	}
}

func TestDoubleInvertIsCopy(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lengths := []int64{0, 1, 7, 8, 9, 63, 64, 65, 127, 128, 129, 1000}

	for o := int64(0); o < 16; o++ {
		for _, n := range lengths {
			data := make([]byte, (o+n+7)/8+8)
			rng.Read(data)

			once := make([]byte, len(data))
			twice := make([]byte, len(data))

			InvertBitmap(data, o, n, once, o)
			InvertBitmap(once, o, n, twice, o)

			for i := int64(0); i < n; i++ {
				require.Equal(t, naiveGetBit(data, o+i), naiveGetBit(twice, o+i), "o=%d n=%d i=%d", o, n, i)
			}
		}
	}
}

func TestCopyBitmapAllocZeroTail(t *testing.T) {
	pool := newTestPool()
	rng := rand.New(rand.NewSource(4))

	for _, n := range []int64{0, 1, 7, 8, 65, 129, 1000} {
		data := make([]byte, n/8+8)
		rng.Read(data)

		buf, err := CopyBitmapAlloc(pool, data, 3, n)
		require.NoError(t, err)
		for i := int64(0); i < n; i++ {
			require.Equal(t, naiveGetBit(data, 3+i), naiveGetBit(buf.Bytes(), i), "n=%d i=%d", n, i)
		}
		for i := n; i < int64(len(buf.Bytes()))*8; i++ {
			require.False(t, naiveGetBit(buf.Bytes(), i), "tail bit %d of n=%d should be zero", i, n)
		}
	}
}
