package bitmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmapEqualsScenarioS4(t *testing.T) {
	data := make([]byte, 3)
	rand.New(rand.NewSource(5)).Read(data)
	other := append([]byte(nil), data...)

	require.True(t, BitmapEquals(data, 0, other, 0, 24))

	other[1] ^= 1 << 3
	require.False(t, BitmapEquals(data, 0, other, 0, 24))

	// neighboring bits must not be reported as mismatched.
	for i := int64(0); i < 24; i++ {
		if i == 11 {
			continue
		}
		require.True(t, BitmapEquals(data, i, other, i, 1), "bit %d should be unaffected", i)
	}
}

func TestBitmapEqualsEmpty(t *testing.T) {
	require.True(t, BitmapEquals(nil, 0, nil, 0, 0))
}

func TestBitmapEqualsReflexiveAndSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	data := make([]byte, 40)
	other := make([]byte, 40)
	rng.Read(data)
	rng.Read(other)

	for o := int64(0); o < 16; o++ {
		for _, n := range []int64{0, 1, 7, 8, 65, 129} {
			require.True(t, BitmapEquals(data, o, data, o, n))
			a := BitmapEquals(data, o, other, o, n)
			b := BitmapEquals(other, o, data, o, n)
			require.Equal(t, a, b)
		}
	}
}

func TestBitmapEqualsMatchesScalarSweep(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	left := make([]byte, 40)
	right := make([]byte, 40)
	rng.Read(left)
	rng.Read(right)

	lengths := []int64{0, 1, 7, 8, 9, 63, 64, 65, 127, 128, 129, 200}

	for lo := int64(0); lo < 16; lo++ {
		for ro := int64(0); ro < 16; ro++ {
			for _, n := range lengths {
				if lo+n > 300 || ro+n > 300 {
					continue
				}
				want := true
				for i := int64(0); i < n; i++ {
					if naiveGetBit(left, lo+i) != naiveGetBit(right, ro+i) {
						want = false
						break
					}
				}
				got := BitmapEquals(left, lo, right, ro, n)
				require.Equal(t, want, got, "lo=%d ro=%d n=%d", lo, ro, n)
			}
		}
	}
}
