package bitmap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderMatchesGetBit(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	data := make([]byte, 20)
	rng.Read(data)

	for _, o := range []int64{0, 1, 7, 8, 9} {
		n := int64(100)
		r := NewReader(data, o, n)
		for i := int64(0); i < n; i++ {
			require.Equal(t, naiveGetBit(data, o+i), r.IsSet(), "o=%d i=%d", o, i)
			r.Next()
		}
	}
}

func TestWriterFinishPreservesTail(t *testing.T) {
	dest := make([]byte, 4)
	for i := range dest {
		dest[i] = 0xaa
	}
	before := append([]byte(nil), dest...)

	w := NewWriter(dest, 3, 5)
	for i := 0; i < 5; i++ {
		w.Set(true)
	}
	w.Finish()

	for i := int64(0); i < 3; i++ {
		require.Equal(t, naiveGetBit(before, i), naiveGetBit(dest, i))
	}
	for i := int64(3); i < 8; i++ {
		require.True(t, naiveGetBit(dest, i))
	}
	for i := int64(8); i < 32; i++ {
		require.Equal(t, naiveGetBit(before, i), naiveGetBit(dest, i))
	}
}
