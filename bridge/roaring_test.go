package bridge_test

import (
	"math/rand"
	"testing"

	"github.com/gernest/bitkernel/alloc"
	"github.com/gernest/bitkernel/bitmap"
	"github.com/gernest/bitkernel/bridge"
	"github.com/stretchr/testify/require"
)

func TestExportImportRoaringRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	data := make([]byte, 20)
	rng.Read(data)

	const n = int64(100)
	bm := bridge.ExportRoaring(data, 0, n)

	pool := alloc.NewPool()
	buf, err := bridge.ImportRoaring(pool, bm, n)
	require.NoError(t, err)

	require.True(t, bitmap.BitmapEquals(data, 0, buf.Bytes(), 0, n))
}

func TestExportRoaringCountMatchesPopcount(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	data := make([]byte, 20)
	rng.Read(data)

	bm := bridge.ExportRoaring(data, 3, 130)
	require.EqualValues(t, bitmap.CountSetBits(data, 3, 130), bm.Count())
}
