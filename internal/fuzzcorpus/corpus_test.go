package fuzzcorpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gernest/bitkernel/internal/fuzzcorpus"
	"github.com/stretchr/testify/require"
)

func TestSweepCoversOffsetLengthMatrix(t *testing.T) {
	g := fuzzcorpus.NewGenerator(1)
	cases := g.Sweep()
	require.Len(t, cases, len(fuzzcorpus.Offsets)*len(fuzzcorpus.Offsets)*len(fuzzcorpus.Lengths))
	for _, c := range cases {
		require.GreaterOrEqual(t, int64(len(c.Data))*8, c.Offset+c.DestOffset+c.Length)
	}
}

func TestRandomCasesDeduped(t *testing.T) {
	g := fuzzcorpus.NewGenerator(2)
	cases := g.Random(50)
	require.Len(t, cases, 50)

	seen := make(map[string]bool)
	for _, c := range cases {
		require.False(t, seen[string(c.Data)], "duplicate payload")
		seen[string(c.Data)] = true
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := fuzzcorpus.NewGenerator(3)
	cases := g.Random(5)

	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.mlz")
	require.NoError(t, fuzzcorpus.Save(path, cases))

	got, err := fuzzcorpus.Load(path)
	require.NoError(t, err)
	require.Equal(t, cases, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}
