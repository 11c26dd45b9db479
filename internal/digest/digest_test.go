package digest_test

import (
	"testing"

	"github.com/gernest/bitkernel/internal/digest"
	"github.com/stretchr/testify/require"
)

func TestFingerprintDeterministic(t *testing.T) {
	data := []byte("bitkernel fuzz corpus entry")
	lo1, hi1 := digest.Fingerprint(data)
	lo2, hi2 := digest.Fingerprint(data)
	require.Equal(t, lo1, lo2)
	require.Equal(t, hi1, hi2)
}

func TestFingerprintDiffersOnChange(t *testing.T) {
	a := []byte("case one")
	b := []byte("case two")
	lo1, hi1 := digest.Fingerprint(a)
	lo2, hi2 := digest.Fingerprint(b)
	require.False(t, lo1 == lo2 && hi1 == hi2)
}
