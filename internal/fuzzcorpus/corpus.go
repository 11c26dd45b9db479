// Package fuzzcorpus generates and caches the randomized offset/length
// cases used to exercise the bitmap kernels beyond spec.md §8's fixed
// sweep. It persists the generated corpus to disk, compressed, so repeated
// test or benchmark runs reuse the same cases instead of regenerating them
// — this is test tooling, not a bitmap serialization format; what is
// cached here is the list of (offset, length, destOffset) cases and random
// payload bytes, never a production bitmap's semantic content.
package fuzzcorpus

import (
	"math/rand"

	"github.com/gernest/bitkernel/internal/digest"
)

// Case is one randomized kernel exercise: a source and destination bit
// offset plus a length, together with the payload bytes to run it against.
type Case struct {
	Offset     int64
	DestOffset int64
	Length     int64
	Data       []byte
}

// Generator produces Cases with random payloads, using digest.Fingerprint of
// each payload to detect one it has already emitted; a repeated payload has
// its first byte flipped once before it is recorded. Offsets and length are
// not part of the fingerprint.
type Generator struct {
	rng  *rand.Rand
	seen map[[2]uint64]bool
}

// NewGenerator returns a Generator seeded deterministically so repeated
// runs without a persisted corpus still produce a stable case set.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seen: make(map[[2]uint64]bool),
	}
}

// Offsets is the offset/destOffset sweep range required by spec.md §8
// property 10.
var Offsets = rangeN(16)

// Lengths is the length set required by spec.md §8 property 10.
var Lengths = []int64{0, 1, 7, 8, 9, 63, 64, 65, 127, 128, 129, 1000}

func rangeN(n int64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i)
	}
	return out
}

// Sweep returns every (offset, destOffset, length) triple from spec.md §8
// property 10, each paired with freshly generated random payload bytes
// large enough for the widest offset used.
func (g *Generator) Sweep() []Case {
	var out []Case
	for _, o := range Offsets {
		for _, do := range Offsets {
			for _, n := range Lengths {
				out = append(out, g.newCase(o, do, n))
			}
		}
	}
	return out
}

// Random returns n additional randomized cases beyond the fixed sweep,
// with offsets and lengths drawn from a wider distribution, deduplicated
// against every case already produced by this Generator.
func (g *Generator) Random(n int) []Case {
	out := make([]Case, n)
	for i := range out {
		o := int64(g.rng.Intn(64))
		do := int64(g.rng.Intn(64))
		length := int64(g.rng.Intn(4096))
		out[i] = g.newCase(o, do, length)
	}
	return out
}

func (g *Generator) newCase(offset, destOffset, length int64) Case {
	need := (offset + destOffset + length + 7) / 8
	if need < 16 {
		need = 16
	}
	data := make([]byte, need+8)
	g.rng.Read(data)

	lo, hi := digest.Fingerprint(data)
	key := [2]uint64{lo, hi}
	if g.seen[key] {
		// Extremely unlikely for random payloads; perturb the payload once.
		// The perturbed payload is not checked again.
		data[0] ^= 0xff
		lo, hi = digest.Fingerprint(data)
		key = [2]uint64{lo, hi}
	}
	g.seen[key] = true

	return Case{Offset: offset, DestOffset: destOffset, Length: length, Data: data}
}
