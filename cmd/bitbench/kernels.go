package main

import (
	"time"

	"github.com/gernest/bitkernel/alloc"
	"github.com/gernest/bitkernel/bitmap"
	"github.com/gernest/bitkernel/internal/fuzzcorpus"
)

var pool = alloc.NewPool()

type kernelVariant struct {
	name string
	run  func(c fuzzcorpus.Case)
}

var kernelVariants = []kernelVariant{
	{"popcount", func(c fuzzcorpus.Case) {
		bitmap.CountSetBits(c.Data, c.Offset, c.Length)
	}},
	{"copy", func(c fuzzcorpus.Case) {
		dst := make([]byte, len(c.Data))
		bitmap.CopyBitmap(c.Data, c.Offset, c.Length, dst, c.DestOffset, true)
	}},
	{"invert", func(c fuzzcorpus.Case) {
		dst := make([]byte, len(c.Data))
		bitmap.InvertBitmap(c.Data, c.Offset, c.Length, dst, c.DestOffset)
	}},
	{"equals", func(c fuzzcorpus.Case) {
		bitmap.BitmapEquals(c.Data, c.Offset, c.Data, c.DestOffset, c.Length)
	}},
	{"and", func(c fuzzcorpus.Case) {
		out := make([]byte, len(c.Data))
		bitmap.And(c.Data, c.Offset, c.Data, c.DestOffset, c.Length, out, 0)
	}},
	{"or", func(c fuzzcorpus.Case) {
		out := make([]byte, len(c.Data))
		bitmap.Or(c.Data, c.Offset, c.Data, c.DestOffset, c.Length, out, 0)
	}},
	{"xor", func(c fuzzcorpus.Case) {
		out := make([]byte, len(c.Data))
		bitmap.Xor(c.Data, c.Offset, c.Data, c.DestOffset, c.Length, out, 0)
	}},
	{"copy_alloc", func(c fuzzcorpus.Case) {
		buf, err := bitmap.CopyBitmapAlloc(pool, c.Data, c.Offset, c.Length)
		if err == nil {
			pool.Release(buf)
		}
	}},
}

const repsPerCase = 50

// timeKernel runs kv repsPerCase times over c and returns the mean
// nanoseconds per call.
func timeKernel(kv kernelVariant, c fuzzcorpus.Case) float64 {
	start := time.Now()
	for i := 0; i < repsPerCase; i++ {
		kv.run(c)
	}
	elapsed := time.Since(start)
	return float64(elapsed.Nanoseconds()) / float64(repsPerCase)
}
