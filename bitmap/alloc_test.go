package bitmap

import "github.com/gernest/bitkernel/alloc"

func newTestPool() *alloc.Pool {
	return alloc.NewPool()
}
