// Package alloc provides the zero-initialized byte buffer pool that backs
// the allocating variants of the bitmap kernels. It is the "memory
// allocator" collaborator spec.md declares out of scope for the core but
// still requires for allocate_empty_bitmap to exist at all.
//
// The free list is indexed by buffer capacity with a btree so Allocate can
// satisfy a request from any previously released buffer of adequate size,
// not just one of the exact size, adapted from the teacher's
// internal/pools and storage/buffer sync.Pool wrappers.
package alloc

import (
	"fmt"
	"sync"

	"github.com/google/btree"
	"github.com/pkg/errors"
)

// maxBits bounds the largest bitmap this pool will attempt to allocate,
// guarding against accidental overflow of the byte-length computation.
const maxBits = int64(1) << 40

// AllocationFailure is the only error kind the allocating kernel variants
// can return, per spec.md §7.
type AllocationFailure struct {
	NumBits int64
}

func (e *AllocationFailure) Error() string {
	return fmt.Sprintf("alloc: cannot allocate bitmap of %d bits", e.NumBits)
}

// Buffer is an owned, zero-initialized byte buffer with a known bit
// capacity. It must be obtained from a Pool and returned via Pool.Release.
type Buffer struct {
	b       []byte
	numBits int64
}

// Bytes returns the buffer's backing storage, exactly
// ceil(NumBits()/8) bytes long.
func (b *Buffer) Bytes() []byte { return b.b }

// NumBits returns the bit capacity the buffer was allocated for.
func (b *Buffer) NumBits() int64 { return b.numBits }

type sizeClass struct {
	capacity int64
	free     [][]byte
}

func (s *sizeClass) Less(than btree.Item) bool {
	return s.capacity < than.(*sizeClass).capacity
}

// Pool is a free-list of zero-initialized byte buffers bucketed by byte
// capacity. It is safe for concurrent use.
type Pool struct {
	mu   sync.Mutex
	tree *btree.BTree
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{tree: btree.New(8)}
}

// Allocate returns a zero-filled Buffer of at least ceil(numBits/8) bytes,
// satisfying a previously released buffer of adequate capacity when one is
// available. Bits outside [0, numBits) read as 0.
func (p *Pool) Allocate(numBits int64) (*Buffer, error) {
	if numBits < 0 || numBits > maxBits {
		return nil, errors.Wrap(&AllocationFailure{NumBits: numBits}, "alloc: invalid bit count")
	}
	need := (numBits + 7) / 8

	buf := p.takeFree(need)
	if buf == nil {
		buf = make([]byte, need)
	} else {
		clear(buf)
		buf = buf[:need]
	}
	return &Buffer{b: buf, numBits: numBits}, nil
}

func (p *Pool) takeFree(need int64) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	var found *sizeClass
	p.tree.AscendGreaterOrEqual(&sizeClass{capacity: need}, func(i btree.Item) bool {
		sc := i.(*sizeClass)
		if len(sc.free) == 0 {
			return true
		}
		found = sc
		return false
	})
	if found == nil || len(found.free) == 0 {
		return nil
	}
	buf := found.free[len(found.free)-1]
	found.free = found.free[:len(found.free)-1]
	return buf
}

// Release returns buf to the pool for reuse. buf must not be used after
// Release returns.
func (p *Pool) Release(buf *Buffer) {
	if buf == nil || buf.b == nil {
		return
	}
	full := buf.b[:cap(buf.b)]
	clear(full)

	p.mu.Lock()
	defer p.mu.Unlock()

	key := &sizeClass{capacity: int64(cap(buf.b))}
	item := p.tree.Get(key)
	sc, ok := item.(*sizeClass)
	if !ok {
		sc = key
		p.tree.ReplaceOrInsert(sc)
	}
	sc.free = append(sc.free, full)
	buf.b = nil
}
