// Package ledger records benchmark timings for the bitmap kernels in an
// immutable sorted map, adapted from the teacher's rbf/records.go, which
// tracked (column, shard) -> page root records for a storage engine. Here
// the same Key/Record/codec shape tracks (kernel, variant) -> timing.
package ledger

import (
	"bytes"
	"cmp"
	"io"
	"unsafe"

	"github.com/benbjohnson/immutable"
)

const recordSize = int(unsafe.Sizeof(rawRecord{}))

// Key identifies one benchmark case.
type Key struct {
	Kernel  string
	Variant string
}

// Record is one timing observation for a Key.
type Record struct {
	Key        Key
	NanosPerOp float64
	BytesPerOp int64
}

// rawRecord is the fixed-size encoding of a Record used by WriteRecord and
// ReadRecord. Kernel/Variant are encoded as fixed-width byte arrays rather
// than Go strings so the struct has no pointers and can be reinterpreted
// via unsafe.Pointer, exactly as rbf/records.go does for its Record type.
type rawRecord struct {
	Kernel     [32]byte
	Variant    [32]byte
	NanosPerOp float64
	BytesPerOp int64
}

func toRaw(r Record) rawRecord {
	var raw rawRecord
	copy(raw.Kernel[:], r.Key.Kernel)
	copy(raw.Variant[:], r.Key.Variant)
	raw.NanosPerOp = r.NanosPerOp
	raw.BytesPerOp = r.BytesPerOp
	return raw
}

func fromRaw(raw rawRecord) Record {
	return Record{
		Key: Key{
			Kernel:  trimZero(raw.Kernel[:]),
			Variant: trimZero(raw.Variant[:]),
		},
		NanosPerOp: raw.NanosPerOp,
		BytesPerOp: raw.BytesPerOp,
	}
}

func trimZero(b []byte) string {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return string(b)
	}
	return string(b[:i])
}

// WriteRecord copies rec's encoding to data and returns the remaining
// slice.
func WriteRecord(data []byte, rec Record) (remaining []byte, err error) {
	if len(data) < recordSize {
		return data, io.ErrShortBuffer
	}
	raw := toRaw(rec)
	r := (*rawRecord)(unsafe.Pointer(&data[0]))
	*r = raw
	return data[recordSize:], nil
}

// ReadRecord decodes one Record from data and returns the remaining slice.
func ReadRecord(data []byte) (rec Record, remaining []byte, err error) {
	if len(data) < recordSize {
		return Record{}, data, io.ErrUnexpectedEOF
	}
	r := (*rawRecord)(unsafe.Pointer(&data[0]))
	return fromRaw(*r), data[recordSize:], nil
}

// CompareKey orders Keys by kernel then variant.
type CompareKey struct{}

func (CompareKey) Compare(a, b Key) int {
	if c := cmp.Compare(a.Kernel, b.Kernel); c != 0 {
		return c
	}
	return cmp.Compare(a.Variant, b.Variant)
}

// Records is an immutable mapping of benchmark Key to its latest Record.
type Records = immutable.SortedMap[Key, Record]

// NewRecords returns an empty Records ledger.
func NewRecords() *Records {
	return immutable.NewSortedMap[Key, Record](CompareKey{})
}
