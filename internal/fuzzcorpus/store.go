package fuzzcorpus

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"sync"

	"github.com/minio/minlz"
)

// compressPool pools minlz readers and writers, adapted from the teacher's
// storage/compress/compress.go, which pooled the same types for page
// compression; here they compress a saved corpus file instead of a
// production bitmap page.
type compressPool struct {
	read  sync.Pool
	write sync.Pool
}

func (p *compressPool) getReader(r io.Reader) *minlz.Reader {
	if v := p.read.Get(); v != nil {
		rd := v.(*minlz.Reader)
		rd.Reset(r)
		return rd
	}
	return minlz.NewReader(r)
}

func (p *compressPool) putReader(r *minlz.Reader) {
	r.Reset(nil)
	p.read.Put(r)
}

func (p *compressPool) getWriter(w io.Writer) *minlz.Writer {
	if v := p.write.Get(); v != nil {
		wr := v.(*minlz.Writer)
		wr.Reset(w)
		return wr
	}
	return minlz.NewWriter(w)
}

func (p *compressPool) putWriter(w *minlz.Writer) {
	w.Reset(nil)
	p.write.Put(w)
}

var pool compressPool

// Save persists cases to path, compressed with minlz. The on-disk format is
// a simple length-prefixed record stream; it exists purely to avoid
// re-running Generator between test invocations and is never read by the
// bitmap package itself.
func Save(path string, cases []Case) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := pool.getWriter(f)
	defer pool.putWriter(w)
	bw := bufio.NewWriter(w)

	var hdr [32]byte
	for _, c := range cases {
		binary.LittleEndian.PutUint64(hdr[0:8], uint64(c.Offset))
		binary.LittleEndian.PutUint64(hdr[8:16], uint64(c.DestOffset))
		binary.LittleEndian.PutUint64(hdr[16:24], uint64(c.Length))
		binary.LittleEndian.PutUint64(hdr[24:32], uint64(len(c.Data)))
		if _, err := bw.Write(hdr[:]); err != nil {
			return err
		}
		if _, err := bw.Write(c.Data); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return w.Close()
}

// Load reads back a corpus written by Save.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := pool.getReader(f)
	defer pool.putReader(r)
	br := bufio.NewReader(r)

	var out []Case
	var hdr [32]byte
	for {
		if _, err := io.ReadFull(br, hdr[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		c := Case{
			Offset:     int64(binary.LittleEndian.Uint64(hdr[0:8])),
			DestOffset: int64(binary.LittleEndian.Uint64(hdr[8:16])),
			Length:     int64(binary.LittleEndian.Uint64(hdr[16:24])),
		}
		n := binary.LittleEndian.Uint64(hdr[24:32])
		c.Data = make([]byte, n)
		if _, err := io.ReadFull(br, c.Data); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
