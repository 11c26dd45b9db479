// Command bitbench times the bitmap kernels over a generated fuzz corpus
// (a fixed offset/length sweep plus randomized cases), records the results to a
// benchmark ledger, persists run history to a local bbolt database, and
// renders an SVG bar chart — the CLI-side counterpart of the teacher's
// tools/bench SVG renderer, aimed at kernel timings instead of storage
// metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/felixge/fgprof"
	"github.com/gernest/bitkernel/internal/fuzzcorpus"
	"github.com/gernest/bitkernel/internal/ledger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/promslog"
	"go.etcd.io/bbolt"
	"golang.org/x/sync/errgroup"
)

var kernelNanos = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "bitkernel",
	Name:      "kernel_nanoseconds",
	Help:      "Nanoseconds per call, by kernel.",
	Buckets:   prometheus.ExponentialBuckets(10, 4, 10),
}, []string{"kernel"})

func main() {
	var (
		dbPath   = flag.String("db", "bitbench.db", "path to the bbolt run-history database")
		svgPath  = flag.String("svg", "", "if set, write an SVG bar chart of results here")
		profile  = flag.String("profile", "", "if set, write an fgprof profile to this path")
		workers  = flag.Int("workers", 4, "number of concurrent benchmark workers")
		corpusN  = flag.Int("corpus", 200, "number of randomized corpus cases beyond the fixed sweep")
		listen   = flag.String("listen", "", "if set, serve Prometheus metrics on this address instead of exiting")
		seed     = flag.Int64("seed", 1, "fuzz corpus random seed")
		corpusDB = flag.String("corpus-file", "", "if set, load/save the generated corpus from this compressed file")
	)
	flag.Parse()

	lo := promslog.New(&promslog.Config{})

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			lo.Error("create profile", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer stop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(kernelNanos)

	cases, err := loadOrGenerateCorpus(*corpusDB, *seed, *corpusN)
	if err != nil {
		lo.Error("build corpus", "err", err)
		os.Exit(1)
	}
	lo.Info("running benchmark", "cases", len(cases), "workers", *workers)

	recs, err := runBenchmark(cases, *workers)
	if err != nil {
		lo.Error("run benchmark", "err", err)
		os.Exit(1)
	}

	db, err := bbolt.Open(*dbPath, 0600, nil)
	if err != nil {
		lo.Error("open history db", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := saveHistory(db, recs); err != nil {
		lo.Error("save history", "err", err)
		os.Exit(1)
	}

	if *svgPath != "" {
		if err := writeSVG(*svgPath, recs); err != nil {
			lo.Error("write svg", "err", err)
			os.Exit(1)
		}
	}

	if *listen != "" {
		lo.Info("serving metrics", "addr", *listen)
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		if err := http.ListenAndServe(*listen, nil); err != nil {
			lo.Error("serve metrics", "err", err)
			os.Exit(1)
		}
	}
}

func loadOrGenerateCorpus(path string, seed int64, n int) ([]fuzzcorpus.Case, error) {
	if path != "" {
		if cases, err := fuzzcorpus.Load(path); err == nil {
			return cases, nil
		}
	}
	g := fuzzcorpus.NewGenerator(seed)
	cases := append(g.Sweep(), g.Random(n)...)
	if path != "" {
		if err := fuzzcorpus.Save(path, cases); err != nil {
			return nil, fmt.Errorf("save corpus: %w", err)
		}
	}
	return cases, nil
}

func runBenchmark(cases []fuzzcorpus.Case, workers int) (*ledger.Records, error) {
	results := make(chan ledger.Record, len(cases)*len(kernelVariants))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for _, c := range cases {
		c := c
		g.Go(func() error {
			for _, kv := range kernelVariants {
				d := timeKernel(kv, c)
				kernelNanos.WithLabelValues(kv.name).Observe(d)
				results <- ledger.Record{
					Key:        ledger.Key{Kernel: kv.name, Variant: variantFor(c)},
					NanosPerOp: d,
					BytesPerOp: int64(len(c.Data)),
				}
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(results)
	}()

	recs := ledger.NewRecords()
	for r := range results {
		recs = recs.Set(r.Key, r)
	}
	return recs, nil
}

func variantFor(c fuzzcorpus.Case) string {
	aligned := c.Offset%8 == 0 && c.DestOffset%8 == 0
	if aligned {
		return "aligned"
	}
	return "unaligned"
}

func saveHistory(db *bbolt.DB, recs *ledger.Records) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("history"))
		if err != nil {
			return err
		}
		it := recs.Iterator()
		buf := make([]byte, 4096)
		for {
			k, rec, ok := it.Next()
			if !ok {
				break
			}
			remaining, err := ledger.WriteRecord(buf, rec)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s/%s/%d", k.Kernel, k.Variant, time.Now().UnixNano())
			if err := b.Put([]byte(name), buf[:len(buf)-len(remaining)]); err != nil {
				return err
			}
		}
		return nil
	})
}
