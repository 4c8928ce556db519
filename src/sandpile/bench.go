package sandpile

import (
	"context"
	"fmt"

	"github.com/dinnycodes/Abelian-Sandpile/src/logging"
	"github.com/dinnycodes/Abelian-Sandpile/src/perf"
)

// Benchmark stabilizes an NxN board filled with init grains for every size,
// once synchronously and once asynchronously, and returns the timings in
// seconds in the order of sizes.
func Benchmark(ctx context.Context, sizes []int, init int) (perf.DataSet, error) {
	ds := make(perf.DataSet, 0, len(sizes))
	for _, n := range sizes {
		rec := perf.Record{GridSize: n}
		for _, st := range []Strategy{Sync, Async} {
			b, err := New(n, n)
			if err != nil {
				return nil, err
			}
			b.Fill(init)
			res, err := Stabilize(ctx, b, st, 0)
			if err != nil {
				return nil, fmt.Errorf("benchmark %dx%d %s: %w", n, n, st, err)
			}
			logging.Infof("benchmark %dx%d %s: %d sweeps in %s", n, n, st, res.Sweeps, res.Elapsed)
			if st == Sync {
				rec.SyncTime = res.Elapsed.Seconds()
			} else {
				rec.AsyncTime = res.Elapsed.Seconds()
			}
		}
		ds = append(ds, rec)
	}
	return ds, nil
}
