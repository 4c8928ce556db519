package sandpile

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Strategy selects how topplings are scheduled.
type Strategy string

const (
	// Sync topples every unstable cell of a sweep at once into a fresh buffer.
	Sync Strategy = "sync"
	// Async topples cells in place in row-major order, so grains moved earlier
	// in a sweep are seen by later cells of the same sweep.
	Async Strategy = "async"
	// Parallel computes synchronous sweeps with row bands spread over goroutines.
	Parallel Strategy = "parallel"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{Sync, Async, Parallel}

// ParseStrategy maps a name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case Sync, Async, Parallel:
		return st, nil
	}
	return "", fmt.Errorf("sandpile: unknown strategy %q (want sync, async or parallel)", s)
}

// Result describes one stabilization run.
type Result struct {
	Strategy Strategy
	Width    int
	Height   int
	Sweeps   int // sweeps over the board that toppled at least one cell
	Elapsed  time.Duration
}

// Stabilize topples b in place until it is stable. workers only applies to
// the Parallel strategy; values <= 0 use GOMAXPROCS. The context is checked
// between sweeps.
func Stabilize(ctx context.Context, b *Board, strategy Strategy, workers int) (Result, error) {
	res := Result{Strategy: strategy, Width: b.Width, Height: b.Height}
	start := time.Now()
	var err error
	switch strategy {
	case Sync:
		res.Sweeps, err = stabilizeSync(ctx, b)
	case Async:
		res.Sweeps, err = stabilizeAsync(ctx, b)
	case Parallel:
		res.Sweeps, err = stabilizeParallel(ctx, b, workers)
	default:
		err = fmt.Errorf("sandpile: unknown strategy %q", strategy)
	}
	res.Elapsed = time.Since(start)
	return res, err
}

func stabilizeSync(ctx context.Context, b *Board) (int, error) {
	next := make([]int, len(b.cells))
	w, h := b.Width, b.Height
	sweeps := 0
	for {
		if err := ctx.Err(); err != nil {
			return sweeps, err
		}
		for k := range next {
			next[k] = 0
		}
		changed := false
		for i := 0; i < h; i++ {
			for j := 0; j < w; j++ {
				v := b.cells[i*w+j]
				if v < Threshold {
					next[i*w+j] += v
					continue
				}
				changed = true
				give := v / Threshold
				next[i*w+j] += v % Threshold
				if i > 0 {
					next[(i-1)*w+j] += give
				}
				if i < h-1 {
					next[(i+1)*w+j] += give
				}
				if j > 0 {
					next[i*w+j-1] += give
				}
				if j < w-1 {
					next[i*w+j+1] += give
				}
			}
		}
		b.cells, next = next, b.cells
		if !changed {
			return sweeps, nil
		}
		sweeps++
	}
}

// toppleAt topples a single cell in place and reports whether it was unstable.
func (b *Board) toppleAt(i, j int) bool {
	w := b.Width
	v := b.cells[i*w+j]
	if v < Threshold {
		return false
	}
	give := v / Threshold
	if j > 0 {
		b.cells[i*w+j-1] += give
	}
	if j < w-1 {
		b.cells[i*w+j+1] += give
	}
	if i > 0 {
		b.cells[(i-1)*w+j] += give
	}
	if i < b.Height-1 {
		b.cells[(i+1)*w+j] += give
	}
	b.cells[i*w+j] = v % Threshold
	return true
}

func stabilizeAsync(ctx context.Context, b *Board) (int, error) {
	sweeps := 0
	for {
		if err := ctx.Err(); err != nil {
			return sweeps, err
		}
		changed := false
		for i := 0; i < b.Height; i++ {
			for j := 0; j < b.Width; j++ {
				if b.toppleAt(i, j) {
					changed = true
				}
			}
		}
		if !changed {
			return sweeps, nil
		}
		sweeps++
	}
}

// gatherRows fills next[lo*w:hi*w] from cur. Each target cell only reads cur,
// so disjoint row bands can be computed concurrently.
func gatherRows(cur, next []int, w, h, lo, hi int) bool {
	changed := false
	for i := lo; i < hi; i++ {
		for j := 0; j < w; j++ {
			v := cur[i*w+j]
			if v >= Threshold {
				changed = true
				v %= Threshold
			}
			if i > 0 && cur[(i-1)*w+j] >= Threshold {
				v += cur[(i-1)*w+j] / Threshold
			}
			if i < h-1 && cur[(i+1)*w+j] >= Threshold {
				v += cur[(i+1)*w+j] / Threshold
			}
			if j > 0 && cur[i*w+j-1] >= Threshold {
				v += cur[i*w+j-1] / Threshold
			}
			if j < w-1 && cur[i*w+j+1] >= Threshold {
				v += cur[i*w+j+1] / Threshold
			}
			next[i*w+j] = v
		}
	}
	return changed
}

func stabilizeParallel(ctx context.Context, b *Board, workers int) (int, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > b.Height {
		workers = b.Height
	}
	w, h := b.Width, b.Height
	next := make([]int, len(b.cells))
	bandChanged := make([]bool, workers)
	sweeps := 0
	for {
		g, gctx := errgroup.WithContext(ctx)
		cur := b.cells
		for k := 0; k < workers; k++ {
			k := k
			lo := k * h / workers
			hi := (k + 1) * h / workers
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				bandChanged[k] = gatherRows(cur, next, w, h, lo, hi)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return sweeps, err
		}
		b.cells, next = next, b.cells
		changed := false
		for _, c := range bandChanged {
			changed = changed || c
		}
		if !changed {
			return sweeps, nil
		}
		sweeps++
	}
}
