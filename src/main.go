// Sandpile simulator entrypoint.
//
// Builds a width x height board filled with -init grains per cell, topples it
// until stable with the chosen strategy and writes the result to board.txt
// (one row per line, space separated). The elapsed stabilization time is
// printed so runs can be compared across strategies and sizes.
//
// Extras:
//   - -render also writes output.png through the board renderer.
//   - -print dumps the board before and after stabilization.
//   - -bench 129,257 skips the single run and instead times sync and async
//     stabilization per size, writing <prefix>.csv and <prefix>_plot.png with
//     the same layout as the serial performance report.
//
// Width or height left at 0 are prompted for on stdin.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dinnycodes/Abelian-Sandpile/src/board"
	"github.com/dinnycodes/Abelian-Sandpile/src/config"
	"github.com/dinnycodes/Abelian-Sandpile/src/logging"
	"github.com/dinnycodes/Abelian-Sandpile/src/perf"
	"github.com/dinnycodes/Abelian-Sandpile/src/sandpile"
)

type options struct {
	width, height int
	init          int
	strategy      sandpile.Strategy
	workers       int
	out           string
	render        bool
	renderOut     string
	print         bool
	bench         []int
	benchPrefix   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		stop()
		logging.Fatalf("sandpile: %v", err)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if len(opts.bench) > 0 {
		return runBenchmark(ctx, opts, stdout)
	}

	in := bufio.NewReader(stdin)
	if opts.width == 0 {
		if opts.width, err = prompt(in, stdout, "Enter board width: "); err != nil {
			return err
		}
	}
	if opts.height == 0 {
		if opts.height, err = prompt(in, stdout, "Enter board height: "); err != nil {
			return err
		}
	}

	b, err := sandpile.New(opts.width, opts.height)
	if err != nil {
		return err
	}
	b.Fill(opts.init)
	if opts.print {
		fmt.Fprintln(stdout, "--- Initial Board ---")
		if err := sandpile.PrintBoard(stdout, b); err != nil {
			return err
		}
	}

	res, err := sandpile.Stabilize(ctx, b, opts.strategy, opts.workers)
	if err != nil {
		return fmt.Errorf("stabilize: %w", err)
	}
	logging.Debugf("%s stabilization: %d sweeps, %d grains left", res.Strategy, res.Sweeps, b.Grains())
	if opts.print {
		fmt.Fprintln(stdout, "--- Stabilized Board ---")
		if err := sandpile.PrintBoard(stdout, b); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "Board size: %d x %d\n", res.Width, res.Height)
	fmt.Fprintf(stdout, "Time taken to stabilize board: %.10f seconds\n", res.Elapsed.Seconds())

	if err := sandpile.SaveBoard(opts.out, b); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Board written to %s\n", opts.out)

	if opts.render {
		g, err := board.NewGrid(b.Rows())
		if err != nil {
			return err
		}
		if err := board.Save(opts.renderOut, board.Render(g)); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved %s\n", opts.renderOut)
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	settings, err := config.Load()
	if err != nil {
		return options{}, fmt.Errorf("load config: %w", err)
	}
	var o options
	fs := flag.NewFlagSet("sandpile", flag.ContinueOnError)
	fs.IntVar(&o.width, "width", 0, "Board width (prompted when 0)")
	fs.IntVar(&o.height, "height", 0, "Board height (prompted when 0)")
	fs.IntVar(&o.init, "init", sandpile.Threshold, "Initial grains per cell")
	strategy := fs.String("strategy", string(sandpile.Sync), "Toppling strategy: sync, async or parallel")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "Goroutines for the parallel strategy")
	fs.StringVar(&o.out, "out", board.DefaultInput, "Board output file")
	fs.BoolVar(&o.render, "render", false, "Also render the stabilized board to PNG")
	fs.StringVar(&o.renderOut, "render-out", board.DefaultOutput, "PNG path used with -render")
	fs.BoolVar(&o.print, "print", false, "Print the board before and after stabilization")
	bench := fs.String("bench", "", "Comma separated NxN sizes to benchmark sync vs async (e.g. 129,257)")
	fs.StringVar(&o.benchPrefix, "bench-prefix", "sandpile_measured_performance", "Output prefix for benchmark CSV and chart")
	logLevel := fs.String("log-level", settings.LogLevel, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	logging.SetLogLevel(*logLevel)

	if o.strategy, err = sandpile.ParseStrategy(*strategy); err != nil {
		return options{}, err
	}
	if o.width < 0 || o.height < 0 {
		return options{}, fmt.Errorf("board size must be positive, got %dx%d", o.width, o.height)
	}
	if o.init < 0 {
		return options{}, fmt.Errorf("initial grains must not be negative, got %d", o.init)
	}
	if o.bench, err = parseSizes(*bench); err != nil {
		return options{}, err
	}
	return o, nil
}

// parseSizes parses "129, 257" into board sizes. Empty input yields nil.
func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid benchmark size %q", part)
		}
		out = append(out, n)
	}
	return out, nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) (int, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
		return 0, fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(label), ": "), err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid board dimension %q", strings.TrimSpace(line))
	}
	return n, nil
}

func runBenchmark(ctx context.Context, opts options, stdout io.Writer) error {
	defer logging.TimeTrack(time.Now(), "benchmark")
	ds, err := sandpile.Benchmark(ctx, opts.bench, opts.init)
	if err != nil {
		return err
	}
	csvPath := opts.benchPrefix + ".csv"
	plotPath := opts.benchPrefix + "_plot.png"
	if err := perf.SaveCSV(csvPath, ds); err != nil {
		return err
	}
	chartOpts := perf.DefaultChartOptions()
	chartOpts.Title = "Synchronous vs Asynchronous Sandpile Performance (Measured)"
	chartOpts.Caption = fmt.Sprintf("%s/%s, %d CPUs, %d initial grains per cell", runtime.GOOS, runtime.GOARCH, runtime.NumCPU(), opts.init)
	if _, err := perf.SaveChart(plotPath, ds, chartOpts); err != nil {
		return err
	}
	for _, r := range ds {
		fmt.Fprintf(stdout, "%dx%d sync=%.6fs async=%.6fs\n", r.GridSize, r.GridSize, r.SyncTime, r.AsyncTime)
	}
	fmt.Fprintf(stdout, "Saved %s and %s\n", csvPath, plotPath)
	return nil
}
