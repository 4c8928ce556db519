// Command perfplot writes the serial sandpile benchmark table as CSV and as a
// line chart, then shows the chart in a window when a display is available.
//
// Outputs (working directory):
//   - sandpile_serial_performance.csv
//   - sandpile_serial_performance_plot.png
//
// A missing display is not an error; the window step is skipped.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/dinnycodes/Abelian-Sandpile/src/config"
	"github.com/dinnycodes/Abelian-Sandpile/src/logging"
	"github.com/dinnycodes/Abelian-Sandpile/src/perf"
)

// viewer displays a rendered chart and blocks until it is closed.
type viewer func(img image.Image, title string)

func main() {
	if err := run(os.Args[1:], showChart); err != nil {
		logging.Fatalf("perfplot: %v", err)
	}
}

func run(args []string, view viewer) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fs := flag.NewFlagSet("perfplot", flag.ContinueOnError)
	csvPath := fs.String("csv", perf.SerialCSVFile, "CSV output path")
	plotPath := fs.String("plot", perf.SerialChartFile, "Chart PNG output path")
	show := fs.Bool("show", true, "Open an interactive chart window when a display is available")
	logLevel := fs.String("log-level", settings.LogLevel, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logging.SetLogLevel(*logLevel)

	ds := perf.SerialDataSet()
	if err := perf.SaveCSV(*csvPath, ds); err != nil {
		return err
	}
	logging.Infof("wrote %s (%d rows)", *csvPath, len(ds))

	opts := perf.DefaultChartOptions()
	img, err := perf.SaveChart(*plotPath, ds, opts)
	if err != nil {
		return err
	}
	logging.Infof("wrote %s (%dx%d)", *plotPath, img.Bounds().Dx(), img.Bounds().Dy())

	if !*show {
		return nil
	}
	if !displayAvailable() {
		logging.Debugf("no display detected; skipping chart window")
		return nil
	}
	view(img, opts.Title)
	return nil
}

// displayAvailable reports whether a window can be opened. Only X11/Wayland
// platforms can run headless, so everything else is assumed to have a screen.
func displayAvailable() bool {
	switch runtime.GOOS {
	case "windows", "darwin", "ios", "android":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
