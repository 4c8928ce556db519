// Command renderboard rasterizes a sandpile board file into a PNG.
//
// With no flags it reads board.txt and writes output.png in the working
// directory, printing "Saved output.png" on success. Malformed input is fatal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dinnycodes/Abelian-Sandpile/src/board"
	"github.com/dinnycodes/Abelian-Sandpile/src/config"
	"github.com/dinnycodes/Abelian-Sandpile/src/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logging.Fatalf("renderboard: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fs := flag.NewFlagSet("renderboard", flag.ContinueOnError)
	in := fs.String("in", board.DefaultInput, "Board file to read")
	out := fs.String("out", board.DefaultOutput, "PNG file to write")
	logLevel := fs.String("log-level", settings.LogLevel, "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logging.SetLogLevel(*logLevel)

	bounds, err := board.RenderFile(*in, *out)
	if err != nil {
		return err
	}
	logging.Debugf("rendered %s -> %s (%dx%d px)", *in, *out, bounds.Dx(), bounds.Dy())
	fmt.Fprintf(stdout, "Saved %s\n", *out)
	return nil
}
